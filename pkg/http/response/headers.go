package response

import (
	"maps"
	"net/http"
	"slices"
)

// HeadersInit is one of HeaderPairs, HeaderMap or Header.
type HeadersInit interface {
	mergeInto(dst http.Header)
}

// HeaderPairs is an ordered list of name/value pairs. Later pairs win.
type HeaderPairs [][2]string

// HeaderMap maps a header name to a single value.
type HeaderMap map[string]string

// Header wraps a native http.Header so it can be passed as HeadersInit.
type Header http.Header

var (
	_ HeadersInit = HeaderPairs(nil)
	_ HeadersInit = HeaderMap(nil)
	_ HeadersInit = Header(nil)
)

func (p HeaderPairs) mergeInto(dst http.Header) {
	for _, pair := range p {
		dst.Set(pair[0], pair[1])
	}
}

func (m HeaderMap) mergeInto(dst http.Header) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		dst.Set(name, m[name])
	}
}

func (h Header) mergeInto(dst http.Header) {
	for _, name := range slices.Sorted(maps.Keys(h)) {
		values := h[name]
		if len(values) == 0 {
			continue
		}
		dst[http.CanonicalHeaderKey(name)] = slices.Clone(values)
	}
}

// MergeHeaders normalizes init into a new http.Header with canonical names.
func MergeHeaders(init HeadersInit) http.Header {
	header := make(http.Header)
	if init != nil {
		init.mergeInto(header)
	}
	return header
}
