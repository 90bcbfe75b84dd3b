package response

import (
	"encoding/json"
	"net/http"

	"github.com/ker0olos/sift/constants"
)

// Options configures a response built by JSON.
type Options struct {
	// Status defaults to 200.
	Status  int
	Headers HeadersInit
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON encodes value as the body of a new response.
//
// Headers from opts are merged first, then Content-Type is forced to
// application/json so a caller supplied content type never survives.
// Encoding errors are returned as is.
func JSON(value any, opts *Options) (*Response, error) {
	if opts == nil {
		opts = &Options{}
	}

	body, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	header := MergeHeaders(opts.Headers)
	header.Set("Content-Type", constants.ContentTypeJSON)

	status := opts.Status
	if status == 0 {
		status = http.StatusOK
	}

	return &Response{
		Status: status,
		Header: header,
		Body:   body,
	}, nil
}

// ServeHTTP writes the response, with the default response headers underneath
// its own.
func (resp *Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	for _, header := range constants.DefaultResponseHeaders {
		w.Header().Set(header.Name, header.Value)
	}
	for name, values := range resp.Header {
		w.Header()[name] = values
	}

	w.WriteHeader(resp.Status)

	if _, err := w.Write(resp.Body); err != nil {
		panic(err)
	}
}

// Write encodes data and writes it to w with the given status code.
func Write(w http.ResponseWriter, code int, data any) {
	resp, err := JSON(data, &Options{Status: code})
	if err != nil {
		panic(err)
	}
	resp.ServeHTTP(w, nil)
}
