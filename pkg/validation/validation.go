package validation

import (
	"bytes"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// request carries the state shared by the stages of a single validation.
type request struct {
	r      *http.Request
	schema Schema
	spec   MethodSpec
	body   map[string]any
}

// stage returns a non-nil *ValidationError to stop validation.
// A non-nil error means the request could not be inspected at all.
type stage func(req *request) (*ValidationError, error)

var stages = []stage{
	checkMethod,
	checkHeaders,
	checkParams,
	checkBody,
}

// ValidateRequest checks r against schema and extracts the declared body fields.
//
// Checks run in a fixed order (method, headers, params, body) and stop at the
// first failure, which is reported in Result.Error. The returned error is only
// set when the request body could not be read.
func ValidateRequest(r *http.Request, schema Schema) (Result, error) {
	req := &request{r: r, schema: schema}
	for _, check := range stages {
		verr, err := check(req)
		if err != nil {
			return Result{}, err
		}
		if verr != nil {
			return Result{Error: verr}, nil
		}
	}
	return Result{Body: req.body}, nil
}

func checkMethod(req *request) (*ValidationError, error) {
	spec, ok := req.schema[req.r.Method]
	if !ok {
		return methodNotAllowed(req.r.Method), nil
	}
	req.spec = spec
	return nil, nil
}

func checkHeaders(req *request) (*ValidationError, error) {
	for _, name := range req.spec.Headers {
		if !hasHeader(req.r, name) {
			return missingHeader(name), nil
		}
	}
	return nil, nil
}

func hasHeader(r *http.Request, name string) bool {
	if http.CanonicalHeaderKey(name) == "Host" {
		return r.Host != "" || len(r.Header.Values("Host")) > 0
	}
	return len(r.Header.Values(name)) > 0
}

func checkParams(req *request) (*ValidationError, error) {
	if len(req.spec.Params) == 0 {
		return nil, nil
	}
	query := req.r.URL.Query()
	for _, name := range req.spec.Params {
		if !query.Has(name) {
			return missingParam(name), nil
		}
	}
	return nil, nil
}

func checkBody(req *request) (*ValidationError, error) {
	if len(req.spec.Body) == 0 {
		return nil, nil
	}

	raw, err := readBody(req.r)
	if err != nil {
		return nil, err
	}

	fields := objectFields(raw)
	body := make(map[string]any, len(req.spec.Body))
	for _, name := range req.spec.Body {
		value, ok := fields[name]
		if !ok {
			return missingBodyField(name), nil
		}
		body[name] = value.Value()
	}
	req.body = body
	return nil, nil
}

// readBody drains r.Body and puts the bytes back so later handlers can read them.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, nil
}

// objectFields returns the top-level members of a JSON object keyed by their
// exact name. Anything that is not a valid JSON object has no fields.
func objectFields(raw []byte) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	if !gjson.ValidBytes(raw) {
		return fields
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return fields
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})
	return fields
}
