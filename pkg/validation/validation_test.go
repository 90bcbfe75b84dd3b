package validation

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRequest(method string, target string, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r
}

func TestValidateMethod(t *testing.T) {
	r := newRequest("POST", "https://example.com", "")
	result, err := ValidateRequest(r, Schema{"GET": {}})
	assert.NoError(t, err)
	assert.False(t, result.Valid())
	assert.Nil(t, result.Body)
	assert.Equal(t, "method POST is not allowed for the URL", result.Error.Message)
	assert.Equal(t, http.StatusMethodNotAllowed, result.Error.Status)
	assert.Equal(t, KindMethodNotAllowed, result.Error.Kind)
}

func TestValidateMethodIsCaseSensitive(t *testing.T) {
	r := newRequest("GET", "https://example.com", "")
	result, err := ValidateRequest(r, Schema{"get": {}})
	assert.NoError(t, err)
	assert.Equal(t, "method GET is not allowed for the URL", result.Error.Message)
}

func TestValidateEmptySchema(t *testing.T) {
	r := newRequest("GET", "https://example.com", "")
	result, err := ValidateRequest(r, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, result.Error.Status)
}

func TestValidateHeaders(t *testing.T) {
	r := newRequest("POST", "https://example.com", "")
	r.Header.Set("Authorization", "Bearer token")

	result, err := ValidateRequest(r, Schema{
		"POST": {Headers: []string{"Authorization", "Content-Type"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "header 'Content-Type' not available", result.Error.Message)
	assert.Equal(t, http.StatusBadRequest, result.Error.Status)
	assert.Equal(t, KindMissingHeader, result.Error.Kind)
}

func TestValidateHeadersFirstMissingWins(t *testing.T) {
	r := newRequest("GET", "https://example.com", "")
	result, err := ValidateRequest(r, Schema{
		"GET": {Headers: []string{"X-First", "X-Second"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "header 'X-First' not available", result.Error.Message)
}

func TestValidateHeadersCaseInsensitive(t *testing.T) {
	r := newRequest("GET", "https://example.com", "")
	r.Header.Set("X-Api-Key", "k")
	r.Header.Set("Accept", "")

	result, err := ValidateRequest(r, Schema{
		"GET": {Headers: []string{"accept", "x-api-key", "HOST"}},
	})
	assert.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Nil(t, result.Body)
}

func TestValidateParams(t *testing.T) {
	r := newRequest("GET", "https://example.com?name=Satya", "")
	result, err := ValidateRequest(r, Schema{
		"GET": {Params: []string{"name", "age"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "param 'age' is required to process the request", result.Error.Message)
	assert.Equal(t, http.StatusBadRequest, result.Error.Status)
	assert.Equal(t, KindMissingParam, result.Error.Kind)
}

func TestValidateParamsPresenceOnly(t *testing.T) {
	r := newRequest("GET", "https://example.com?flag&empty=", "")
	result, err := ValidateRequest(r, Schema{
		"GET": {Params: []string{"flag", "empty"}},
	})
	assert.NoError(t, err)
	assert.True(t, result.Valid())
}

func TestValidateBodyMissingField(t *testing.T) {
	r := newRequest("POST", "https://example.com", `{"name":"Satya"}`)
	result, err := ValidateRequest(r, Schema{
		"POST": {Body: []string{"name", "age"}},
	})
	assert.NoError(t, err)
	assert.Nil(t, result.Body)
	assert.Equal(t, "field 'age' is not available in the body", result.Error.Message)
	assert.Equal(t, http.StatusBadRequest, result.Error.Status)
	assert.Equal(t, KindMissingBodyField, result.Error.Kind)
}

func TestValidateBodyExtraction(t *testing.T) {
	r := newRequest("POST", "https://example.com", `{"name":"Satya","age":98,"extra":true}`)
	result, err := ValidateRequest(r, Schema{
		"POST": {Body: []string{"name", "age"}},
	})
	assert.NoError(t, err)
	assert.Nil(t, result.Error)
	assert.Equal(t, map[string]any{"name": "Satya", "age": float64(98)}, result.Body)
}

func TestValidateBodyValues(t *testing.T) {
	r := newRequest("PUT", "https://example.com",
		`{"nil":null,"list":[1,"a"],"obj":{"k":"v"},"dotted.key":1,"dup":1,"dup":2}`)
	result, err := ValidateRequest(r, Schema{
		"PUT": {Body: []string{"nil", "list", "obj", "dotted.key", "dup"}},
	})
	assert.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, map[string]any{
		"nil":        nil,
		"list":       []any{float64(1), "a"},
		"obj":        map[string]any{"k": "v"},
		"dotted.key": float64(1),
		"dup":        float64(2),
	}, result.Body)
}

func TestValidateBodyNotAnObject(t *testing.T) {
	tests := []struct {
		scenario string
		body     string
	}{
		{scenario: "invalid json", body: `{"name":`},
		{scenario: "array", body: `[{"name":"Satya"}]`},
		{scenario: "string", body: `"name"`},
		{scenario: "empty", body: ``},
	}
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			r := newRequest("POST", "https://example.com", test.body)
			result, err := ValidateRequest(r, Schema{
				"POST": {Body: []string{"name", "age"}},
			})
			assert.NoError(t, err)
			assert.Nil(t, result.Body)
			assert.Equal(t, "field 'name' is not available in the body", result.Error.Message)
		})
	}
}

func TestValidateBodyCanBeReadAgain(t *testing.T) {
	payload := `{"name":"Satya","age":98}`
	r := newRequest("POST", "https://example.com", payload)
	result, err := ValidateRequest(r, Schema{"POST": {Body: []string{"name"}}})
	assert.NoError(t, err)
	assert.True(t, result.Valid())

	b, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	assert.Equal(t, payload, string(b))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestValidateBodyReadError(t *testing.T) {
	r := httptest.NewRequest("POST", "https://example.com", failingReader{})
	result, err := ValidateRequest(r, Schema{"POST": {Body: []string{"name"}}})
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, result.Error)
	assert.Nil(t, result.Body)
}

type trackingReader struct {
	*strings.Reader
	read bool
}

func newTrackingReader() *trackingReader {
	return &trackingReader{Reader: strings.NewReader(`{"name":"Satya"}`)}
}

func (t *trackingReader) Read(p []byte) (int, error) {
	t.read = true
	return t.Reader.Read(p)
}

func TestValidateStageOrder(t *testing.T) {
	t.Run("header before param", func(t *testing.T) {
		r := newRequest("GET", "https://example.com", "")
		result, err := ValidateRequest(r, Schema{
			"GET": {Headers: []string{"Authorization"}, Params: []string{"name"}},
		})
		assert.NoError(t, err)
		assert.Equal(t, KindMissingHeader, result.Error.Kind)
	})

	t.Run("param before body", func(t *testing.T) {
		body := newTrackingReader()
		r := httptest.NewRequest("POST", "https://example.com", body)
		result, err := ValidateRequest(r, Schema{
			"POST": {Params: []string{"name"}, Body: []string{"name"}},
		})
		assert.NoError(t, err)
		assert.Equal(t, KindMissingParam, result.Error.Kind)
		assert.False(t, body.read)
	})

	t.Run("body untouched without body requirements", func(t *testing.T) {
		body := newTrackingReader()
		r := httptest.NewRequest("POST", "https://example.com?name=x", body)
		result, err := ValidateRequest(r, Schema{"POST": {Params: []string{"name"}}})
		assert.NoError(t, err)
		assert.True(t, result.Valid())
		assert.Nil(t, result.Body)
		assert.False(t, body.read)
	})
}

func TestSchemaMethods(t *testing.T) {
	schema := Schema{"POST": {}, "GET": {}, "DELETE": {}}
	assert.Equal(t, []string{"DELETE", "GET", "POST"}, schema.Methods())
}
