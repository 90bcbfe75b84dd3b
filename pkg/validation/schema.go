package validation

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
)

// Schema maps a case-sensitive HTTP method to its requirements.
type Schema map[string]MethodSpec

// MethodSpec lists what a request using a given method must carry.
// A nil and an empty list mean the same thing.
type MethodSpec struct {
	Headers []string `yaml:"headers" json:"headers,omitempty" validate:"dive,required"`
	Params  []string `yaml:"params" json:"params,omitempty" validate:"dive,required"`
	Body    []string `yaml:"body" json:"body,omitempty" validate:"dive,required"`
}

// Methods returns the declared methods in sorted order.
func (s Schema) Methods() []string {
	return slices.Sorted(maps.Keys(s))
}

type Kind string

const (
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindMissingHeader    Kind = "missing_header"
	KindMissingParam     Kind = "missing_param"
	KindMissingBodyField Kind = "missing_body_field"
)

// ValidationError describes the first check a request failed.
type ValidationError struct {
	Kind    Kind   `json:"kind"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func methodNotAllowed(method string) *ValidationError {
	return &ValidationError{
		Kind:    KindMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("method %s is not allowed for the URL", method),
	}
}

func missingHeader(name string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingHeader,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("header '%s' not available", name),
	}
}

func missingParam(name string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingParam,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("param '%s' is required to process the request", name),
	}
}

func missingBodyField(name string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingBodyField,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("field '%s' is not available in the body", name),
	}
}

// Result is either an extracted body or an error, never both.
// Body is nil when the method declares no body fields.
type Result struct {
	Body  map[string]any   `json:"body,omitempty"`
	Error *ValidationError `json:"error,omitempty"`
}

func (r Result) Valid() bool {
	return r.Error == nil
}
