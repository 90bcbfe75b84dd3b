package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ker0olos/sift/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the `validate` tags of v. Failures are returned as an
// *errs.ValidateError whose Fields mirror the struct layout, keyed by the yaml
// (or json) names and by slice index or map key.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	validateErr := errs.NewValidateError(errs.ErrValidation)
	t := reflect.TypeOf(v)
	root := t
	if root.Kind() == reflect.Ptr {
		root = root.Elem()
	}
	for _, e := range fieldErrors {
		segments := strings.Split(e.StructNamespace(), ".")
		// anonymous structs have no leading type segment
		if root.Name() != "" {
			segments = segments[1:]
		}
		path := make([]string, 0, len(segments))
		parentT := t
		for _, segment := range segments {
			name, keys := splitSegment(segment)
			f, ok := getField(parentT, name)
			if !ok {
				break
			}
			path = append(path, fieldName(f))
			parentT = f.Type
			for _, key := range keys {
				path = append(path, key)
				parentT = elem(parentT)
			}
		}
		if len(path) > 0 {
			setPath(validateErr.Fields, path, formatError(e))
		}
	}
	return validateErr
}

func formatError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field missing"
	case "oneof":
		return fmt.Sprintf("invalid value: %s", fe.Value())
	case "gt":
		return fmt.Sprintf("value must be > %s", fe.Param())
	case "gte":
		return fmt.Sprintf("value must be >= %s", fe.Param())
	case "lt":
		return fmt.Sprintf("value must be < %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be <= %s", fe.Param())
	case "min":
		return fmt.Sprintf("length must be at least %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("value must start with '%s'", fe.Param())
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("duplicate %s", strings.ToLower(fe.Param()))
		}
		return "duplicate values"
	}
	return fe.Error()
}

// splitSegment splits "Routes[0]" into "Routes" and ["0"].
func splitSegment(segment string) (string, []string) {
	i := strings.IndexByte(segment, '[')
	if i < 0 {
		return segment, nil
	}
	name := segment[:i]
	var keys []string
	for _, part := range strings.Split(segment[i:], "]") {
		if part = strings.TrimPrefix(part, "["); part != "" {
			keys = append(keys, part)
		}
	}
	return name, keys
}

func setPath(node map[string]interface{}, path []string, value string) {
	for _, key := range path[:len(path)-1] {
		next, ok := node[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			node[key] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return t.Elem()
	}
	return t
}

func getField(t reflect.Type, field string) (reflect.StructField, bool) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(field)
}
