package validation

import (
	"github.com/mitchellh/mapstructure"
)

// Decode copies an extracted body into out, which must be a pointer to a
// struct or map. Struct fields are matched by their json tag; JSON numbers
// convert to the integer field types.
func Decode(body map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(body)
}
