package modules

import (
	"github.com/ker0olos/sift/pkg/validation"
)

// RouteConfig binds a path to the schema requests on it must satisfy.
type RouteConfig struct {
	Path   string            `yaml:"path" json:"path" validate:"required,startswith=/"`
	Schema validation.Schema `yaml:"schema" json:"schema" validate:"required,dive,keys,required,endkeys"`
}
