package constants

import (
	"github.com/ker0olos/sift"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	EnvPrefix       = "SIFT"
)

type Header struct {
	Name  string
	Value string
}

var (
	DefaultResponseHeaders = []Header{
		{Name: "Server", Value: "sift/" + sift.VERSION},
	}
)
