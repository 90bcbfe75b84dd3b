package validation

import (
	"context"
)

type key struct{}

func WithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, key{}, body)
}

// BodyFromContext returns the body extracted by the validation middleware.
func BodyFromContext(ctx context.Context) (map[string]any, bool) {
	value, ok := ctx.Value(key{}).(map[string]any)
	return value, ok
}
