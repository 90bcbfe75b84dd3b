package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ker0olos/sift/pkg/accesslog"
	"github.com/ker0olos/sift/pkg/http/response"
	"github.com/ker0olos/sift/pkg/types"
	"github.com/ker0olos/sift/pkg/validation"
	"go.uber.org/zap"
)

// Validate rejects requests that do not satisfy schema with a JSON error using
// the status of the failed check. Accepted requests reach next with the
// extracted body stored in the request context.
func Validate(schema validation.Schema, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.S()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := validation.ValidateRequest(r, schema)
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					accesslog.Reject(r.Context(), "body_too_large")
					response.Write(w, http.StatusRequestEntityTooLarge, types.ErrorResponse{Message: "request body too large"})
					return
				}
				panic(err)
			}

			if !result.Valid() {
				log.Debugw("request rejected",
					"method", r.Method,
					"path", r.URL.Path,
					"status", result.Error.Status,
					"kind", result.Error.Kind,
				)
				accesslog.Reject(r.Context(), string(result.Error.Kind))
				if result.Error.Kind == validation.KindMethodNotAllowed {
					w.Header().Set("Allow", strings.Join(schema.Methods(), ", "))
				}
				response.Write(w, result.Error.Status, types.ErrorResponse{Message: result.Error.Message})
				return
			}

			if result.Body != nil {
				r = r.WithContext(validation.WithBody(r.Context(), result.Body))
			}
			next.ServeHTTP(w, r)
		})
	}
}
