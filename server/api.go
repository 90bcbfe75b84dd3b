package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ker0olos/sift/config/modules"
	"github.com/ker0olos/sift/pkg/accesslog"
	"github.com/ker0olos/sift/pkg/http/middlewares"
	"github.com/ker0olos/sift/pkg/http/response"
	"github.com/ker0olos/sift/pkg/types"
	"github.com/ker0olos/sift/pkg/validation"
	"go.uber.org/zap"
)

// Accepted is the body returned for a request that passed validation.
type Accepted struct {
	Method string         `json:"method"`
	Path   string         `json:"path"`
	Body   map[string]any `json:"body"`
}

type API struct {
	routes       []modules.RouteConfig
	maxBodySize  int64
	accessLogger accesslog.AccessLogger
	log          *zap.SugaredLogger
}

func (api *API) Accept(w http.ResponseWriter, r *http.Request) {
	body, _ := validation.BodyFromContext(r.Context())
	response.Write(w, http.StatusOK, Accepted{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   body,
	})
}

func (api *API) bodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.maxBodySize > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, api.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns a http.Handler
func (api *API) Handler() http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Write(w, http.StatusNotFound, types.ErrorResponse{Message: "not found"})
	})

	if api.accessLogger != nil {
		r.Use(accesslog.NewMiddleware(api.accessLogger))
	}
	r.Use(middlewares.NewRecovery(api.log, nil).Handle)
	r.Use(api.bodyLimit)

	for _, route := range api.routes {
		validate := middlewares.Validate(route.Schema, api.log)
		r.Handle(route.Path, validate(http.HandlerFunc(api.Accept)))
	}

	return r
}
