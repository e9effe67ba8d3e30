package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// newValidator checks requests against the embedded OpenAPI document.
// Routes the document does not describe pass through untouched.
func newValidator(swagger *openapi3.T) (func(http.Handler) http.Handler, error) {
	swagger.Servers = nil
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}
	opts := &openapi3filter.Options{MultiError: false}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
				Options:    opts,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

// validationMiddleware loads the embedded document once. A document that
// fails to load disables validation; the generated binders still reject bad
// parameters.
func validationMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	swagger, err := GetSwagger()
	if err == nil {
		var mw func(http.Handler) http.Handler
		if mw, err = newValidator(swagger); err == nil {
			return mw
		}
	}
	logger.Error("OpenAPI validation disabled", "error", err)
	return func(next http.Handler) http.Handler { return next }
}
