package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/beeview/api/middleware"
	"github.com/itsatony/w4b_v3/server/beeview/api/resources"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
)

type Router struct {
	router    *mux.Router
	limiter   *middleware.RateLimiter
	resources *resources.Resources
}

// NewRouter wires the routes. limiter may be nil to disable rate limiting.
func NewRouter(res *resources.Resources, limiter *middleware.RateLimiter) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		limiter:   limiter,
		resources: res,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	v1 := r.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/health", r.resources.Health.Check).Methods(http.MethodGet)
	v1.HandleFunc("/swagger/doc.json", r.resources.Docs.Swagger).Methods(http.MethodGet)

	// Log views
	views := r.router.NewRoute().Subrouter()
	if r.limiter != nil {
		views.Use(r.limiter.Limit)
	}
	views.HandleFunc("/", r.resources.Views.Index).Methods(http.MethodGet)
	views.HandleFunc(models.ReadingsView.Path, r.resources.Views.Readings).Methods(http.MethodGet, http.MethodHead)
	views.HandleFunc(models.StatusView.Path, r.resources.Views.Status).Methods(http.MethodGet, http.MethodHead)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
