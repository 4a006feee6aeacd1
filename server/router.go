package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler serves every route of the dashboard API.
type Handler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetBounds(w http.ResponseWriter, r *http.Request)
	GetErrors(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)
	PutFile(w http.ResponseWriter, r *http.Request)
	GetSnapshots(w http.ResponseWriter, r *http.Request)
	GetCharts(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler Handler
	router  *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	handler Handler,
	router *mux.Router) *Router {
	return &Router{
		handler: handler,
		router:  router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")

	r.router.HandleFunc("/v1/bounds", r.handler.GetBounds).Methods("GET")
	r.router.HandleFunc("/v1/errors", r.handler.GetErrors).Methods("GET")
	r.router.HandleFunc("/v1/reload", r.handler.Reload).Methods("POST")
	r.router.HandleFunc("/v1/files/{name}", r.handler.PutFile).Methods("PUT")

	// expects ?start={YYYY-MM-DD}&end={YYYY-MM-DD}[&compare_start=...&compare_end=...]
	r.router.HandleFunc("/v1/snapshots", r.handler.GetSnapshots).Methods("GET")
	r.router.HandleFunc("/v1/charts", r.handler.GetCharts).Methods("GET")
}
