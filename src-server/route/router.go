package route

import (
	"net/http"

	"careerhub/src-server/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds the HTTP handler serving every route of the app.
func New(as *utils.AppState) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(Logger)
	router.Use(chimiddleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())
	Ping(router, as)
	Stats(router, as)
	Calendar(router, as)
	Ical(router, as)

	return router
}
