package route

import (
	"context"
	"net/http"
	"time"

	"careerhub/src-server/utils"

	"github.com/go-chi/chi/v5"
)

func Ping(router chi.Router, as *utils.AppState) {
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := as.RawDB.PingContext(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
