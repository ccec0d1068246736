package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
)

// Health serves GET /healthz: liveness plus a short DB ping.
func Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			httpx.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
