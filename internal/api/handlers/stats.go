package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	catalogstore "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/catalog"
)

const (
	statsCacheKey = "catalog:stats"
	statsCacheTTL = 30 * time.Second
)

// CatalogStats serves GET /stats: catalog-wide aggregates, cached
// briefly in Redis when a client is available.
func CatalogStats(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if rdb != nil {
			if cached, err := rdb.Get(ctx, statsCacheKey).Result(); err == nil && cached != "" {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(cached))
				return
			}
		}

		s, err := catalogstore.Snapshot(ctx, db)
		if err != nil {
			apperr.Handle(w, err, "failed to compute stats")
			return
		}

		body, _ := json.Marshal(s)
		if rdb != nil {
			_ = rdb.SetEx(ctx, statsCacheKey, body, statsCacheTTL).Err()
		}
		httpx.WriteJSON(w, http.StatusOK, s)
	}
}
