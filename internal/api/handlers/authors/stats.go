package authors

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/stats"
)

const statsCacheTTL = 30 * time.Second

func statsCacheKey(id string) string { return "authors:stats:" + id }

// StatsCache is the slice of *redis.Client that stats eviction needs; the
// book handlers evict through it when a write shifts an author's numbers.
type StatsCache interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// InvalidateStats drops the cached stats of the given authors. Best-effort;
// a nil cache means Redis is not configured.
func InvalidateStats(ctx context.Context, cache StatsCache, authorIDs ...string) {
	if cache == nil {
		return
	}
	for _, id := range authorIDs {
		_ = cache.Del(ctx, statsCacheKey(id)).Err()
	}
}

// GET /authors/{id}/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if h.RDB != nil {
		if cached, err := h.RDB.Get(ctx, statsCacheKey(id)).Result(); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	name, books, err := h.Sto.BooksByYear(ctx, id)
	if err != nil {
		apperr.Handle(w, err, "failed to compute stats")
		return
	}
	s := stats.ForAuthor(id, name, books)

	body, _ := json.Marshal(s)
	if h.RDB != nil {
		_ = h.RDB.SetEx(ctx, statsCacheKey(id), body, statsCacheTTL).Err()
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}

func (h *Handler) invalidateStats(ctx context.Context, id string) {
	if h.RDB == nil {
		return
	}
	InvalidateStats(ctx, h.RDB, id)
}
