package authors

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
)

type Handler struct {
	DB  *sql.DB
	RDB *redis.Client
	Sto Store
}

func NewHandler(db *sql.DB, rdb *redis.Client, store Store) *Handler {
	return &Handler{
		DB:  db,
		RDB: rdb,
		Sto: store,
	}
}

// pathID extracts and validates the {id} path segment. Writes a 400 and
// returns false when it is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid author id")
		return "", false
	}
	return id, true
}
