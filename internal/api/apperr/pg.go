package apperr

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
)

// Map well-known constraint names to fields (extend as constraints are added).
var constraintField = map[string]string{
	"books_author_id_fkey": "authorId",
	"authors_email_key":    "email",
	"authors_slug_key":     "slug",
}

// FromPG maps a pgconn.PgError to (status, message). Returns ok=false for
// anything that is not a recognized Postgres error.
func FromPG(err error) (int, string, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return 0, "", false
	}

	field := constraintField[pg.ConstraintName]

	switch pg.Code {
	case "23503": // foreign_key_violation
		if field == "authorId" {
			return http.StatusBadRequest, "invalid authorId", true
		}
		return http.StatusConflict, "resource is referenced by other records", true
	case "23505": // unique_violation
		if field == "" {
			field = "value"
		}
		return http.StatusConflict, field + " already exists", true
	case "23502": // not_null_violation
		col := pg.ColumnName
		if col == "" {
			col = "field"
		}
		return http.StatusBadRequest, "required field is missing: " + col, true
	case "23514": // check_violation
		return http.StatusBadRequest, "constraint failed: " + strings.TrimSpace(pg.ConstraintName), true
	case "22P02": // invalid_text_representation (e.g. bad UUID)
		return http.StatusBadRequest, "invalid id format", true
	case "22001": // string_data_right_truncation
		return http.StatusBadRequest, "value is too long", true
	default:
		return http.StatusInternalServerError, "database error", true
	}
}

// Handle translates a store error into the JSON error envelope.
// sql.ErrNoRows becomes 404; recognized Postgres errors get mapped
// statuses; anything else is a generic 500 with the fallback message.
func Handle(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, sql.ErrNoRows) {
		httpx.Error(w, http.StatusNotFound, "not found")
		return
	}
	if status, msg, ok := FromPG(err); ok {
		httpx.Error(w, status, msg)
		return
	}
	httpx.Error(w, http.StatusInternalServerError, fallback)
}
