package books

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	authorshandler "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/handlers/authors"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	storage "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/storage/s3"
	storebooks "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/books"
)

// POST /books
func Create(db *sql.DB, cache authorshandler.StatsCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, ok := decodeBook(w, r)
		if !ok {
			return
		}
		row, err := storebooks.Create(r.Context(), db, *dto)
		if err != nil {
			apperr.Handle(w, err, "failed to create book")
			return
		}
		authorshandler.InvalidateStats(r.Context(), cache, row.AuthorID)
		httpx.WriteJSON(w, http.StatusCreated, row)
	}
}

// PUT /books/{id}
func Update(db *sql.DB, cache authorshandler.StatsCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		dto, ok := decodeBook(w, r)
		if !ok {
			return
		}

		// When the PUT moves the book, the previous owner's stats shift
		// too. A lookup miss here just means Update will 404 below.
		oldAuthor, _ := storebooks.AuthorOf(r.Context(), db, id)

		row, err := storebooks.Update(r.Context(), db, id, *dto)
		if err != nil {
			apperr.Handle(w, err, "failed to update book")
			return
		}

		if oldAuthor != "" && oldAuthor != row.AuthorID {
			authorshandler.InvalidateStats(r.Context(), cache, oldAuthor, row.AuthorID)
		} else {
			authorshandler.InvalidateStats(r.Context(), cache, row.AuthorID)
		}
		httpx.WriteJSON(w, http.StatusOK, row)
	}
}

// DELETE /books/{id}
func Delete(db *sql.DB, s3c *storage.Client, cache authorshandler.StatsCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		coverKey, authorID, err := storebooks.Delete(r.Context(), db, id)
		if err != nil {
			apperr.Handle(w, err, "failed to delete book")
			return
		}
		authorshandler.InvalidateStats(r.Context(), cache, authorID)

		// Best-effort cover cleanup.
		if coverKey != "" && s3c != nil {
			if err := s3c.DeleteObject(r.Context(), coverKey); err != nil {
				log.Printf("[books] cover cleanup failed for %s: %v", id, err)
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
