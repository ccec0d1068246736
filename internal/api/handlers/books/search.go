package books

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/paging"
	storebooks "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/books"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/validate"
)

// GET /books/search?search=&genre=&authorName=&page=&limit=&sortBy=&order=
//
// Invalid enum values fall back to defaults instead of erroring; page and
// limit are clamped server-side.
func Search(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := validate.Page(q.Get("page"))
		limit := validate.Limit(q.Get("limit"))

		filter := storebooks.SearchFilter{
			Search:     strings.TrimSpace(q.Get("search")),
			Genre:      strings.TrimSpace(q.Get("genre")),
			AuthorName: strings.TrimSpace(q.Get("authorName")),
			SortBy:     validate.SortBy(q.Get("sortBy")),
			Order:      validate.Order(q.Get("order")),
			Limit:      limit,
			Offset:     (page - 1) * limit,
		}

		rows, total, err := storebooks.Search(r.Context(), db, filter)
		if err != nil {
			apperr.Handle(w, err, "query failed")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, SearchResponse{
			Data:       rows,
			Pagination: paging.Compute(total, page, limit),
		})
	}
}

// GET /books/{id}
func Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		row, err := storebooks.FetchByID(r.Context(), db, id)
		if err != nil {
			apperr.Handle(w, err, "failed to fetch book")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, row)
	}
}
