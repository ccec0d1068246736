package authors

import (
	"net/http"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/validate"
)

func decodeAuthor(w http.ResponseWriter, r *http.Request) (*AuthorRequest, bool) {
	defer r.Body.Close()

	var req AuthorRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON")
		return nil, false
	}

	name, err := validate.RequireBounded("name", req.Name, 1, 120)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	req.Name = name

	email, err := validate.Email(req.Email)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	req.Email = email

	if err := validate.BirthYear(req.BirthYear); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

// POST /authors
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAuthor(w, r)
	if !ok {
		return
	}
	a, err := h.Sto.Create(r.Context(), *req)
	if err != nil {
		apperr.Handle(w, err, "failed to create author")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

// PUT /authors/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeAuthor(w, r)
	if !ok {
		return
	}
	a, err := h.Sto.Update(r.Context(), id, *req)
	if err != nil {
		apperr.Handle(w, err, "failed to update author")
		return
	}
	// The cached stats payload embeds authorName.
	h.invalidateStats(r.Context(), id)
	httpx.WriteJSON(w, http.StatusOK, a)
}

// DELETE /authors/{id} — cascades to the author's books.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	booksDeleted, err := h.Sto.Delete(r.Context(), id)
	if err != nil {
		apperr.Handle(w, err, "failed to delete author")
		return
	}
	h.invalidateStats(r.Context(), id)
	httpx.WriteJSON(w, http.StatusOK, DeleteResult{
		Message:      "author deleted",
		BooksDeleted: booksDeleted,
	})
}
