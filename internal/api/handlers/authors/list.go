package authors

import (
	"net/http"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
)

// GET /authors
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Sto.List(r.Context())
	if err != nil {
		apperr.Handle(w, err, "failed to list authors")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"data": rows})
}

// GET /authors/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.Sto.Get(r.Context(), id)
	if err != nil {
		apperr.Handle(w, err, "failed to fetch author")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, detail)
}
