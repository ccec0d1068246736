package books

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/paging"
	storebooks "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/books"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/validate"
)

type BookRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Pages         *int    `json:"pages,omitempty"`
	AuthorID      string  `json:"authorId"`
}

type SearchResponse struct {
	Data       []storebooks.Row `json:"data"`
	Pagination paging.Info      `json:"pagination"`
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid book id")
		return "", false
	}
	return id, true
}

func decodeBook(w http.ResponseWriter, r *http.Request) (*storebooks.BookDTO, bool) {
	defer r.Body.Close()

	var req BookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON")
		return nil, false
	}

	title, err := validate.RequireBounded("title", req.Title, 1, 200)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if _, err := uuid.Parse(req.AuthorID); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid authorId")
		return nil, false
	}
	if err := validate.Pages(req.Pages); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &storebooks.BookDTO{
		Title:         title,
		AuthorID:      req.AuthorID,
		Description:   req.Description,
		ISBN:          req.ISBN,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		Pages:         req.Pages,
	}, true
}
