package books

import (
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/models"
)

// SearchFilter carries normalized search parameters. Normalization
// (allow-list sort, clamped limit/page) happens in the handler layer;
// unknown SortBy values still fall back to created_at here.
type SearchFilter struct {
	Search     string
	Genre      string
	AuthorName string
	SortBy     string // "title" | "publishedYear" | "createdAt"
	Order      string // "asc" | "desc"
	Limit      int
	Offset     int
}

// Row is a book joined with its owning author's public fields.
type Row struct {
	models.Book
	Author models.AuthorRef `json:"author"`
}

type BookDTO struct {
	Title         string
	AuthorID      string
	Description   *string
	ISBN          *string
	Genre         *string
	PublishedYear *int
	Pages         *int
}
