package authors

import (
	"context"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/models"
)

// ===== DTOs =====

type AuthorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	BirthYear   *int    `json:"birthYear,omitempty"`
}

// ListRow is an author plus how many books it owns.
type ListRow struct {
	models.Author
	BooksCount int `json:"booksCount"`
}

// Detail is an author with its full book list embedded.
type Detail struct {
	models.Author
	Books []models.Book `json:"books"`
}

type DeleteResult struct {
	Message      string `json:"message"`
	BooksDeleted int64  `json:"booksDeleted"`
}

// ===== Store Interface =====

type Store interface {
	List(ctx context.Context) ([]ListRow, error)
	Get(ctx context.Context, id string) (*Detail, error)
	Create(ctx context.Context, req AuthorRequest) (*models.Author, error)
	Update(ctx context.Context, id string, req AuthorRequest) (*models.Author, error)
	// Delete removes the author and all owned books, returning how many
	// books went with it. sql.ErrNoRows when the author does not exist.
	Delete(ctx context.Context, id string) (int64, error)
	// BooksByYear returns the author's name and books ordered by
	// publishedYear ascending (NULL years last) for the stats reducer.
	BooksByYear(ctx context.Context, id string) (string, []models.Book, error)
}
