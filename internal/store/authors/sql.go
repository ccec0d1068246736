package authorsstore

import (
	"context"
	"database/sql"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/handlers/authors"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/models"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/dbx"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) authors.Store { return &Store{db: db} }

const authorCols = `a.id::text, a.slug, a.name, a.email, a.bio, a.nationality, a.birth_year, a.created_at, a.updated_at`

func scanAuthor(sc interface{ Scan(...any) error }, a *models.Author, extra ...any) error {
	var (
		bio, nat  sql.NullString
		birthYear sql.NullInt64
	)
	dest := []any{&a.ID, &a.Slug, &a.Name, &a.Email, &bio, &nat, &birthYear, &a.CreatedAt, &a.UpdatedAt}
	dest = append(dest, extra...)
	if err := sc.Scan(dest...); err != nil {
		return err
	}
	if bio.Valid {
		a.Bio = &bio.String
	}
	if nat.Valid {
		a.Nationality = &nat.String
	}
	if birthYear.Valid {
		y := int(birthYear.Int64)
		a.BirthYear = &y
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]authors.ListRow, error) {
	const q = `
SELECT ` + authorCols + `, COUNT(b.id) AS books_count
FROM authors a
LEFT JOIN books b ON b.author_id = a.id
GROUP BY a.id
ORDER BY a.name`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []authors.ListRow{}
	for rows.Next() {
		var row authors.ListRow
		if err := scanAuthor(rows, &row.Author, &row.BooksCount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*authors.Detail, error) {
	const q = `SELECT ` + authorCols + ` FROM authors a WHERE a.id = $1`
	var d authors.Detail
	if err := scanAuthor(s.db.QueryRowContext(ctx, q, id), &d.Author); err != nil {
		return nil, err
	}

	books, err := s.booksOf(ctx, id, `b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	d.Books = books
	return &d, nil
}

func (s *Store) Create(ctx context.Context, req authors.AuthorRequest) (*models.Author, error) {
	a := models.Author{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
	}
	err := dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		slug, err := ensureUniqueSlug(ctx, tx, slugify(req.Name), 10)
		if err != nil {
			return err
		}
		a.Slug = slug
		const q = `
INSERT INTO authors (slug, name, email, bio, nationality, birth_year)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text, created_at, updated_at`
		return tx.QueryRowContext(ctx, q,
			slug, req.Name, req.Email, req.Bio, req.Nationality, req.BirthYear,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Update(ctx context.Context, id string, req authors.AuthorRequest) (*models.Author, error) {
	// Slug stays stable across renames so bookmarked URLs keep working.
	const q = `
UPDATE authors
SET name = $2, email = $3, bio = $4, nationality = $5, birth_year = $6, updated_at = now()
WHERE id = $1
RETURNING id::text, slug, created_at, updated_at`
	a := models.Author{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
	}
	if err := s.db.QueryRowContext(ctx, q,
		id, req.Name, req.Email, req.Bio, req.Nationality, req.BirthYear,
	).Scan(&a.ID, &a.Slug, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	// The schema also cascades, but deleting explicitly inside one tx
	// reports how many books went away with the author.
	var booksDeleted int64
	err := dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM books WHERE author_id = $1`, id)
		if err != nil {
			return err
		}
		booksDeleted, _ = res.RowsAffected()

		res, err = tx.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return booksDeleted, nil
}

func (s *Store) BooksByYear(ctx context.Context, id string) (string, []models.Book, error) {
	var name string
	if err := s.db.QueryRowContext(ctx, `SELECT name FROM authors WHERE id = $1`, id).Scan(&name); err != nil {
		return "", nil, err
	}
	books, err := s.booksOf(ctx, id, `b.published_year ASC NULLS LAST, b.created_at ASC`)
	if err != nil {
		return "", nil, err
	}
	return name, books, nil
}

func (s *Store) booksOf(ctx context.Context, authorID, orderBy string) ([]models.Book, error) {
	q := `
SELECT b.id::text, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages, b.author_id::text, b.cover_key, b.created_at, b.updated_at
FROM books b
WHERE b.author_id = $1
ORDER BY ` + orderBy
	rows, err := s.db.QueryContext(ctx, q, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		var (
			b                      models.Book
			desc, isbn, genre, key sql.NullString
			year, pages            sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &b.Title, &desc, &isbn, &year, &genre, &pages, &b.AuthorID, &key, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			b.Description = &desc.String
		}
		if isbn.Valid {
			b.ISBN = &isbn.String
		}
		if genre.Valid {
			b.Genre = &genre.String
		}
		if key.Valid {
			b.CoverKey = &key.String
		}
		if year.Valid {
			y := int(year.Int64)
			b.PublishedYear = &y
		}
		if pages.Valid {
			p := int(pages.Int64)
			b.Pages = &p
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
