package books

import (
	"context"
	"database/sql"
)

// Create inserts a book. A dangling AuthorID surfaces as the FK
// violation on books_author_id_fkey, mapped upstream to a 400.
func Create(ctx context.Context, db *sql.DB, dto BookDTO) (*Row, error) {
	const q = `
INSERT INTO books (title, description, isbn, published_year, genre, pages, author_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text`
	var id string
	if err := db.QueryRowContext(ctx, q,
		dto.Title, dto.Description, dto.ISBN, dto.PublishedYear, dto.Genre, dto.Pages, dto.AuthorID,
	).Scan(&id); err != nil {
		return nil, err
	}
	return FetchByID(ctx, db, id)
}

// Update replaces the mutable fields of a book (PUT semantics).
func Update(ctx context.Context, db *sql.DB, id string, dto BookDTO) (*Row, error) {
	const q = `
UPDATE books
SET title = $2, description = $3, isbn = $4, published_year = $5, genre = $6, pages = $7, author_id = $8, updated_at = now()
WHERE id = $1`
	res, err := db.ExecContext(ctx, q,
		id, dto.Title, dto.Description, dto.ISBN, dto.PublishedYear, dto.Genre, dto.Pages, dto.AuthorID,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return FetchByID(ctx, db, id)
}

// Delete removes a book, reporting the cover key that needs S3 cleanup and
// the author whose stats just changed.
func Delete(ctx context.Context, db *sql.DB, id string) (string, string, error) {
	var (
		key      sql.NullString
		authorID string
	)
	err := db.QueryRowContext(ctx,
		`DELETE FROM books WHERE id = $1 RETURNING cover_key, author_id::text`, id,
	).Scan(&key, &authorID)
	if err != nil {
		return "", "", err
	}
	return key.String, authorID, nil
}

// SetCoverKey records the S3 object key of an uploaded cover.
func SetCoverKey(ctx context.Context, db *sql.DB, id, key string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE books SET cover_key = $2, updated_at = now() WHERE id = $1`, id, key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
