package books

import (
	"context"
	"database/sql"
)

// FetchByID loads one book joined with its author's public fields.
func FetchByID(ctx context.Context, db *sql.DB, id string) (*Row, error) {
	const q = `
SELECT ` + rowCols + `
FROM books b
JOIN authors a ON a.id = b.author_id
WHERE b.id = $1`
	var r Row
	if err := scanRow(db.QueryRowContext(ctx, q, id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// AuthorOf reports which author a book belongs to.
func AuthorOf(ctx context.Context, db *sql.DB, id string) (string, error) {
	var authorID string
	if err := db.QueryRowContext(ctx, `SELECT author_id::text FROM books WHERE id = $1`, id).Scan(&authorID); err != nil {
		return "", err
	}
	return authorID, nil
}

// CoverKey returns the stored cover object key, or sql.ErrNoRows when
// the book does not exist. An empty string means no cover uploaded yet.
func CoverKey(ctx context.Context, db *sql.DB, id string) (string, error) {
	var key sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT cover_key FROM books WHERE id = $1`, id).Scan(&key); err != nil {
		return "", err
	}
	return key.String, nil
}
