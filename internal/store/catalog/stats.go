package catalogstore

import (
	"context"
	"database/sql"
)

// Stats is the catalog-wide aggregate snapshot.
type Stats struct {
	TotalAuthors int      `json:"totalAuthors"`
	TotalBooks   int      `json:"totalBooks"`
	AveragePages int      `json:"averagePages"`
	Genres       []string `json:"genres"`
}

// Snapshot computes catalog-wide figures in one round of queries.
func Snapshot(ctx context.Context, db *sql.DB) (*Stats, error) {
	s := &Stats{Genres: []string{}}

	const qCounts = `
SELECT
  (SELECT COUNT(*) FROM authors),
  (SELECT COUNT(*) FROM books),
  (SELECT COALESCE(ROUND(AVG(pages)), 0) FROM books WHERE pages IS NOT NULL)`
	if err := db.QueryRowContext(ctx, qCounts).Scan(&s.TotalAuthors, &s.TotalBooks, &s.AveragePages); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT genre FROM books WHERE genre IS NOT NULL ORDER BY genre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		s.Genres = append(s.Genres, g)
	}
	return s, rows.Err()
}
