package books

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

var sortColumns = map[string]string{
	"title":         "b.title",
	"publishedYear": "b.published_year",
	"createdAt":     "b.created_at",
}

const rowCols = `
b.id::text, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages, b.author_id::text, b.cover_key, b.created_at, b.updated_at,
a.id::text, a.name, a.email, a.nationality`

// Search returns one page of matching books plus the total match count.
// Filters are ANDed; empty filters are omitted entirely.
func Search(ctx context.Context, db *sql.DB, f SearchFilter) ([]Row, int, error) {
	where := []string{}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, "b.title ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		where = append(where, "b.genre = $"+strconv.Itoa(len(args)))
	}
	if f.AuthorName != "" {
		args = append(args, "%"+f.AuthorName+"%")
		where = append(where, "a.name ILIKE $"+strconv.Itoa(len(args)))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ") + "\n"
	}

	qCount := `
SELECT COUNT(*)
FROM books b
JOIN authors a ON a.id = b.author_id
` + whereSQL
	var total int
	if err := db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "b.created_at"
	}
	dir := "DESC"
	if f.Order == "asc" {
		dir = "ASC"
	}

	qRows := `
SELECT ` + rowCols + `
FROM books b
JOIN authors a ON a.id = b.author_id
` + whereSQL + "ORDER BY " + col + " " + dir + "\n" +
		"LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)

	rows, err := db.QueryContext(ctx, qRows, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		var r Row
		if err := scanRow(rows, &r); err != nil {
			return nil, 0, err
		}
		out = append(out, r)
	}
	return out, total, rows.Err()
}

func scanRow(sc interface{ Scan(...any) error }, r *Row) error {
	var (
		desc, isbn, genre, key sql.NullString
		year, pages            sql.NullInt64
		nationality            sql.NullString
	)
	if err := sc.Scan(
		&r.ID, &r.Title, &desc, &isbn, &year, &genre, &pages, &r.AuthorID, &key, &r.CreatedAt, &r.UpdatedAt,
		&r.Author.ID, &r.Author.Name, &r.Author.Email, &nationality,
	); err != nil {
		return err
	}
	if desc.Valid {
		r.Description = &desc.String
	}
	if isbn.Valid {
		r.ISBN = &isbn.String
	}
	if genre.Valid {
		r.Genre = &genre.String
	}
	if key.Valid {
		r.CoverKey = &key.String
	}
	if year.Valid {
		y := int(year.Int64)
		r.PublishedYear = &y
	}
	if pages.Valid {
		p := int(pages.Int64)
		r.Pages = &p
	}
	return nil
}
