package authorsstore_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	authorsstore "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/authors"
)

func TestList_WithBookCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := authorsstore.New(db)

	t1, _ := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")

	listRe := regexp.MustCompile(
		`SELECT a\.id::text, a\.slug, a\.name, a\.email, a\.bio, a\.nationality, a\.birth_year, a\.created_at, a\.updated_at, COUNT\(b\.id\) AS books_count\s+` +
			`FROM authors a\s+LEFT JOIN books b ON b\.author_id = a\.id\s+GROUP BY a\.id\s+ORDER BY a\.name`,
	)

	rows := sqlmock.NewRows([]string{
		"id", "slug", "name", "email", "bio", "nationality", "birth_year", "created_at", "updated_at", "books_count",
	}).AddRow(
		"a1", "ada-lovelace", "Ada Lovelace", "ada@example.com", nil, "British", 1815, t1, t1, 2,
	).AddRow(
		"a2", "brandon-sanderson", "Brandon Sanderson", "brandon@example.com", "Fantasy author", nil, nil, t1, t1, 0,
	)

	mock.ExpectQuery(listRe.String()).WillReturnRows(rows)

	got, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows; got %d", len(got))
	}
	if got[0].BooksCount != 2 || got[1].BooksCount != 0 {
		t.Fatalf("want counts 2,0; got %d,%d", got[0].BooksCount, got[1].BooksCount)
	}
	if got[0].BirthYear == nil || *got[0].BirthYear != 1815 {
		t.Fatalf("want birthYear=1815; got %v", got[0].BirthYear)
	}
	if got[1].BirthYear != nil || got[1].Nationality != nil {
		t.Fatalf("null columns should stay nil pointers")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_ReportsBooksDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := authorsstore.New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE author_id = $1`)).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := store.Delete(t.Context(), "a1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 3 {
		t.Fatalf("want booksDeleted=3; got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_MissingAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := authorsstore.New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE author_id = $1`)).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = store.Delete(t.Context(), "nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows; got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBooksByYear_OrdersYearAscNullsLast(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := authorsstore.New(db)

	t1, _ := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	t2, _ := time.Parse(time.RFC3339, "2024-01-02T00:00:00Z")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name FROM authors WHERE id = $1`)).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ada Lovelace"))

	booksRe := regexp.MustCompile(
		`SELECT b\.id::text, .+\s+FROM books b\s+WHERE b\.author_id = \$1\s+` +
			`ORDER BY b\.published_year ASC NULLS LAST, b\.created_at ASC`,
	)
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "isbn", "published_year", "genre", "pages", "author_id", "cover_key", "created_at", "updated_at",
	}).AddRow(
		"b1", "Notes", nil, nil, 1843, "Science", 120, "a1", nil, t1, t1,
	).AddRow(
		"b2", "Undated", nil, nil, nil, nil, nil, "a1", nil, t2, t2,
	)
	mock.ExpectQuery(booksRe.String()).WithArgs("a1").WillReturnRows(rows)

	name, books, err := store.BooksByYear(t.Context(), "a1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if name != "Ada Lovelace" {
		t.Fatalf("want name=Ada Lovelace; got %q", name)
	}
	if len(books) != 2 {
		t.Fatalf("want 2 books; got %d", len(books))
	}
	if books[0].PublishedYear == nil || *books[0].PublishedYear != 1843 {
		t.Fatalf("want first book year 1843; got %v", books[0].PublishedYear)
	}
	if books[1].PublishedYear != nil {
		t.Fatalf("undated book should keep nil year")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBooksByYear_UnknownAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := authorsstore.New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name FROM authors WHERE id = $1`)).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, _, err = store.BooksByYear(t.Context(), "nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows; got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
