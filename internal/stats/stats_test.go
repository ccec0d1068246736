package stats

import (
	"reflect"
	"testing"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/models"
)

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }

func book(title string, year, pages *int, genre *string) models.Book {
	return models.Book{Title: title, PublishedYear: year, Pages: pages, Genre: genre}
}

func TestForAuthor_Empty(t *testing.T) {
	s := ForAuthor("a-1", "Nadie", nil)
	if s.TotalBooks != 0 {
		t.Errorf("totalBooks = %d, want 0", s.TotalBooks)
	}
	if s.FirstBook != nil || s.LatestBook != nil || s.LongestBook != nil || s.ShortestBook != nil {
		t.Error("expected all book refs to be nil")
	}
	if s.AveragePages != 0 {
		t.Errorf("averagePages = %d, want 0", s.AveragePages)
	}
	if s.Genres == nil || len(s.Genres) != 0 {
		t.Errorf("genres = %v, want empty non-nil slice", s.Genres)
	}
}

func TestForAuthor_YearAndPagesPartitionsAreIndependent(t *testing.T) {
	// From the contract examples: one book has only a year+pages, the
	// other has a year but no pages.
	books := []models.Book{
		book("Early", intp(2001), intp(100), nil),
		book("Late", intp(2010), nil, nil),
	}
	s := ForAuthor("a-1", "Ana", books)
	if s.FirstBook == nil || s.FirstBook.Year != 2001 {
		t.Fatalf("firstBook = %+v, want year 2001", s.FirstBook)
	}
	if s.LatestBook == nil || s.LatestBook.Year != 2010 {
		t.Fatalf("latestBook = %+v, want year 2010", s.LatestBook)
	}
	if s.AveragePages != 100 {
		t.Errorf("averagePages = %d, want 100", s.AveragePages)
	}
	if s.LongestBook == nil || s.LongestBook.Title != "Early" {
		t.Errorf("longestBook = %+v, want Early", s.LongestBook)
	}
}

func TestForAuthor_AveragePages(t *testing.T) {
	books := []models.Book{
		book("A", nil, intp(100), nil),
		book("B", nil, intp(200), nil),
		book("C", nil, intp(300), nil),
	}
	if s := ForAuthor("a", "x", books); s.AveragePages != 200 {
		t.Errorf("averagePages = %d, want 200", s.AveragePages)
	}

	allNull := []models.Book{book("A", nil, nil, nil), book("B", nil, nil, nil)}
	if s := ForAuthor("a", "x", allNull); s.AveragePages != 0 {
		t.Errorf("averagePages over all-null pages = %d, want 0", s.AveragePages)
	}

	// rounded mean: (100+101)/2 = 100.5 -> 101
	half := []models.Book{book("A", nil, intp(100), nil), book("B", nil, intp(101), nil)}
	if s := ForAuthor("a", "x", half); s.AveragePages != 101 {
		t.Errorf("averagePages = %d, want 101", s.AveragePages)
	}
}

func TestForAuthor_ExtremesFirstWinsOnTies(t *testing.T) {
	books := []models.Book{
		book("First Long", nil, intp(500), nil),
		book("Second Long", nil, intp(500), nil),
		book("First Short", nil, intp(90), nil),
		book("Second Short", nil, intp(90), nil),
	}
	s := ForAuthor("a", "x", books)
	if s.LongestBook == nil || s.LongestBook.Title != "First Long" {
		t.Errorf("longestBook = %+v, want First Long", s.LongestBook)
	}
	if s.ShortestBook == nil || s.ShortestBook.Title != "First Short" {
		t.Errorf("shortestBook = %+v, want First Short", s.ShortestBook)
	}
}

func TestForAuthor_FirstAndLatestKeepInputOrderOnEqualYears(t *testing.T) {
	books := []models.Book{
		book("No Year", nil, nil, nil),
		book("A", intp(1999), nil, nil),
		book("B", intp(1999), nil, nil),
	}
	s := ForAuthor("a", "x", books)
	if s.FirstBook == nil || s.FirstBook.Title != "A" {
		t.Errorf("firstBook = %+v, want A", s.FirstBook)
	}
	if s.LatestBook == nil || s.LatestBook.Title != "B" {
		t.Errorf("latestBook = %+v, want B", s.LatestBook)
	}
}

func TestForAuthor_GenresSortedDeduped(t *testing.T) {
	books := []models.Book{
		book("A", nil, nil, strp("terror")),
		book("B", nil, nil, strp("aventura")),
		book("C", nil, nil, nil),
		book("D", nil, nil, strp("terror")),
		book("E", nil, nil, strp("drama")),
	}
	s := ForAuthor("a", "x", books)
	want := []string{"aventura", "drama", "terror"}
	if !reflect.DeepEqual(s.Genres, want) {
		t.Errorf("genres = %v, want %v", s.Genres, want)
	}
}

func TestForAuthor_TotalBooksCountsEverything(t *testing.T) {
	books := []models.Book{
		book("A", nil, nil, nil),
		book("B", intp(2020), intp(120), strp("ensayo")),
	}
	if s := ForAuthor("a", "x", books); s.TotalBooks != 2 {
		t.Errorf("totalBooks = %d, want 2", s.TotalBooks)
	}
}
