package stats

import (
	"math"
	"sort"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/models"
)

// BookRef points at a book by title and publication year.
type BookRef struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// PagesRef points at a book by title and page count.
type PagesRef struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

type AuthorStats struct {
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	TotalBooks   int       `json:"totalBooks"`
	FirstBook    *BookRef  `json:"firstBook"`
	LatestBook   *BookRef  `json:"latestBook"`
	AveragePages int       `json:"averagePages"`
	Genres       []string  `json:"genres"`
	LongestBook  *PagesRef `json:"longestBook"`
	ShortestBook *PagesRef `json:"shortestBook"`
}

// ForAuthor reduces an author's books into summary figures. The slice
// must already be ordered by publishedYear ascending; equal years keep
// whatever order the store returned. Year, pages and genre figures are
// computed independently, so a book missing one field still counts
// toward the others.
func ForAuthor(authorID, authorName string, books []models.Book) AuthorStats {
	s := AuthorStats{
		AuthorID:   authorID,
		AuthorName: authorName,
		TotalBooks: len(books),
		Genres:     []string{},
	}

	var pagesSum, pagesN int
	seen := map[string]struct{}{}
	for _, b := range books {
		if b.PublishedYear != nil {
			if s.FirstBook == nil {
				s.FirstBook = &BookRef{Title: b.Title, Year: *b.PublishedYear}
			}
			s.LatestBook = &BookRef{Title: b.Title, Year: *b.PublishedYear}
		}
		if b.Pages != nil {
			p := *b.Pages
			pagesSum += p
			pagesN++
			// first-wins on ties
			if s.LongestBook == nil || p > s.LongestBook.Pages {
				s.LongestBook = &PagesRef{Title: b.Title, Pages: p}
			}
			if s.ShortestBook == nil || p < s.ShortestBook.Pages {
				s.ShortestBook = &PagesRef{Title: b.Title, Pages: p}
			}
		}
		if b.Genre != nil {
			if _, ok := seen[*b.Genre]; !ok {
				seen[*b.Genre] = struct{}{}
				s.Genres = append(s.Genres, *b.Genre)
			}
		}
	}

	if pagesN > 0 {
		s.AveragePages = int(math.Round(float64(pagesSum) / float64(pagesN)))
	}
	sort.Strings(s.Genres)
	return s
}
