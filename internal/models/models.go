package models

import "time"

type Author struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	BirthYear   *int      `json:"birthYear,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorRef is the public author shape embedded in book payloads.
type AuthorRef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Nationality *string `json:"nationality,omitempty"`
}

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	ISBN          *string   `json:"isbn,omitempty"`
	PublishedYear *int      `json:"publishedYear,omitempty"`
	Genre         *string   `json:"genre,omitempty"`
	Pages         *int      `json:"pages,omitempty"`
	AuthorID      string    `json:"authorId"`
	CoverKey      *string   `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
