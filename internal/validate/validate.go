package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Search defaults and bounds.
const (
	DefaultLimit = 10
	MaxLimit     = 50
	DefaultSort  = "createdAt"
	DefaultOrder = "desc"
	MinBirthYear = 1800
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	sortable = map[string]struct{}{
		"title":         {},
		"publishedYear": {},
		"createdAt":     {},
	}
)

// RequireBounded trims and ensures length bounds.
func RequireBounded(name, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < min || utf8.RuneCountInString(s) > max {
		return "", errors.New(name + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " characters")
	}
	return s, nil
}

// Email checks that s is email-shaped. Not a deliverability check.
func Email(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || !emailRe.MatchString(s) {
		return "", errors.New("email must be a valid email address")
	}
	return s, nil
}

// BirthYear accepts nil or a value in [1800, current year].
func BirthYear(y *int) error {
	if y == nil {
		return nil
	}
	if *y < MinBirthYear || *y > time.Now().Year() {
		return errors.New("birthYear must be between " + strconv.Itoa(MinBirthYear) + " and the current year")
	}
	return nil
}

// Pages accepts nil or a positive page count.
func Pages(p *int) error {
	if p == nil {
		return nil
	}
	if *p <= 0 {
		return errors.New("pages must be a positive integer")
	}
	return nil
}

// SortBy normalizes the requested sort field against the allow-list.
// Unknown values silently fall back to the default, never an error.
func SortBy(raw string) string {
	s := strings.TrimSpace(raw)
	if _, ok := sortable[s]; ok {
		return s
	}
	return DefaultSort
}

// Order normalizes to "asc" or "desc", defaulting to "desc".
func Order(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "asc") {
		return "asc"
	}
	return DefaultOrder
}

// Page parses a page number; junk and non-positive values clamp to 1.
func Page(raw string) int {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v >= 1 {
		return v
	}
	return 1
}

// Limit parses a page size; junk falls back to the default and the
// result is clamped to [1, MaxLimit].
func Limit(raw string) int {
	v := DefaultLimit
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		v = n
	}
	if v < 1 {
		v = 1
	}
	if v > MaxLimit {
		v = MaxLimit
	}
	return v
}
