package authorsstore

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/dbx"
)

var (
	reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)
	reDashes  = regexp.MustCompile(`-+`)
)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)
	s = reNonSlug.ReplaceAllString(normalized, "-")
	s = reDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "author"
	}
	return s
}

func ensureUniqueSlug(ctx context.Context, g dbx.Getter, base string, maxTries int) (string, error) {
	slug := base
	for i := 1; i <= maxTries; i++ {
		var exists bool
		if err := g.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM authors WHERE slug = $1)`, slug,
		).Scan(&exists); err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(i+1)
	}
	return "", fmt.Errorf("could not create unique slug for %q", base)
}
