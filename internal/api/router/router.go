package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/handlers"
	authorshandler "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/handlers/authors"
	bookshandler "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/handlers/books"
	mw "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/middlewares"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/auth"
	storage "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/storage/s3"
	authorsstore "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/authors"
)

// Router wires every endpoint on a method-pattern ServeMux. Mutating
// routes require a Bearer token only when AUTH_REQUIRED=1, so the API
// stays open for local development.
func Router(db *sql.DB, rdb *redis.Client, s3c *storage.Client) http.Handler {
	mux := http.NewServeMux()

	guard := func(h http.Handler) http.Handler { return h }
	if os.Getenv("AUTH_REQUIRED") == "1" {
		guard = mw.RequireAuth
	}

	mux.Handle("GET /healthz", handlers.Health(db))
	mux.Handle("POST /auth/login", auth.Login())

	// Authors
	ah := authorshandler.NewHandler(db, rdb, authorsstore.New(db))
	mux.HandleFunc("GET /authors", ah.List)
	mux.Handle("POST /authors", guard(http.HandlerFunc(ah.Create)))
	mux.HandleFunc("GET /authors/{id}", ah.Get)
	mux.Handle("PUT /authors/{id}", guard(http.HandlerFunc(ah.Update)))
	mux.Handle("DELETE /authors/{id}", guard(http.HandlerFunc(ah.Delete)))
	mux.HandleFunc("GET /authors/{id}/stats", ah.Stats)

	// Books. Book writes evict the owning author's cached stats.
	var cache authorshandler.StatsCache
	if rdb != nil {
		cache = rdb
	}
	mux.Handle("GET /books/search", bookshandler.Search(db))
	mux.Handle("GET /books/{id}", bookshandler.Get(db))
	mux.Handle("POST /books", guard(bookshandler.Create(db, cache)))
	mux.Handle("PUT /books/{id}", guard(bookshandler.Update(db, cache)))
	mux.Handle("DELETE /books/{id}", guard(bookshandler.Delete(db, s3c, cache)))
	mux.Handle("POST /books/{id}/cover", guard(bookshandler.CoverUpload(db, s3c)))
	mux.Handle("GET /books/{id}/cover", bookshandler.CoverDownload(db, s3c))

	// Catalog-wide aggregates
	mux.Handle("GET /stats", handlers.CatalogStats(db, rdb))

	return mux
}
