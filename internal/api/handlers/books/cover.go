package books

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/apperr"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	storage "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/storage/s3"
	storebooks "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/store/books"
)

var coverTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// POST /books/{id}/cover
//
// Issues a presigned PUT URL for direct upload and records the object
// key. The client uploads the image itself; nothing streams through us.
func CoverUpload(db *sql.DB, s3c *storage.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s3c == nil {
			httpx.Error(w, http.StatusServiceUnavailable, "cover storage not configured")
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var body struct {
			ContentType string `json:"contentType"`
		}
		defer r.Body.Close()
		if err := httpx.DecodeJSON(r, &body); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		ext, ok := coverTypes[strings.ToLower(strings.TrimSpace(body.ContentType))]
		if !ok {
			httpx.Error(w, http.StatusBadRequest, "contentType must be image/jpeg, image/png or image/webp")
			return
		}

		// 404 before presigning anything.
		if _, err := storebooks.CoverKey(r.Context(), db, id); err != nil {
			apperr.Handle(w, err, "failed to fetch book")
			return
		}

		key := "covers/" + id + ext
		uploadURL, err := s3c.PresignUpload(r.Context(), key, body.ContentType)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to presign upload")
			return
		}
		if err := storebooks.SetCoverKey(r.Context(), db, id, key); err != nil {
			apperr.Handle(w, err, "failed to record cover")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"uploadUrl": uploadURL,
			"key":       key,
		})
	}
}

// GET /books/{id}/cover — redirect to a presigned download URL.
func CoverDownload(db *sql.DB, s3c *storage.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s3c == nil {
			httpx.Error(w, http.StatusServiceUnavailable, "cover storage not configured")
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		key, err := storebooks.CoverKey(r.Context(), db, id)
		if err != nil {
			apperr.Handle(w, err, "failed to fetch book")
			return
		}
		if key == "" {
			httpx.Error(w, http.StatusNotFound, "not found")
			return
		}
		url, err := s3c.PresignDownload(r.Context(), key)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to presign download")
			return
		}
		http.Redirect(w, r, url, http.StatusFound)
	}
}
