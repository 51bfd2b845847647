package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/api/metrics"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

const uploadedFileKey = "uploaded_file"

// Upload stores the single file sent in the given multipart field before the
// handler runs. A request without that field, or without a multipart body at
// all, passes through untouched. When the handler fails, the stored file is
// removed so no upload is left without a proposal.
func Upload(store ports.FileStore, field string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fh, err := c.FormFile(field)
			switch {
			case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
				return next(c)
			case err != nil:
				return fmt.Errorf("read upload %q: %w", field, err)
			}

			src, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open upload %q: %w", field, err)
			}
			defer src.Close()

			stored, err := store.Save(field, fh.Filename, src)
			if err != nil {
				return err
			}
			metrics.UploadedBytesTotal.Add(float64(stored.Size))

			c.Set(uploadedFileKey, stored)
			if err := next(c); err != nil {
				if rerr := store.Remove(stored); rerr != nil {
					log.Error().Err(rerr).Str("file", stored.Name).Msg("failed to discard upload")
				}
				return err
			}
			return nil
		}
	}
}

// UploadedFile returns the file stored by Upload for this request, or nil.
func UploadedFile(c echo.Context) *ports.StoredFile {
	f, _ := c.Get(uploadedFileKey).(*ports.StoredFile)
	return f
}
