package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/api/metrics"
	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// forbiddenResponse is the envelope for authorization failures.
type forbiddenResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for every other error.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders three
// tiers: authorization failures as 403 {"error":"Forbidden"}, missing records
// as 404 {"message":...}, and anything unexpected as a logged 500 with a
// generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthorizationDeniedTotal.WithLabelValues(c.Path()).Inc()
			_ = c.JSON(http.StatusForbidden, forbiddenResponse{Error: "Forbidden"})
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (unknown route, method not allowed, body too large).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrPhoneNotFound):
		return http.StatusNotFound, "Phone number not found for this user"
	case errors.Is(err, domain.ErrTestimonialNotFound):
		return http.StatusNotFound, "Testimonial not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
