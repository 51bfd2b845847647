package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// emailParam returns the decoded :email path segment. Echo matches routes on
// the escaped path, so "admin%40example.com" reaches handlers undecoded.
func emailParam(c echo.Context) (string, bool) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return "", false
	}
	return email, true
}
