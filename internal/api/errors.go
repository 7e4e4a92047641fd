package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/qoiinfo/pkg/qoi"
)

var ErrBodyTooLarge = errors.New("request body too large")

// decodeFailure maps a decode error to an HTTP status and error body.
func decodeFailure(err error) (int, ErrorBody) {
	body := ErrorBody{Message: err.Error()}

	var chErr *qoi.UnknownChannelFormatError
	var csErr *qoi.UnknownColorspaceError
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		body.Type = "body_too_large"
		return http.StatusRequestEntityTooLarge, body
	case errors.Is(err, qoi.ErrInvalidMagic):
		body.Type = "invalid_magic"
	case errors.As(err, &chErr):
		body.Type = "unknown_channel_format"
		body.Value = &chErr.Value
	case errors.As(err, &csErr):
		body.Type = "unknown_colorspace"
		body.Value = &csErr.Value
	case errors.Is(err, qoi.ErrTruncated):
		body.Type = "truncated_header"
	default:
		body.Type = "server_error"
		return http.StatusInternalServerError, body
	}
	return http.StatusUnprocessableEntity, body
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, ErrorBody{Message: msg, Type: "not_found_error"})
}

func writeError(c *echo.Context, status int, body ErrorBody) error {
	return c.JSON(status, map[string]any{"error": body})
}
