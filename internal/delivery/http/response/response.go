// Package response writes the JSON bodies shared by all handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the shape of every failed response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is a success response carrying only a message.
type MessageBody struct {
	Message string `json:"message"`
}

// Error writes {"error": message}. HEAD requests get the status only.
func Error(c echo.Context, statusCode int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// JSON writes data as is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// PNG writes an image/png body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}
