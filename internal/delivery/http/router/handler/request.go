// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "collegeblog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid request body"), err.Error())
	}

	return c.Validate(req)
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithMessage("Invalid blog id")
	}

	return id, nil
}
