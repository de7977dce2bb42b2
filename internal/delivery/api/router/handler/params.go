package handler

import (
	"pantry/internal/delivery/api/response"
	"pantry/internal/delivery/api/validator"
	"pantry/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// validationError writes the 400 envelope for a request rejected by its `validate` tags.
func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Describe(err))
}

// pageRequest reads the page and size query parameters. Bounds are applied by the use cases.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	var page entity.PageRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("size", &page.Size).
		BindError()

	return page, err
}
