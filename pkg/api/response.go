package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"asset-guardian/pkg/types"
)

type ListResponse[T any] struct {
	Data []T              `json:"data"`
	Meta types.Pagination `json:"meta"`
}

// SuccessOne - один объект без обертки.
func SuccessOne[T any](c echo.Context, code int, data T) error {
	return c.JSON(code, data)
}

func SuccessList[T any](c echo.Context, list []T, total uint64, page, limit int) error {
	if list == nil {
		list = make([]T, 0)
	}

	return c.JSON(http.StatusOK, ListResponse[T]{
		Data: list,
		Meta: types.NewPagination(total, page, limit),
	})
}
