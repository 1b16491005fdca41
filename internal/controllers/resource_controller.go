package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/pkg/api"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/middleware"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

// ResourceService - набор операций, который нужен обобщенному контроллеру.
// T - сущность, C - DTO создания, U - DTO частичного обновления.
type ResourceService[T, C, U any] interface {
	List(ctx context.Context, filter types.Filter) ([]T, uint64, error)
	Find(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, createDTO C) (*T, error)
	Update(ctx context.Context, id string, updateDTO U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceController - один CRUD-контроллер для всех ресурсов.
type ResourceController[T, C, U any] struct {
	service ResourceService[T, C, U]
	// Имя ресурса для сообщений об ошибках: "Asset", "FMEA record" и т.д.
	resource string
	logger   *zap.Logger
}

func NewResourceController[T, C, U any](service ResourceService[T, C, U], resource string, logger *zap.Logger) *ResourceController[T, C, U] {
	return &ResourceController[T, C, U]{service: service, resource: resource, logger: logger}
}

func (rc *ResourceController[T, C, U]) List(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	items, total, err := rc.service.List(c.Request().Context(), filter)
	if err != nil {
		return rc.fail(c, err)
	}
	return api.SuccessList(c, items, total, filter.Page, filter.Limit)
}

func (rc *ResourceController[T, C, U]) Get(c echo.Context) error {
	id, err := rc.parseID(c)
	if err != nil {
		return rc.fail(c, err)
	}

	item, err := rc.service.Find(c.Request().Context(), id)
	if err != nil {
		return rc.fail(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, item)
}

func (rc *ResourceController[T, C, U]) Create(c echo.Context) error {
	var createDTO C
	if err := c.Bind(&createDTO); err != nil {
		return rc.fail(c, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil))
	}
	if err := c.Validate(&createDTO); err != nil {
		return rc.fail(c, err)
	}

	created, err := rc.service.Create(c.Request().Context(), createDTO)
	if err != nil {
		return rc.fail(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, created)
}

func (rc *ResourceController[T, C, U]) Update(c echo.Context) error {
	id, err := rc.parseID(c)
	if err != nil {
		return rc.fail(c, err)
	}

	var updateDTO U
	if err := c.Bind(&updateDTO); err != nil {
		return rc.fail(c, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil))
	}
	if err := c.Validate(&updateDTO); err != nil {
		return rc.fail(c, err)
	}

	updated, err := rc.service.Update(c.Request().Context(), id, updateDTO)
	if err != nil {
		return rc.fail(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, updated)
}

func (rc *ResourceController[T, C, U]) Delete(c echo.Context) error {
	id, err := rc.parseID(c)
	if err != nil {
		return rc.fail(c, err)
	}

	if err := rc.service.Delete(c.Request().Context(), id); err != nil {
		return rc.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID - идентификаторы это UUID, все остальное заведомо не найдется.
func (rc *ResourceController[T, C, U]) parseID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.ErrNotFound
	}
	return id, nil
}

// fail подставляет имя ресурса в 404 и отдает остальное в utils.ErrorResponse.
func (rc *ResourceController[T, C, U]) fail(c echo.Context, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		err = apperrors.NewHttpError(http.StatusNotFound, fmt.Sprintf("%s not found", rc.resource), nil, nil)
	}
	return utils.ErrorResponse(c, err, middleware.LoggerFromContext(c, rc.logger))
}
