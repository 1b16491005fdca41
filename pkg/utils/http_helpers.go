package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "asset-guardian/pkg/errors"
)

const (
	MsgMissingFields    = "Missing required fields"
	MsgValidationFailed = "Validation failed"
	MsgInternalError    = "Internal server error"
	MsgNotFound         = "Record not found"
	MsgDuplicate        = "Unique constraint violation"
)

const pgUniqueViolation = "23505"

// IsClientError - ошибки, которые отдаются клиенту с кодом 4xx, а не 500.
func IsClientError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrAlreadyExists) ||
		errors.Is(err, apperrors.ErrBadRequest) ||
		isUniqueViolation(err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ErrorResponse - единая точка преобразования ошибки в HTTP-ответ {"error": "..."}.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			fields := []zap.Field{
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			}
			if httpErr.Code >= http.StatusInternalServerError {
				logger.Error("HTTP Error", fields...)
			} else {
				logger.Warn("HTTP Error", fields...)
			}
		}

		response := map[string]interface{}{"error": httpErr.Message}
		for k, v := range httpErr.Details {
			response[k] = v
		}
		return c.JSON(httpErr.Code, response)
	}

	if IsClientError(err) {
		logger.Warn("Client Error", zap.Error(err))
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		onlyRequired := true
		for _, e := range validationErrors {
			fields = append(fields, e.Field())
			if e.Tag() != "required" {
				onlyRequired = false
			}
		}
		msg := MsgValidationFailed
		if onlyRequired {
			msg = MsgMissingFields
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": msg, "fields": fields})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": invalidInput.Message})
	}

	var alreadyExists *apperrors.AlreadyExistsError
	if errors.As(err, &alreadyExists) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": alreadyExists.Message})
	}
	if isUniqueViolation(err) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": MsgDuplicate})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"error": MsgNotFound})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	response := map[string]interface{}{"error": MsgInternalError}
	if c.Echo().Debug {
		response["details"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, response)
}
