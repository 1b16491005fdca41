package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/validation"
)

const knownID = "4f1c1a9e-8a3e-4d55-9a77-1d2b3c4d5e6f"

type fakeMaterialService struct {
	items      []entities.Material
	total      uint64
	lastFilter types.Filter
	created    *dto.CreateMaterialDTO
	createErr  error
	deleted    string
}

func (s *fakeMaterialService) List(_ context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	s.lastFilter = filter
	return s.items, s.total, nil
}

func (s *fakeMaterialService) Find(_ context.Context, id string) (*entities.Material, error) {
	if id != knownID {
		return nil, apperrors.ErrNotFound
	}
	return &entities.Material{ID: id, Code: "MAT-OLH", Name: "Óleo hidráulico", Unit: "l"}, nil
}

func (s *fakeMaterialService) Create(_ context.Context, d dto.CreateMaterialDTO) (*entities.Material, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &d
	return &entities.Material{ID: knownID, Code: d.Code, Name: d.Name, Unit: d.Unit}, nil
}

func (s *fakeMaterialService) Update(_ context.Context, id string, d dto.UpdateMaterialDTO) (*entities.Material, error) {
	if id != knownID {
		return nil, apperrors.ErrNotFound
	}
	m := entities.Material{ID: id, Code: "MAT-OLH", Name: "Óleo hidráulico", Unit: "l"}
	if d.Name != nil {
		m.Name = *d.Name
	}
	return &m, nil
}

func (s *fakeMaterialService) Delete(_ context.Context, id string) error {
	if id != knownID {
		return apperrors.ErrNotFound
	}
	s.deleted = id
	return nil
}

func newTestServer(service *fakeMaterialService) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	ctrl := NewResourceController[entities.Material, dto.CreateMaterialDTO, dto.UpdateMaterialDTO](service, "Material", zap.NewNop())

	g := e.Group("/api/materials")
	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	g.POST("", ctrl.Create)
	g.PUT("/:id", ctrl.Update)
	g.DELETE("/:id", ctrl.Delete)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestResourceController_ListEnvelope(t *testing.T) {
	service := &fakeMaterialService{
		items: []entities.Material{{ID: knownID, Code: "MAT-OLH"}},
		total: 25,
	}
	e := newTestServer(service)

	rec := doRequest(e, http.MethodGet, "/api/materials?page=2&limit=10&sortBy=name&sortOrder=asc&unit=l", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 25.0, meta["total"])
	assert.Equal(t, 2.0, meta["page"])
	assert.Equal(t, 10.0, meta["limit"])
	assert.Equal(t, 3.0, meta["totalPages"])
	assert.Equal(t, true, meta["hasNext"])
	assert.Equal(t, true, meta["hasPrev"])
	assert.Len(t, body["data"], 1)

	assert.Equal(t, 10, service.lastFilter.Offset)
	assert.Equal(t, "name", service.lastFilter.SortBy)
	assert.Equal(t, "asc", service.lastFilter.SortOrder)
	assert.Equal(t, "l", service.lastFilter.Filter["unit"])
}

func TestResourceController_EmptyListIsArray(t *testing.T) {
	e := newTestServer(&fakeMaterialService{})

	rec := doRequest(e, http.MethodGet, "/api/materials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestResourceController_Get(t *testing.T) {
	e := newTestServer(&fakeMaterialService{})

	t.Run("found returns bare object", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/materials/"+knownID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "MAT-OLH", decode(t, rec)["code"])
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/materials/7d8c2a10-0000-4000-8000-000000000000", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Material not found", decode(t, rec)["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/materials/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResourceController_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := &fakeMaterialService{}
		e := newTestServer(service)

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":"MAT-FLT","name":"Filtros","unit":"un","unitCost":120}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, service.created)
		assert.Equal(t, 120.0, *service.created.UnitCost)
	})

	t.Run("missing required fields", func(t *testing.T) {
		e := newTestServer(&fakeMaterialService{})

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":"MAT-FLT"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "Missing required fields", body["error"])
		assert.ElementsMatch(t, []interface{}{"name", "unit"}, body["fields"])
	})

	t.Run("invalid value", func(t *testing.T) {
		e := newTestServer(&fakeMaterialService{})

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":"MAT-FLT","name":"Filtros","unit":"un","stock":-1}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decode(t, rec)["error"])
	})

	t.Run("malformed json", func(t *testing.T) {
		e := newTestServer(&fakeMaterialService{})

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		service := &fakeMaterialService{createErr: apperrors.NewAlreadyExistsError("Material with this code already exists")}
		e := newTestServer(service)

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":"MAT-FLT","name":"Filtros","unit":"un"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Material with this code already exists", decode(t, rec)["error"])
	})

	t.Run("unexpected error hides details in production mode", func(t *testing.T) {
		service := &fakeMaterialService{createErr: assert.AnError}
		e := newTestServer(service)

		rec := doRequest(e, http.MethodPost, "/api/materials", `{"code":"MAT-FLT","name":"Filtros","unit":"un"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Internal server error", body["error"])
		assert.NotContains(t, body, "details")
	})
}

func TestResourceController_UpdateAndDelete(t *testing.T) {
	service := &fakeMaterialService{}
	e := newTestServer(service)

	rec := doRequest(e, http.MethodPut, "/api/materials/"+knownID, `{"name":"Óleo hidráulico ISO 68"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Óleo hidráulico ISO 68", decode(t, rec)["name"])

	rec = doRequest(e, http.MethodPut, "/api/materials/7d8c2a10-0000-4000-8000-000000000000", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/materials/"+knownID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, knownID, service.deleted)

	rec = doRequest(e, http.MethodDelete, "/api/materials/7d8c2a10-0000-4000-8000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
