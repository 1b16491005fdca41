package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-guardian/internal/entities"
	db "asset-guardian/internal/infrastructure/bd"
	"asset-guardian/pkg/types"
)

const materialTable = "materials"

var materialFields = []string{
	"id", "code", "name", "description", "unit", "unit_cost", "stock", "created_at", "updated_at",
}

const materialDuplicateMsg = "Material with this code already exists"

var materialListSpec = db.ListSpec{
	Filters: map[string]string{
		"unit": "unit",
	},
	Lists: map[string]bool{"unit": true},
	Sorts: map[string]string{
		"code":      "code",
		"name":      "name",
		"unitCost":  "unit_cost",
		"stock":     "stock",
		"createdAt": "created_at",
	},
	SearchColumns: []string{"code", "name", "description"},
	DefaultSort:   "name ASC",
	TieBreaker:    "id",
}

type MaterialRepositoryInterface interface {
	GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id string) (*entities.Material, error)
	CreateMaterial(ctx context.Context, material *entities.Material) error
	UpdateMaterial(ctx context.Context, material *entities.Material) error
	DeleteMaterial(ctx context.Context, id string) error
}

type MaterialRepository struct {
	storage *pgxpool.Pool
}

func NewMaterialRepository(storage *pgxpool.Pool) MaterialRepositoryInterface {
	return &MaterialRepository{storage: storage}
}

func scanMaterial(row rowScanner) (entities.Material, error) {
	var m entities.Material
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Description, &m.Unit, &m.UnitCost, &m.Stock, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *MaterialRepository) GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	return fetchPage(ctx, r.storage, psql.Select().From(materialTable), materialFields, filter, materialListSpec, scanMaterial)
}

func (r *MaterialRepository) FindMaterial(ctx context.Context, id string) (*entities.Material, error) {
	query, args, err := psql.Select(materialFields...).From(materialTable).Where("id = ?", id).ToSql()
	if err != nil {
		return nil, err
	}
	m, err := scanMaterial(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, materialDuplicateMsg)
	}
	return &m, nil
}

func (r *MaterialRepository) CreateMaterial(ctx context.Context, m *entities.Material) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, code, name, description, unit, unit_cost, stock)
		VALUES (@id, @code, @name, @description, @unit, @unit_cost, @stock)
		RETURNING created_at, updated_at`, materialTable)

	err := r.storage.QueryRow(ctx, query, materialArgs(m)).Scan(&m.CreatedAt, &m.UpdatedAt)
	return mapPgError(err, materialDuplicateMsg)
}

func (r *MaterialRepository) UpdateMaterial(ctx context.Context, m *entities.Material) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			code = @code, name = @name, description = @description, unit = @unit,
			unit_cost = @unit_cost, stock = @stock, updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, materialTable)

	err := r.storage.QueryRow(ctx, query, materialArgs(m)).Scan(&m.UpdatedAt)
	return mapPgError(err, materialDuplicateMsg)
}

func materialArgs(m *entities.Material) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          m.ID,
		"code":        m.Code,
		"name":        m.Name,
		"description": m.Description,
		"unit":        m.Unit,
		"unit_cost":   m.UnitCost,
		"stock":       m.Stock,
	}
}

func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", materialTable)
	return execAffectingOne(ctx, r.storage, query, id)
}
