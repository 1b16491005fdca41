package repositories

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-guardian/internal/entities"
	db "asset-guardian/internal/infrastructure/bd"
	"asset-guardian/internal/reliability"
	"asset-guardian/pkg/types"
)

const assetTable = "assets"

var assetFields = []string{
	"id", "code", "name", "manufacturer", "model", "type", "location", "acquisition_date",
	"estimated_life", "cost", "serial_number", "status", "last_maintenance", "next_maintenance",
	"mtbf", "mttr", "oee", "availability", "performance", "quality", "created_at", "updated_at",
}

const assetDuplicateMsg = "Asset with this code or serial number already exists"

var assetListSpec = db.ListSpec{
	Filters: map[string]string{
		"status":   "status",
		"type":     "type",
		"location": "location",
	},
	Lists: map[string]bool{"status": true, "type": true},
	Sorts: map[string]string{
		"code":            "code",
		"name":            "name",
		"type":            "type",
		"location":        "location",
		"status":          "status",
		"cost":            "cost",
		"acquisitionDate": "acquisition_date",
		"lastMaintenance": "last_maintenance",
		"nextMaintenance": "next_maintenance",
		"oee":             "oee",
		"mtbf":            "mtbf",
		"mttr":            "mttr",
		"createdAt":       "created_at",
		"updatedAt":       "updated_at",
	},
	SearchColumns: []string{"name", "code", "location"},
	DefaultSort:   "created_at DESC",
	TieBreaker:    "id",
}

type AssetRepositoryInterface interface {
	GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	FindAsset(ctx context.Context, id string) (*entities.Asset, error)
	// FindAssetForUpdateInTx блокирует строку актива до конца транзакции.
	FindAssetForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Asset, error)
	ExistsByCodeOrSerial(ctx context.Context, code, serialNumber, excludeID string) (bool, error)
	CreateAsset(ctx context.Context, asset *entities.Asset) error
	UpdateAsset(ctx context.Context, asset *entities.Asset) error
	DeleteAsset(ctx context.Context, id string) error
	UpdateMetricsInTx(ctx context.Context, tx pgx.Tx, id string, metrics reliability.Metrics, lastMaintenance null.Time) error
}

type AssetRepository struct {
	storage *pgxpool.Pool
}

func NewAssetRepository(storage *pgxpool.Pool) AssetRepositoryInterface {
	return &AssetRepository{storage: storage}
}

func scanAsset(row rowScanner) (entities.Asset, error) {
	var a entities.Asset
	err := row.Scan(
		&a.ID, &a.Code, &a.Name, &a.Manufacturer, &a.Model, &a.Type, &a.Location, &a.AcquisitionDate,
		&a.EstimatedLife, &a.Cost, &a.SerialNumber, &a.Status, &a.LastMaintenance, &a.NextMaintenance,
		&a.MTBF, &a.MTTR, &a.OEE, &a.Availability, &a.Performance, &a.Quality, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *AssetRepository) GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return fetchPage(ctx, r.storage, psql.Select().From(assetTable), assetFields, filter, assetListSpec, scanAsset)
}

func (r *AssetRepository) FindAsset(ctx context.Context, id string) (*entities.Asset, error) {
	return r.findAsset(ctx, r.storage, id, false)
}

func (r *AssetRepository) FindAssetForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Asset, error) {
	return r.findAsset(ctx, pick(r.storage, tx), id, true)
}

func (r *AssetRepository) findAsset(ctx context.Context, q querier, id string, forUpdate bool) (*entities.Asset, error) {
	builder := psql.Select(assetFields...).From(assetTable).Where("id = ?", id)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	asset, err := scanAsset(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, assetDuplicateMsg)
	}
	return &asset, nil
}

func (r *AssetRepository) ExistsByCodeOrSerial(ctx context.Context, code, serialNumber, excludeID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE (code = $1 OR serial_number = $2) AND id <> $3)`, assetTable)
	var exists bool
	if err := r.storage.QueryRow(ctx, query, code, serialNumber, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AssetRepository) CreateAsset(ctx context.Context, a *entities.Asset) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, code, name, manufacturer, model, type, location, acquisition_date,
			estimated_life, cost, serial_number, status, last_maintenance, next_maintenance)
		VALUES (@id, @code, @name, @manufacturer, @model, @type, @location, @acquisition_date,
			@estimated_life, @cost, @serial_number, @status, @last_maintenance, @next_maintenance)
		RETURNING created_at, updated_at`, assetTable)

	err := r.storage.QueryRow(ctx, query, assetArgs(a)).Scan(&a.CreatedAt, &a.UpdatedAt)
	return mapPgError(err, assetDuplicateMsg)
}

func (r *AssetRepository) UpdateAsset(ctx context.Context, a *entities.Asset) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			code = @code, name = @name, manufacturer = @manufacturer, model = @model, type = @type,
			location = @location, acquisition_date = @acquisition_date, estimated_life = @estimated_life,
			cost = @cost, serial_number = @serial_number, status = @status,
			next_maintenance = @next_maintenance, updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, assetTable)

	err := r.storage.QueryRow(ctx, query, assetArgs(a)).Scan(&a.UpdatedAt)
	return mapPgError(err, assetDuplicateMsg)
}

func assetArgs(a *entities.Asset) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":               a.ID,
		"code":             a.Code,
		"name":             a.Name,
		"manufacturer":     a.Manufacturer,
		"model":            a.Model,
		"type":             a.Type,
		"location":         a.Location,
		"acquisition_date": a.AcquisitionDate,
		"estimated_life":   a.EstimatedLife,
		"cost":             a.Cost,
		"serial_number":    a.SerialNumber,
		"status":           a.Status,
		"last_maintenance": a.LastMaintenance,
		"next_maintenance": a.NextMaintenance,
	}
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", assetTable)
	return execAffectingOne(ctx, r.storage, query, id)
}

// UpdateMetricsInTx перезаписывает все шесть показателей и дату последнего обслуживания одним UPDATE.
// Пустой lastMaintenance (история пуста) записывается как NULL.
func (r *AssetRepository) UpdateMetricsInTx(ctx context.Context, tx pgx.Tx, id string, m reliability.Metrics, lastMaintenance null.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			mtbf = @mtbf, mttr = @mttr, oee = @oee, availability = @availability,
			performance = @performance, quality = @quality,
			last_maintenance = @last_maintenance,
			updated_at = NOW()
		WHERE id = @id`, assetTable)

	return execAffectingOne(ctx, pick(r.storage, tx), query, pgx.NamedArgs{
		"id":               id,
		"mtbf":             m.MTBF,
		"mttr":             m.MTTR,
		"oee":              m.OEE,
		"availability":     m.Availability,
		"performance":      m.Performance,
		"quality":          m.Quality,
		"last_maintenance": lastMaintenance,
	})
}
