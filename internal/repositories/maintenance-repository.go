package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-guardian/internal/entities"
	db "asset-guardian/internal/infrastructure/bd"
	"asset-guardian/internal/reliability"
	"asset-guardian/pkg/types"
)

const maintenanceTable = "maintenance_records"

var maintenanceFields = []string{
	"m.id", "m.asset_id", "m.type", "m.description", "m.cost", "m.date", "m.deadline", "m.status",
	"m.responsible", "m.technician_id", "m.priority", "m.duration", "m.notes", "m.materials",
	"m.failure_details", "m.solution", "m.attachments", "m.created_at", "m.updated_at",
	"a.id", "a.code", "a.name", "a.location", "a.status",
}

var maintenanceListSpec = db.ListSpec{
	Filters: map[string]string{
		"assetId":      "m.asset_id",
		"type":         "m.type",
		"status":       "m.status",
		"technicianId": "m.technician_id",
		"priority":     "m.priority",
	},
	Lists: map[string]bool{"assetId": true, "type": true, "status": true, "technicianId": true, "priority": true},
	From:  map[string]string{"dateFrom": "m.date"},
	To:    map[string]string{"dateTo": "m.date"},
	Sorts: map[string]string{
		"date":      "m.date",
		"deadline":  "m.deadline",
		"cost":      "m.cost",
		"type":      "m.type",
		"status":    "m.status",
		"createdAt": "m.created_at",
	},
	SearchColumns: []string{"m.description", "m.responsible", "a.name"},
	DefaultSort:   "m.date DESC",
	TieBreaker:    "m.id",
}

type MaintenanceRepositoryInterface interface {
	GetMaintenanceRecords(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRecord, uint64, error)
	FindMaintenanceRecord(ctx context.Context, id string) (*entities.MaintenanceRecord, error)
	FindMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceRecord, error)
	// GetAssetHistory - все записи актива по дате, для встраивания в карточку актива.
	GetAssetHistory(ctx context.Context, assetID string) ([]entities.MaintenanceRecord, error)
	// GetAssetEventsInTx - история для расчета показателей, читается в той же транзакции.
	GetAssetEventsInTx(ctx context.Context, tx pgx.Tx, assetID string) ([]reliability.Event, error)
	CreateMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, record *entities.MaintenanceRecord) error
	UpdateMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, record *entities.MaintenanceRecord) error
	DeleteMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, id string) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func maintenanceSelect() sq.SelectBuilder {
	return psql.Select().From(maintenanceTable + " m").Join(assetTable + " a ON a.id = m.asset_id")
}

func scanMaintenance(row rowScanner) (entities.MaintenanceRecord, error) {
	var (
		m     entities.MaintenanceRecord
		asset entities.AssetSummary
	)
	err := row.Scan(
		&m.ID, &m.AssetID, &m.Type, &m.Description, &m.Cost, &m.Date, &m.Deadline, &m.Status,
		&m.Responsible, &m.TechnicianID, &m.Priority, &m.Duration, &m.Notes, &m.Materials,
		&m.FailureDetails, &m.Solution, &m.Attachments, &m.CreatedAt, &m.UpdatedAt,
		&asset.ID, &asset.Code, &asset.Name, &asset.Location, &asset.Status,
	)
	if err != nil {
		return m, err
	}
	m.Asset = &asset
	if m.Materials == nil {
		m.Materials = []entities.MaterialUsage{}
	}
	if m.Attachments == nil {
		m.Attachments = []string{}
	}
	return m, nil
}

func (r *MaintenanceRepository) GetMaintenanceRecords(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRecord, uint64, error) {
	return fetchPage(ctx, r.storage, maintenanceSelect(), maintenanceFields, filter, maintenanceListSpec, scanMaintenance)
}

func (r *MaintenanceRepository) FindMaintenanceRecord(ctx context.Context, id string) (*entities.MaintenanceRecord, error) {
	return r.find(ctx, r.storage, id, false)
}

// FindMaintenanceRecordInTx блокирует запись до конца транзакции.
func (r *MaintenanceRepository) FindMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceRecord, error) {
	return r.find(ctx, pick(r.storage, tx), id, true)
}

func (r *MaintenanceRepository) find(ctx context.Context, q querier, id string, forUpdate bool) (*entities.MaintenanceRecord, error) {
	builder := maintenanceSelect().Columns(maintenanceFields...).Where("m.id = ?", id)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE OF m")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	record, err := scanMaintenance(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "")
	}
	return &record, nil
}

func (r *MaintenanceRepository) GetAssetHistory(ctx context.Context, assetID string) ([]entities.MaintenanceRecord, error) {
	query, args, err := maintenanceSelect().Columns(maintenanceFields...).
		Where("m.asset_id = ?", assetID).
		OrderBy("m.date ASC", "m.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]entities.MaintenanceRecord, 0)
	for rows.Next() {
		record, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		// Актив и так известен вызывающему
		record.Asset = nil
		history = append(history, record)
	}
	return history, rows.Err()
}

func (r *MaintenanceRepository) GetAssetEventsInTx(ctx context.Context, tx pgx.Tx, assetID string) ([]reliability.Event, error) {
	query := fmt.Sprintf(`SELECT date, type FROM %s WHERE asset_id = $1 ORDER BY date ASC, created_at ASC`, maintenanceTable)
	rows, err := pick(r.storage, tx).Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения истории обслуживания: %w", err)
	}
	defer rows.Close()

	events := make([]reliability.Event, 0)
	for rows.Next() {
		var e reliability.Event
		if err := rows.Scan(&e.Date, &e.Type); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *MaintenanceRepository) CreateMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, m *entities.MaintenanceRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, asset_id, type, description, cost, date, deadline, status, responsible,
			technician_id, priority, duration, notes, materials, failure_details, solution, attachments)
		VALUES (@id, @asset_id, @type, @description, @cost, @date, @deadline, @status, @responsible,
			@technician_id, @priority, @duration, @notes, @materials, @failure_details, @solution, @attachments)
		RETURNING created_at, updated_at`, maintenanceTable)

	err := pick(r.storage, tx).QueryRow(ctx, query, maintenanceArgs(m)).Scan(&m.CreatedAt, &m.UpdatedAt)
	return mapPgError(err, "")
}

func (r *MaintenanceRepository) UpdateMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, m *entities.MaintenanceRecord) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			asset_id = @asset_id, type = @type, description = @description, cost = @cost, date = @date,
			deadline = @deadline, status = @status, responsible = @responsible, technician_id = @technician_id,
			priority = @priority, duration = @duration, notes = @notes, materials = @materials,
			failure_details = @failure_details, solution = @solution, attachments = @attachments,
			updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, maintenanceTable)

	err := pick(r.storage, tx).QueryRow(ctx, query, maintenanceArgs(m)).Scan(&m.UpdatedAt)
	return mapPgError(err, "")
}

func maintenanceArgs(m *entities.MaintenanceRecord) pgx.NamedArgs {
	materials := m.Materials
	if materials == nil {
		materials = []entities.MaterialUsage{}
	}
	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return pgx.NamedArgs{
		"id":              m.ID,
		"asset_id":        m.AssetID,
		"type":            m.Type,
		"description":     m.Description,
		"cost":            m.Cost,
		"date":            m.Date,
		"deadline":        m.Deadline,
		"status":          m.Status,
		"responsible":     m.Responsible,
		"technician_id":   m.TechnicianID,
		"priority":        m.Priority,
		"duration":        m.Duration,
		"notes":           m.Notes,
		"materials":       materials,
		"failure_details": m.FailureDetails,
		"solution":        m.Solution,
		"attachments":     attachments,
	}
}

func (r *MaintenanceRepository) DeleteMaintenanceRecordInTx(ctx context.Context, tx pgx.Tx, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", maintenanceTable)
	return execAffectingOne(ctx, pick(r.storage, tx), query, id)
}
