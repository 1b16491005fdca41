package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-guardian/internal/entities"
	db "asset-guardian/internal/infrastructure/bd"
	"asset-guardian/pkg/types"
)

const fmeaTable = "fmea_records"

var fmeaFields = []string{
	"f.id", "f.asset_id", "f.failure_mode", "f.effect", "f.cause", "f.severity", "f.occurrence",
	"f.detection", "f.rpn", "f.recommended_action", "f.responsible", "f.status",
	"f.implementation_date", "f.effectiveness", "f.created_at", "f.updated_at",
	"a.id", "a.code", "a.name", "a.location", "a.status",
}

var fmeaListSpec = db.ListSpec{
	Filters: map[string]string{
		"assetId":     "f.asset_id",
		"status":      "f.status",
		"severity":    "f.severity",
		"responsible": "f.responsible",
	},
	Lists: map[string]bool{"assetId": true, "status": true, "severity": true},
	Sorts: map[string]string{
		"rpn":         "f.rpn",
		"severity":    "f.severity",
		"occurrence":  "f.occurrence",
		"detection":   "f.detection",
		"failureMode": "f.failure_mode",
		"status":      "f.status",
		"createdAt":   "f.created_at",
	},
	SearchColumns: []string{"f.failure_mode", "f.effect", "f.cause"},
	DefaultSort:   "f.rpn DESC",
	TieBreaker:    "f.id",
}

type FMEARepositoryInterface interface {
	GetFMEARecords(ctx context.Context, filter types.Filter) ([]entities.FMEARecord, uint64, error)
	FindFMEARecord(ctx context.Context, id string) (*entities.FMEARecord, error)
	// FindFMEARecordForUpdateInTx блокирует запись до конца транзакции.
	FindFMEARecordForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.FMEARecord, error)
	CreateFMEARecord(ctx context.Context, record *entities.FMEARecord) error
	UpdateFMEARecordInTx(ctx context.Context, tx pgx.Tx, record *entities.FMEARecord) error
	DeleteFMEARecord(ctx context.Context, id string) error
}

type FMEARepository struct {
	storage *pgxpool.Pool
}

func NewFMEARepository(storage *pgxpool.Pool) FMEARepositoryInterface {
	return &FMEARepository{storage: storage}
}

func fmeaSelect() sq.SelectBuilder {
	return psql.Select().From(fmeaTable + " f").Join(assetTable + " a ON a.id = f.asset_id")
}

func scanFMEA(row rowScanner) (entities.FMEARecord, error) {
	var (
		f     entities.FMEARecord
		asset entities.AssetSummary
	)
	err := row.Scan(
		&f.ID, &f.AssetID, &f.FailureMode, &f.Effect, &f.Cause, &f.Severity, &f.Occurrence,
		&f.Detection, &f.RPN, &f.RecommendedAction, &f.Responsible, &f.Status,
		&f.ImplementationDate, &f.Effectiveness, &f.CreatedAt, &f.UpdatedAt,
		&asset.ID, &asset.Code, &asset.Name, &asset.Location, &asset.Status,
	)
	if err != nil {
		return f, err
	}
	f.Asset = &asset
	return f, nil
}

func (r *FMEARepository) GetFMEARecords(ctx context.Context, filter types.Filter) ([]entities.FMEARecord, uint64, error) {
	return fetchPage(ctx, r.storage, fmeaSelect(), fmeaFields, filter, fmeaListSpec, scanFMEA)
}

func (r *FMEARepository) FindFMEARecord(ctx context.Context, id string) (*entities.FMEARecord, error) {
	return r.find(ctx, r.storage, id, false)
}

func (r *FMEARepository) FindFMEARecordForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.FMEARecord, error) {
	return r.find(ctx, pick(r.storage, tx), id, true)
}

func (r *FMEARepository) find(ctx context.Context, q querier, id string, forUpdate bool) (*entities.FMEARecord, error) {
	builder := fmeaSelect().Columns(fmeaFields...).Where("f.id = ?", id)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE OF f")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	record, err := scanFMEA(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "")
	}
	return &record, nil
}

func (r *FMEARepository) CreateFMEARecord(ctx context.Context, f *entities.FMEARecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, asset_id, failure_mode, effect, cause, severity, occurrence, detection, rpn,
			recommended_action, responsible, status, implementation_date, effectiveness)
		VALUES (@id, @asset_id, @failure_mode, @effect, @cause, @severity, @occurrence, @detection, @rpn,
			@recommended_action, @responsible, @status, @implementation_date, @effectiveness)
		RETURNING created_at, updated_at`, fmeaTable)

	err := r.storage.QueryRow(ctx, query, fmeaArgs(f)).Scan(&f.CreatedAt, &f.UpdatedAt)
	return mapPgError(err, "")
}

func (r *FMEARepository) UpdateFMEARecordInTx(ctx context.Context, tx pgx.Tx, f *entities.FMEARecord) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			failure_mode = @failure_mode, effect = @effect, cause = @cause, severity = @severity,
			occurrence = @occurrence, detection = @detection, rpn = @rpn,
			recommended_action = @recommended_action, responsible = @responsible, status = @status,
			implementation_date = @implementation_date, effectiveness = @effectiveness, updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, fmeaTable)

	err := pick(r.storage, tx).QueryRow(ctx, query, fmeaArgs(f)).Scan(&f.UpdatedAt)
	return mapPgError(err, "")
}

func fmeaArgs(f *entities.FMEARecord) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                  f.ID,
		"asset_id":            f.AssetID,
		"failure_mode":        f.FailureMode,
		"effect":              f.Effect,
		"cause":               f.Cause,
		"severity":            f.Severity,
		"occurrence":          f.Occurrence,
		"detection":           f.Detection,
		"rpn":                 f.RPN,
		"recommended_action":  f.RecommendedAction,
		"responsible":         f.Responsible,
		"status":              f.Status,
		"implementation_date": f.ImplementationDate,
		"effectiveness":       f.Effectiveness,
	}
}

func (r *FMEARepository) DeleteFMEARecord(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", fmeaTable)
	return execAffectingOne(ctx, r.storage, query, id)
}
