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

const reportTable = "reports"

var reportFields = []string{
	"r.id", "r.asset_id", "r.type", "r.title", "r.content", "r.author", "r.date", "r.attachments",
	"r.status", "r.version", "r.created_at", "r.updated_at",
	"a.id", "a.code", "a.name", "a.location", "a.status",
}

var reportListSpec = db.ListSpec{
	Filters: map[string]string{
		"assetId": "r.asset_id",
		"type":    "r.type",
		"status":  "r.status",
		"author":  "r.author",
	},
	Lists: map[string]bool{"assetId": true, "type": true, "status": true},
	From:  map[string]string{"dateFrom": "r.date"},
	To:    map[string]string{"dateTo": "r.date"},
	Sorts: map[string]string{
		"date":      "r.date",
		"title":     "r.title",
		"type":      "r.type",
		"status":    "r.status",
		"createdAt": "r.created_at",
	},
	SearchColumns: []string{"r.title", "r.content", "r.author"},
	DefaultSort:   "r.date DESC",
	TieBreaker:    "r.id",
}

type ReportRepositoryInterface interface {
	GetReports(ctx context.Context, filter types.Filter) ([]entities.Report, uint64, error)
	FindReport(ctx context.Context, id string) (*entities.Report, error)
	CreateReport(ctx context.Context, report *entities.Report) error
	UpdateReport(ctx context.Context, report *entities.Report) error
	DeleteReport(ctx context.Context, id string) error
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func reportSelect() sq.SelectBuilder {
	return psql.Select().From(reportTable + " r").Join(assetTable + " a ON a.id = r.asset_id")
}

func scanReport(row rowScanner) (entities.Report, error) {
	var (
		rep   entities.Report
		asset entities.AssetSummary
	)
	err := row.Scan(
		&rep.ID, &rep.AssetID, &rep.Type, &rep.Title, &rep.Content, &rep.Author, &rep.Date, &rep.Attachments,
		&rep.Status, &rep.Version, &rep.CreatedAt, &rep.UpdatedAt,
		&asset.ID, &asset.Code, &asset.Name, &asset.Location, &asset.Status,
	)
	if err != nil {
		return rep, err
	}
	rep.Asset = &asset
	if rep.Attachments == nil {
		rep.Attachments = []string{}
	}
	return rep, nil
}

func (r *ReportRepository) GetReports(ctx context.Context, filter types.Filter) ([]entities.Report, uint64, error) {
	return fetchPage(ctx, r.storage, reportSelect(), reportFields, filter, reportListSpec, scanReport)
}

func (r *ReportRepository) FindReport(ctx context.Context, id string) (*entities.Report, error) {
	query, args, err := reportSelect().Columns(reportFields...).Where("r.id = ?", id).ToSql()
	if err != nil {
		return nil, err
	}
	report, err := scanReport(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "")
	}
	return &report, nil
}

func (r *ReportRepository) CreateReport(ctx context.Context, rep *entities.Report) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, asset_id, type, title, content, author, date, attachments, status, version)
		VALUES (@id, @asset_id, @type, @title, @content, @author, @date, @attachments, @status, @version)
		RETURNING created_at, updated_at`, reportTable)

	err := r.storage.QueryRow(ctx, query, reportArgs(rep)).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	return mapPgError(err, "")
}

// UpdateReport не трогает version: версия назначается только при создании.
func (r *ReportRepository) UpdateReport(ctx context.Context, rep *entities.Report) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			type = @type, title = @title, content = @content, author = @author, date = @date,
			attachments = @attachments, status = @status, updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, reportTable)

	err := r.storage.QueryRow(ctx, query, reportArgs(rep)).Scan(&rep.UpdatedAt)
	return mapPgError(err, "")
}

func reportArgs(rep *entities.Report) pgx.NamedArgs {
	attachments := rep.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return pgx.NamedArgs{
		"id":          rep.ID,
		"asset_id":    rep.AssetID,
		"type":        rep.Type,
		"title":       rep.Title,
		"content":     rep.Content,
		"author":      rep.Author,
		"date":        rep.Date,
		"attachments": attachments,
		"status":      rep.Status,
		"version":     rep.Version,
	}
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", reportTable)
	return execAffectingOne(ctx, r.storage, query, id)
}
