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

const technicianTable = "technicians"

var technicianFields = []string{
	"id", "name", "email", "phone", "specialization", "status", "created_at", "updated_at",
}

const technicianDuplicateMsg = "Technician with this email already exists"

var technicianListSpec = db.ListSpec{
	Filters: map[string]string{
		"status":         "status",
		"specialization": "specialization",
	},
	Lists: map[string]bool{"status": true},
	Sorts: map[string]string{
		"name":      "name",
		"email":     "email",
		"status":    "status",
		"createdAt": "created_at",
	},
	SearchColumns: []string{"name", "email", "specialization"},
	DefaultSort:   "name ASC",
	TieBreaker:    "id",
}

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error)
	FindTechnician(ctx context.Context, id string) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, technician *entities.Technician) error
	UpdateTechnician(ctx context.Context, technician *entities.Technician) error
	DeleteTechnician(ctx context.Context, id string) error
}

type TechnicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &TechnicianRepository{storage: storage}
}

func scanTechnician(row rowScanner) (entities.Technician, error) {
	var t entities.Technician
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialization, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error) {
	return fetchPage(ctx, r.storage, psql.Select().From(technicianTable), technicianFields, filter, technicianListSpec, scanTechnician)
}

func (r *TechnicianRepository) FindTechnician(ctx context.Context, id string) (*entities.Technician, error) {
	query, args, err := psql.Select(technicianFields...).From(technicianTable).Where("id = ?", id).ToSql()
	if err != nil {
		return nil, err
	}
	t, err := scanTechnician(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, technicianDuplicateMsg)
	}
	return &t, nil
}

func (r *TechnicianRepository) CreateTechnician(ctx context.Context, t *entities.Technician) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, email, phone, specialization, status)
		VALUES (@id, @name, @email, @phone, @specialization, @status)
		RETURNING created_at, updated_at`, technicianTable)

	err := r.storage.QueryRow(ctx, query, technicianArgs(t)).Scan(&t.CreatedAt, &t.UpdatedAt)
	return mapPgError(err, technicianDuplicateMsg)
}

func (r *TechnicianRepository) UpdateTechnician(ctx context.Context, t *entities.Technician) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			name = @name, email = @email, phone = @phone, specialization = @specialization,
			status = @status, updated_at = NOW()
		WHERE id = @id
		RETURNING updated_at`, technicianTable)

	err := r.storage.QueryRow(ctx, query, technicianArgs(t)).Scan(&t.UpdatedAt)
	return mapPgError(err, technicianDuplicateMsg)
}

func technicianArgs(t *entities.Technician) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":             t.ID,
		"name":           t.Name,
		"email":          t.Email,
		"phone":          t.Phone,
		"specialization": t.Specialization,
		"status":         t.Status,
	}
}

func (r *TechnicianRepository) DeleteTechnician(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", technicianTable)
	return execAffectingOne(ctx, r.storage, query, id)
}
