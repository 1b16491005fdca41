package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	db "asset-guardian/internal/infrastructure/bd"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// rowScanner - общий знаменатель pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// fetchPage считает total по отфильтрованной выборке и читает одну страницу.
func fetchPage[T any](
	ctx context.Context,
	q querier,
	base sq.SelectBuilder,
	columns []string,
	filter types.Filter,
	spec db.ListSpec,
	scan func(rowScanner) (T, error),
) ([]T, uint64, error) {
	filtered := db.ApplyFilters(base, filter, spec)

	countSQL, countArgs, err := filtered.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчета: %w", err)
	}
	var total uint64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета записей: %w", err)
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	pageSQL, pageArgs, err := db.ApplySortAndPage(filtered.Columns(columns...), filter, spec).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка: %w", err)
	}
	rows, err := q.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка: %w", err)
	}
	defer rows.Close()

	capacity := filter.Limit
	if uint64(capacity) > total {
		capacity = int(total)
	}
	items := make([]T, 0, capacity)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка чтения строки: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// mapPgError переводит ошибки драйвера в доменные: нет строки -> ErrNotFound,
// нарушение уникальности -> AlreadyExistsError, битая ссылка -> InvalidInputError.
func mapPgError(err error, uniqueMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewAlreadyExistsError("%s", uniqueMsg)
		case pgForeignKeyViolation:
			return apperrors.NewInvalidInputError("Referenced record does not exist (%s)", pgErr.ConstraintName)
		case pgCheckViolation:
			return apperrors.NewInvalidInputError("Value violates constraint %s", pgErr.ConstraintName)
		}
	}
	return err
}

// execAffectingOne выполняет UPDATE/DELETE и возвращает ErrNotFound, если строка не найдена.
func execAffectingOne(ctx context.Context, q querier, sql string, args ...any) error {
	result, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
