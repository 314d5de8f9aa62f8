package seating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// pgForeignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
const pgForeignKeyViolation = "23503"

// Repository репозиторий для работы со столиками ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый столик
func (r *Repository) Create(ctx context.Context, seating *domain.Seating) (*domain.Seating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("seatings").
		Columns(
			"restaurant_id",
			"label",
			"capacity",
			"seating_type",
			"is_active",
		).
		Values(
			seating.RestaurantID,
			seating.Label,
			seating.Capacity,
			seating.Type,
			seating.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&seating.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	seating.CreatedAt = createdAt.Time
	seating.UpdatedAt = updatedAt.Time

	return seating, nil
}

// GetByID получает столик по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Seating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := seatingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var seating domain.Seating
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&seating.ID,
		&seating.RestaurantID,
		&seating.Label,
		&seating.Capacity,
		&seating.Type,
		&seating.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan seating: %v", ErrScanRow, err)
	}

	seating.CreatedAt = createdAt.Time
	seating.UpdatedAt = updatedAt.Time

	return &seating, nil
}

// GetByRestaurant получает все столики ресторана
// activeOnly - вернуть только включённые столики
func (r *Repository) GetByRestaurant(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Seating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := seatingColumns().
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("label ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seatings := make([]*domain.Seating, 0)
	for rows.Next() {
		var seating domain.Seating
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&seating.ID,
			&seating.RestaurantID,
			&seating.Label,
			&seating.Capacity,
			&seating.Type,
			&seating.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRestaurant - scan row: %v", ErrScanRow, err)
		}

		seating.CreatedAt = createdAt.Time
		seating.UpdatedAt = updatedAt.Time

		seatings = append(seatings, &seating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurant - rows error: %v", ErrScanRow, err)
	}

	return seatings, nil
}

// Update обновляет параметры столика (label, capacity, type, is_active)
func (r *Repository) Update(ctx context.Context, seating *domain.Seating) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("seatings").
		Set("label", seating.Label).
		Set("capacity", seating.Capacity).
		Set("seating_type", seating.Type).
		Set("is_active", seating.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": seating.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSeatingNotFound
	}

	return nil
}

// Delete удаляет столик
// Если на столик ссылаются бронирования, БД отклонит удаление (FK RESTRICT)
// и вернётся ErrSeatingReferenced - сервисный слой обязан проверить живые
// бронирования заранее, ограничение в схеме служит последним рубежом
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("seatings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return ErrSeatingReferenced
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSeatingNotFound
	}

	return nil
}

// seatingColumns возвращает select builder со стандартным набором колонок столика
func seatingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"restaurant_id",
		"label",
		"capacity",
		"seating_type",
		"is_active",
		"created_at",
		"updated_at",
	).From("seatings")
}
