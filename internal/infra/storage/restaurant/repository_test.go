package restaurant

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)
	return db, mock, repo
}

func restaurantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "address", "phone", "created_at", "updated_at",
	})
}

func TestGetByID_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	// Выборка закреплена по именам колонок схемы restaurants
	mock.ExpectQuery(`SELECT id, name, description, address, phone, created_at, updated_at FROM restaurants WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(restaurantRows().AddRow(
			int64(1), "Гастробар N1", "Маленький зал и терраса", "Невский 1", "+7 900 000-00-00", now, now,
		))

	restaurant, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), restaurant.ID)
	assert.Equal(t, "Гастробар N1", restaurant.Name)
	require.NotNil(t, restaurant.Address)
	assert.Equal(t, "Невский 1", *restaurant.Address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NullableFields(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM restaurants`).
		WithArgs(int64(2)).
		WillReturnRows(restaurantRows().AddRow(
			int64(2), "Без деталей", nil, nil, nil, now, now,
		))

	restaurant, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, restaurant.Description)
	assert.Nil(t, restaurant.Address)
	assert.Nil(t, restaurant.Phone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM restaurants`).
		WithArgs(int64(99)).
		WillReturnRows(restaurantRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
