package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)
	return db, mock, repo
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "confirmation_code", "restaurant_id", "seating_id",
		"customer_name", "customer_email", "customer_phone", "party_size",
		"booking_date", "start_time", "status", "notes",
		"cancellation_reason", "cancelled_at", "created_at", "updated_at",
	})
}

func TestCreate_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	booking := &domain.Booking{
		ConfirmationCode: "A1B2C3D4",
		RestaurantID:     1,
		SeatingID:        ptr.Ptr(int64(7)),
		CustomerName:     "Иван Петров",
		CustomerEmail:    "ivan@example.com",
		PartySize:        4,
		BookingDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "19:00",
		Status:           domain.StatusConfirmed,
	}

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateCode(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	// Коллизия уникального индекса на confirmation_code
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_confirmation_code_key"})

	booking := &domain.Booking{
		ConfirmationCode: "A1B2C3D4",
		RestaurantID:     1,
		CustomerName:     "Иван Петров",
		CustomerEmail:    "ivan@example.com",
		PartySize:        2,
		BookingDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "19:00",
		Status:           domain.StatusConfirmed,
	}

	_, err := repo.Create(context.Background(), booking)
	assert.ErrorIs(t, err, ErrDuplicateCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WithArgs(int64(99)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByConfirmationCode_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE confirmation_code`).
		WithArgs("A1B2C3D4").
		WillReturnRows(bookingRows().AddRow(
			int64(42), "A1B2C3D4", int64(1), int64(7),
			"Иван Петров", "ivan@example.com", nil, 4,
			date, "19:00", "confirmed", nil,
			nil, nil, now, now,
		))

	booking, err := repo.GetByConfirmationCode(context.Background(), "A1B2C3D4")
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, "A1B2C3D4", booking.ConfirmationCode)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	require.NotNil(t, booking.SeatingID)
	assert.Equal(t, int64(7), *booking.SeatingID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveBySeatingAndDate_NoTransaction(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	// Вне транзакции запрос не содержит FOR UPDATE
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE seating_id = \$1 AND booking_date = \$2 AND status IN \(\$3,\$4\) ORDER BY start_time ASC$`).
		WillReturnRows(bookingRows().AddRow(
			int64(1), "CODE0001", int64(1), int64(7),
			"Клиент", "c@example.com", nil, 2,
			date, "19:00", "confirmed", nil,
			nil, nil, now, now,
		))

	bookings, err := repo.GetActiveBySeatingAndDate(context.Background(), 7, date, nil)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveBySeatingAndDate_InTransactionLocksRows(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	// Внутри транзакции выборка блокирует строки FOR UPDATE
	mock.ExpectQuery(`SELECT .+ FROM bookings .+ FOR UPDATE$`).
		WillReturnRows(bookingRows())
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	txCtx := dbmetrics.WithTx(context.Background(), tx)
	bookings, err := repo.GetActiveBySeatingAndDate(txCtx, 7, date, ptr.Ptr(int64(5)))
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountNonTerminalBySeating(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountNonTerminalBySeating(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancellation_reason = \$2, cancelled_at = NOW\(\), updated_at = NOW\(\)`).
		WithArgs("cancelled", "планы поменялись", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 42, "планы поменялись")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM bookings`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 42)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
