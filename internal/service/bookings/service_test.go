package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// mockBookingRepo хранит бронирования в памяти для тестов сервиса
type mockBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedStatus *domain.BookingStatus
	cancelled     bool
	deleted       bool
}

func newMockBookingRepo(bookings ...*domain.Booking) *mockBookingRepo {
	m := &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByConfirmationCode(_ context.Context, code string) (*domain.Booking, error) {
	for _, b := range m.bookings {
		if b.ConfirmationCode == code {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.RestaurantID != filter.RestaurantID {
			continue
		}
		if !filter.IncludeTerminal && b.IsTerminal() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	m.updatedStatus = &status
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	m.cancelled = true
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(m.bookings, id)
	m.deleted = true
	return nil
}

// noopLogger заглушка логгера для тестов
type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		ConfirmationCode: "A1B2C3D4",
		RestaurantID:     1,
		SeatingID:        ptr.Ptr(int64(7)),
		CustomerName:     "Иван Петров",
		CustomerEmail:    "ivan@example.com",
		PartySize:        4,
		BookingDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "19:00",
		Status:           status,
	}
}

func TestGetByID(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "A1B2C3D4", resp.ConfirmationCode)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "19:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByConfirmationCode_NormalizesInput(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	// Код в нижнем регистре и с пробелами находит то же бронирование
	resp, err := svc.GetByConfirmationCode(context.Background(), " a1b2c3d4 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetByConfirmationCode_MalformedCode(t *testing.T) {
	svc := NewService(newMockBookingRepo(), noopLogger{})

	_, err := svc.GetByConfirmationCode(context.Background(), "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByConfirmationCode(context.Background(), "ABCD-234")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "seated"})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusSeated, *repo.updatedStatus)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusCompleted))
	svc := NewService(repo, noopLogger{})

	// Завершённое бронирование нельзя вернуть в confirmed
	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// Статус не изменился
	assert.Nil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[42].Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "eaten"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updatedStatus)
}

func TestCancel(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{CancellationReason: "планы поменялись"})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[42].Status)
}

func TestCancel_TerminalBooking(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusNoShow))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{CancellationReason: "поздно"})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestDelete(t *testing.T) {
	repo := newMockBookingRepo(testBooking(42, domain.StatusCancelled))
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.True(t, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrBookingNotFound)
}
