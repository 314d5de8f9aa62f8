package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// mockBookingRepo хранит бронирования в памяти
type mockBookingRepo struct {
	bookings map[int64]*domain.Booking

	updated bool
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
	copy := *b
	return &copy, nil
}

func (m *mockBookingRepo) GetActiveBySeatingAndDate(_ context.Context, seatingID int64, date time.Time, excludeBookingID *int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if b.SeatingID != nil && *b.SeatingID == seatingID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := m.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copy := *booking
	m.bookings[booking.ID] = &copy
	m.updated = true
	return nil
}

// mockSeatingRepo знает один столик
type mockSeatingRepo struct {
	seating *domain.Seating
}

func (m *mockSeatingRepo) GetByID(_ context.Context, id int64) (*domain.Seating, error) {
	if m.seating == nil || m.seating.ID != id {
		return nil, seatingRepo.ErrSeatingNotFound
	}
	return m.seating, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider всегда возвращает одно и то же время
type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

// noopLogger заглушка логгера для тестов
type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
)

func booking(id int64, start types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		ConfirmationCode: "A1B2C3D4",
		RestaurantID:     1,
		SeatingID:        ptr.Ptr(int64(7)),
		CustomerName:     "Иван Петров",
		CustomerEmail:    "ivan@example.com",
		PartySize:        2,
		BookingDate:      testDate,
		StartTime:        start,
		Status:           status,
	}
}

func testSeating() *domain.Seating {
	return &domain.Seating{
		ID:           7,
		RestaurantID: 1,
		Label:        "T1",
		Capacity:     4,
		Type:         domain.SeatingIndoor,
		IsActive:     true,
	}
}

func newTestUseCase(repo *mockBookingRepo, seating *domain.Seating) *UseCase {
	cfg := Config{DiningDurationMinutes: domain.DefaultDiningDurationMinutes}
	uc := NewUseCase(repo, &mockSeatingRepo{seating: seating}, fakeTxManager{}, cfg, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_MoveTime(t *testing.T) {
	repo := newMockBookingRepo(booking(42, "19:00", domain.StatusConfirmed))
	uc := newTestUseCase(repo, testSeating())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		StartTime: ptr.Ptr(types.TimeString("20:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("20:00"), resp.StartTime)
	assert.True(t, repo.updated)
}

func TestExecute_SelfOverlapExcluded(t *testing.T) {
	// Перенос на 19:30 пересекается со старым окном [19:00, 20:30),
	// но собственное бронирование из проверки исключено
	repo := newMockBookingRepo(booking(42, "19:00", domain.StatusConfirmed))
	uc := newTestUseCase(repo, testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		StartTime: ptr.Ptr(types.TimeString("19:30")),
	})
	assert.NoError(t, err)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	other := booking(1, "20:00", domain.StatusConfirmed)
	other.ConfirmationCode = "OTHER001"

	repo := newMockBookingRepo(booking(42, "12:00", domain.StatusConfirmed), other)
	uc := newTestUseCase(repo, testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		StartTime: ptr.Ptr(types.TimeString("20:30")),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.False(t, repo.updated)
}

func TestExecute_CapacityRechecked(t *testing.T) {
	repo := newMockBookingRepo(booking(42, "19:00", domain.StatusConfirmed))
	uc := newTestUseCase(repo, testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		PartySize: ptr.Ptr(6), // вместимость столика 4
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, repo.updated)
}

func TestExecute_SeatedNotUpdatable(t *testing.T) {
	repo := newMockBookingRepo(booking(42, "19:00", domain.StatusSeated))
	uc := newTestUseCase(repo, testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		PartySize: ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrNotUpdatable)
}

func TestExecute_CancelledNotUpdatable(t *testing.T) {
	repo := newMockBookingRepo(booking(42, "19:00", domain.StatusCancelled))
	uc := newTestUseCase(repo, testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		PartySize: ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrNotUpdatable)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(newMockBookingRepo(), testSeating())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		PartySize: ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptyRequest(t *testing.T) {
	uc := newTestUseCase(newMockBookingRepo(booking(42, "19:00", domain.StatusConfirmed)), testSeating())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MoveDateToPast(t *testing.T) {
	uc := newTestUseCase(newMockBookingRepo(booking(42, "19:00", domain.StatusConfirmed)), testSeating())

	past := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Date:      &past,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BookingWithoutSeating(t *testing.T) {
	b := booking(42, "19:00", domain.StatusConfirmed)
	b.SeatingID = nil

	repo := newMockBookingRepo(b)
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		PartySize: ptr.Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.PartySize)
}
