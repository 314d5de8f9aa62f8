package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// mockBookingRepo отдаёт заранее заданные бронирования и запоминает созданное
type mockBookingRepo struct {
	existing []*domain.Booking

	created        *domain.Booking
	duplicateCodes map[string]bool // коды, на которые Create ответит коллизией
	nextID         int64
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.duplicateCodes[booking.ConfirmationCode] {
		return nil, bookingRepo.ErrDuplicateCode
	}
	m.nextID++
	b := *booking
	b.ID = m.nextID
	m.created = &b
	return &b, nil
}

func (m *mockBookingRepo) GetActiveBySeatingAndDate(_ context.Context, seatingID int64, date time.Time, _ *int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.existing {
		if b.SeatingID != nil && *b.SeatingID == seatingID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
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

// mockRestaurantRepo знает единственный ресторан id=1
type mockRestaurantRepo struct{}

func (mockRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if id != 1 {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return &domain.Restaurant{ID: 1, Name: "Тестовый ресторан"}, nil
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

func defaultConfig() Config {
	return Config{
		DiningDurationMinutes:  domain.DefaultDiningDurationMinutes,
		AutoConfirmOnCreate:    true,
		CodeGenerationAttempts: domain.DefaultCodeGenerationAttempts,
	}
}

func existingBooking(seatingID int64, startTime types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               1,
		ConfirmationCode: "EXIST001",
		RestaurantID:     1,
		SeatingID:        ptr.Ptr(seatingID),
		CustomerName:     "Существующий гость",
		CustomerEmail:    "guest@example.com",
		PartySize:        2,
		BookingDate:      testDate,
		StartTime:        startTime,
		Status:           status,
	}
}

func newTestUseCase(repo *mockBookingRepo, seating *domain.Seating, cfg Config) *UseCase {
	uc := NewUseCase(repo, &mockSeatingRepo{seating: seating}, mockRestaurantRepo{}, fakeTxManager{}, cfg, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		RestaurantID:  1,
		SeatingID:     ptr.Ptr(int64(7)),
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
		PartySize:     2,
		Date:          testDate,
		StartTime:     "19:30",
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

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Len(t, resp.ConfirmationCode, 8)
	require.NotNil(t, resp.SeatingID)
	assert.Equal(t, int64(7), *resp.SeatingID)
}

func TestExecute_OverlapConflict(t *testing.T) {
	// Столик занят с 19:00, окно 90 минут заканчивается в 20:30
	repo := &mockBookingRepo{existing: []*domain.Booking{
		existingBooking(7, "19:00", domain.StatusConfirmed),
	}}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	req := validRequest()
	req.StartTime = "19:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Nil(t, repo.created, "бронирование не должно быть создано")
}

func TestExecute_BoundaryTimeAccepted(t *testing.T) {
	// Окно [19:00, 20:30) полуоткрытое: приход ровно в 20:30 не конфликтует
	repo := &mockBookingRepo{existing: []*domain.Booking{
		existingBooking(7, "19:00", domain.StatusConfirmed),
	}}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	req := validRequest()
	req.StartTime = "20:30"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecute_PendingDoesNotBlock(t *testing.T) {
	// Неподтверждённая заявка не запирает столик
	repo := &mockBookingRepo{existing: []*domain.Booking{
		existingBooking(7, "19:00", domain.StatusPending),
	}}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	req := validRequest()
	req.StartTime = "19:30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	req := validRequest()
	req.PartySize = 6 // вместимость столика 4

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, repo.created, "проверка вместимости идёт до записи")
}

func TestExecute_SeatingInactive(t *testing.T) {
	seating := testSeating()
	seating.IsActive = false

	uc := newTestUseCase(&mockBookingRepo{}, seating, defaultConfig())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSeatingInactive)
}

func TestExecute_SeatingFromAnotherRestaurant(t *testing.T) {
	seating := testSeating()
	seating.RestaurantID = 2

	uc := newTestUseCase(&mockBookingRepo{}, seating, defaultConfig())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSeatingNotInRestaurant)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, testSeating(), defaultConfig())

	req := validRequest()
	req.RestaurantID = 99
	req.SeatingID = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_WithoutSeating(t *testing.T) {
	// Бронирование без назначенного столика не проверяет занятость
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, nil, defaultConfig())

	req := validRequest()
	req.SeatingID = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.SeatingID)
}

func TestExecute_PendingWhenAutoConfirmDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.AutoConfirmOnCreate = false

	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testSeating(), cfg)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_CodeCollisionRetried(t *testing.T) {
	repo := &mockBookingRepo{duplicateCodes: map[string]bool{"DUPLICAT": true}}
	uc := newTestUseCase(repo, testSeating(), defaultConfig())

	// Первая генерация попадает в коллизию, вторая проходит
	codes := []string{"DUPLICAT", "FRESH123"}
	uc.generateCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "FRESH123", resp.ConfirmationCode)
}

func TestExecute_CodeCollisionExhausted(t *testing.T) {
	repo := &mockBookingRepo{duplicateCodes: map[string]bool{"DUPLICAT": true}}

	cfg := defaultConfig()
	cfg.CodeGenerationAttempts = 3

	uc := newTestUseCase(repo, testSeating(), cfg)
	uc.generateCode = func() (string, error) { return "DUPLICAT", nil }

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, testSeating(), defaultConfig())

	req := validRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC) // раньше testNow

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
