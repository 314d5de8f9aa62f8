package update_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования
// Указываются только изменяемые поля
type Request struct {
	BookingID int64             // ID бронирования
	Date      *time.Time        // Новая дата (опционально)
	StartTime *types.TimeString // Новое время прихода (опционально)
	PartySize *int              // Новый размер группы (опционально)
	Notes     *string           // Новые пожелания (опционально)
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID               int64            // ID бронирования
	ConfirmationCode string           // Код подтверждения
	RestaurantID     int64            // ID ресторана
	SeatingID        *int64           // ID назначенного столика
	CustomerName     string           // Имя гостя
	CustomerEmail    string           // Email гостя
	CustomerPhone    *string          // Телефон гостя
	PartySize        int              // Количество гостей
	BookingDate      time.Time        // Дата бронирования
	StartTime        types.TimeString // Время прихода
	Status           string           // Статус бронирования
	Notes            *string          // Пожелания гостя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
