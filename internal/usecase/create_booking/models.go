package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID  int64            // ID ресторана
	SeatingID     *int64           // ID столика (опционально, nil - без назначения)
	CustomerName  string           // Имя гостя
	CustomerEmail string           // Email гостя
	CustomerPhone *string          // Телефон гостя (опционально)
	PartySize     int              // Количество гостей
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время прихода (например, "19:00")
	Notes         *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64            // ID созданного бронирования
	ConfirmationCode string           // Код подтверждения для гостя
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
