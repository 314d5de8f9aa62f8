package confirmcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Length длина кода подтверждения
const Length = 8

// alphabet допустимые символы кода: заглавные латинские буквы и цифры
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// rejectionLimit граница отбрасывания случайных байтов: 252 = 7 * 36.
// Байты выше границы не кратны размеру алфавита и дали бы перекос
// в сторону его первых символов
const rejectionLimit = 252

// Generate генерирует код подтверждения бронирования
// Код состоит из 8 заглавных букв и цифр, источник случайности - crypto/rand
// Уникальность кода гарантируется уникальным индексом в БД и повтором генерации при коллизии
func Generate() (string, error) {
	code := make([]byte, 0, Length)
	buf := make([]byte, Length)

	for len(code) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("confirmcode: failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= rejectionLimit {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == Length {
				break
			}
		}
	}

	return string(code), nil
}

// Normalize приводит код к каноническому виду: без пробелов, в верхнем регистре
// Гость может ввести код строчными буквами - поиск при этом должен работать
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid проверяет, что строка соответствует формату кода подтверждения
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, c := range code {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
