package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи опциональных параметров и литералов
func Ptr[T any](v T) *T {
	return &v
}
