package utils

func ToPtr[T any](v T) *T {
	return &v
}

// NonNil заменяет nil-срез пустым, чтобы в jsonb и в ответе был [], а не null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}
