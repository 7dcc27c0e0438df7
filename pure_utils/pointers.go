package pure_utils

func Ptr[T any](value T) *T {
	return &value
}
