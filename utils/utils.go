package utils

func Zero[T any]() T {
	var result T
	return result
}
