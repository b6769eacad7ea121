package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidSeed     = errors.New("seed dataset is invalid")
)
