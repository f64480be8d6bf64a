package favorite

import "errors"

var (
	ErrAlreadyFavorite = errors.New("book already in favorites")
	ErrNotFavorite     = errors.New("book not found in favorites")
)
