package favorite

import "errors"

var (
	ErrAlreadyFavorited = errors.New("recipe is already in favorites")
	ErrNotFavorited     = errors.New("recipe is not in favorites")
)
