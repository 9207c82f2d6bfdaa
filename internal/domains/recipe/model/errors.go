package model

import "errors"

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNotRecipeAuthor = errors.New("only the author can modify this recipe")

	ErrNoIngredients         = errors.New("recipe needs at least one ingredient")
	ErrNoTags                = errors.New("recipe needs at least one tag")
	ErrUnknownIngredient     = errors.New("ingredient does not exist")
	ErrUnknownTag            = errors.New("tag does not exist")
	ErrDuplicateIngredient   = errors.New("ingredients must be unique within a recipe")
	ErrDuplicateTag          = errors.New("tags must be unique within a recipe")
	ErrBadAuthorFilter       = errors.New("author filter must be a valid user id")
	ErrAmountOutOfRange      = errors.New("ingredient amount must be between 1 and 2000")
	ErrCookingTimeOutOfRange = errors.New("cooking time must be between 1 and 200 minutes")
)
