package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLogin       = errors.New("login must be 6-64 letters, digits, '.', '_' or '-'")
	ErrInvalidPassword    = errors.New("password must be 8-128 characters long")
	ErrInvalidNickname    = errors.New("nickname must be 1-64 characters long")
	ErrInvalidImageURL    = errors.New("invalid image url")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidRecipeName  = errors.New("recipe name must be 1-128 characters long")
	ErrInvalidDescription = errors.New("description is too long")
	ErrInvalidIngredient  = errors.New("invalid ingredient")
	ErrInvalidStep        = errors.New("invalid step")
	ErrTooManyItems       = errors.New("too many ingredients or steps")
)
