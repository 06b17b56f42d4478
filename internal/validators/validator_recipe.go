package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldNickname    = "nickname"
	FieldImageURL    = "image_url"
	FieldName        = "name"
	FieldDescription = "description"
	FieldIngredients = "ingredients"
	FieldSteps       = "steps"
)

const (
	maxNicknameLen    = 64
	maxRecipeNameLen  = 128
	maxDescriptionLen = 4096
	maxListLen        = 100
	maxMeasureLen     = 32
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{6,64}$`)

// RecipeValidator validates the user-supplied models of the recipe domain:
// Credentials, ProfileUpdate and Recipe, as values or pointers.
type RecipeValidator struct {
}

// NewRecipeValidator constructs a new RecipeValidator and returns it as the
// Validator interface.
func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is validated. Returns ErrUnsupportedType for any other type.
func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)
	case models.Recipe:
		return v.validateRecipe(value, fields...)
	case *models.Recipe:
		return v.validateRecipe(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldNickname}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if !loginPattern.MatchString(credentials.Login) {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if n := utf8.RuneCountInString(credentials.Password); n < 8 || n > 128 {
				return ErrInvalidPassword
			}
		case FieldNickname:
			// optional on registration
			if credentials.Nickname != "" && !validNickname(credentials.Nickname) {
				return ErrInvalidNickname
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if len(fields) == 0 {
		fields = []string{FieldNickname, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldNickname:
			if update.Nickname != nil && !validNickname(*update.Nickname) {
				return ErrInvalidNickname
			}
		case FieldImageURL:
			if update.ImageURL != nil && !validImageURL(*update.ImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateRecipe(recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldImageURL, FieldIngredients, FieldSteps}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(recipe.Name)
			if name == "" || utf8.RuneCountInString(name) > maxRecipeNameLen {
				return ErrInvalidRecipeName
			}
		case FieldDescription:
			if utf8.RuneCountInString(recipe.Description) > maxDescriptionLen {
				return ErrInvalidDescription
			}
		case FieldImageURL:
			if !validImageURL(recipe.ImageURL) {
				return ErrInvalidImageURL
			}
		case FieldIngredients:
			if len(recipe.Ingredients) > maxListLen {
				return ErrTooManyItems
			}
			for i, ingredient := range recipe.Ingredients {
				if strings.TrimSpace(ingredient.Name) == "" || ingredient.Amount < 0 || len(ingredient.Measure) > maxMeasureLen {
					return fmt.Errorf("%w at index %d", ErrInvalidIngredient, i)
				}
			}
		case FieldSteps:
			if len(recipe.Steps) > maxListLen {
				return ErrTooManyItems
			}
			for i, step := range recipe.Steps {
				if strings.TrimSpace(step.Description) == "" || step.Duration < 0 {
					return fmt.Errorf("%w at index %d", ErrInvalidStep, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validNickname(nickname string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(nickname))
	return n > 0 && n <= maxNicknameLen
}

// validImageURL accepts the empty string, absolute http(s) URLs and the
// API-relative paths returned by image uploads.
func validImageURL(raw string) bool {
	if raw == "" {
		return true
	}
	if strings.HasPrefix(raw, "/api/images/") {
		return true
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
