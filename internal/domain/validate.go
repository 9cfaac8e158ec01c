package domain

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the wire field name rather than the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// RecipeInput is the client-writable portion of a recipe.
type RecipeInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required"`
	Ingredients  string `json:"ingredients" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	CookingTime  int    `json:"cooking_time" validate:"gt=0"`
}

func (in RecipeInput) Validate() error {
	return translate(validate.Struct(in), map[string]string{
		"title.max":       "Ensure this field has no more than 200 characters.",
		"cooking_time.gt": "Cooking time must be positive",
	})
}

// CommentInput is the client-writable portion of a comment.
type CommentInput struct {
	Content string `json:"content" validate:"required,max=5000"`
}

func (in CommentInput) Validate() error {
	return translate(validate.Struct(in), map[string]string{
		"content.max": "Ensure this field has no more than 5000 characters.",
	})
}

// RatingInput is the client-writable portion of a difficulty rating.
type RatingInput struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

func (in RatingInput) Validate() error {
	return translate(validate.Struct(in), map[string]string{
		"rating.required": "Rating must be between 1 and 5",
		"rating.min":      "Rating must be between 1 and 5",
		"rating.max":      "Rating must be between 1 and 5",
	})
}

// RegistrationInput is a new account request.
type RegistrationInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password1 string `json:"password1" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

func (in RegistrationInput) Validate() error {
	return translate(validate.Struct(in), map[string]string{
		"username.max": "Ensure this field has no more than 150 characters.",
		"email.email":  "Enter a valid email address.",
	})
}

// ValidatePassword applies the account password rules: the two fields must
// match, and the password needs at least 5 characters, a digit, and an
// uppercase letter.
func ValidatePassword(password1, password2 string) error {
	if password1 != password2 {
		return NewFieldError("password", "The two password fields didn't match.")
	}

	if len(password1) < 5 {
		return NewFieldError("password", "Password must be at least 5 characters long")
	}

	if !strings.ContainsFunc(password1, unicode.IsDigit) {
		return NewFieldError("password", "Password must contain at least one number")
	}

	if !strings.ContainsFunc(password1, unicode.IsUpper) {
		return NewFieldError("password", "Password must contain at least one uppercase letter")
	}

	return nil
}

// translate converts validator failures into a ValidationError, preferring
// per-field override messages keyed as "field.tag".
func translate(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validating input: %w", err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(fe.Tag())
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}

	return ValidationError{Fields: fields}
}

func defaultMessage(tag string) string {
	switch tag {
	case "required":
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}
