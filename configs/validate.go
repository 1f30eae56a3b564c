package configs

import (
	"errors"
	"net/mail"
	"regexp"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// Validate is the shared validator instance for request payloads.
var Validate = validator.New()

type InputValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Tag     string `json:"tag"`
}

func (err *InputValidationError) Error() string {
	return err.Message
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", errors.New("unable to hash and encrypt password")
	}

	return string(bytes), nil
}

func CheckPassword(currentHash, givenPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(givenPassword))
}

func ValidateEmailAddress(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return &InputValidationError{
			Message: "email address appeared to be invalid or can't be used",
			Field:   "email",
			Tag:     "bad_email",
		}
	}

	return nil
}

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

func ValidatePhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return &InputValidationError{
			Message: "phone number should be 10 to 15 digits, optionally prefixed with +",
			Field:   "phone",
			Tag:     "bad_phone",
		}
	}

	return nil
}
