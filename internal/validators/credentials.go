package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf16"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

// Field names accepted by CredentialsValidator.Validate.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordLength  = "password_length"
	FieldPasswordConfirm = "password_confirm"
)

// MinPasswordLength is the shortest password accepted on sign-up.
const MinPasswordLength = 8

type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.WaitlistRequest:
		return v.validateEmail(value.Email)
	case *models.WaitlistRequest:
		return v.validateEmail(value.Email)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks a login form: both fields present, no length
// rule, since existing accounts may predate it.
func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validateEmail(c.Email); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if passwordLength(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPasswordLength, FieldPasswordConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail, FieldPassword, FieldPasswordLength:
			if err := v.validateCredentials(r.Credentials(), f); err != nil {
				return err
			}
		case FieldPasswordConfirm:
			if r.Password != r.Confirm {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// passwordLength counts UTF-16 code units, the unit browsers use for
// password length, so a character outside the BMP counts twice.
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}
