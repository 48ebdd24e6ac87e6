package handler

import (
	"errors"
	"strings"

	"wallet-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// bindError turns a binding failure into an AppError. A failed
// stellar_address rule becomes InvalidAddress so clients see the same code
// the services return.
func bindError(err error, fallbackField string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "stellar_address" {
				return apperror.ErrInvalidAddress(jsonField(fe, fallbackField))
			}
		}
	}
	return apperror.Validation(err.Error())
}

func jsonField(fe validator.FieldError, fallback string) string {
	switch strings.ToLower(fe.Field()) {
	case "publickey":
		return "public_key"
	case "destination":
		return "destination"
	}
	return fallback
}
