package service

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/fieldops/farm-admin/internal/domain"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "staffrole", func(fl validator.FieldLevel) bool {
		return domain.StaffRole(fl.Field().String()).Valid()
	})
	mustRegister(v, "fueltype", func(fl validator.FieldLevel) bool {
		return domain.FuelType(fl.Field().String()).Valid()
	})
	mustRegister(v, "vehiclestatus", func(fl validator.FieldLevel) bool {
		return domain.VehicleStatus(fl.Field().String()).Valid()
	})
	v.RegisterStructValidation(validateFieldLocation, FieldInput{})
	return v
}

func validateFieldLocation(sl validator.StructLevel) {
	in := sl.Current().Interface().(FieldInput)
	if !(domain.Location{Latitude: in.Latitude, Longitude: in.Longitude}).Valid() {
		sl.ReportError(in.Latitude, "Location", "Location", "location", "")
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateInput checks struct tags and converts failures into a
// VALIDATION_FAILED error listing the offending fields.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("invalid input", details)
}

// imagePayloadSize returns the decoded size of a base64 data URL.
func imagePayloadSize(dataURL string) (int, error) {
	_, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return 0, errors.New("missing data url payload")
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, err
	}
	return len(decoded), nil
}
