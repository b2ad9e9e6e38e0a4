package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator engine is not available")
	}
	return v, nil
}

// New returns a standalone validator with the common rules registered and
// field names reported by their JSON tag.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Register registers all common validators on v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)

	rules := map[string]validator.Func{
		"phone":    ValidatePhone,
		"voterid":  ValidateVoterID,
		"accepted": ValidateAccepted,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterAll registers all common validators on the gin binding engine.
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	if err := Register(v); err != nil {
		return err
	}

	slog.Info("common validators registered", "validators", "phone,voterid,accepted")
	return nil
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
