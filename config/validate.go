package config

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rohanthewiz/serr"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	adminNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

// validatorInstance configures and returns the shared validator used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("admin_name", func(fl validator.FieldLevel) bool {
			return adminNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks field constraints plus the cross-field rules the
// struct tags cannot express.
func Validate(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+" failed "+fe.Tag())
			}
			return serr.New("invalid configuration: " + strings.Join(fields, "; "))
		}
		return serr.Wrap(err, "config validation failed")
	}

	// An admin area with a username but no password would be an
	// account nobody can log into
	if cfg.Admin.Username != "" && cfg.Admin.Password == "" {
		return serr.New("admin.password is required when admin.username is set")
	}
	if cfg.Admin.Password != "" && cfg.Admin.Username == "" {
		return serr.New("admin.username is required when admin.password is set")
	}

	return nil
}
