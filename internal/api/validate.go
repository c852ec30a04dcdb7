package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	svcErr "github.com/oggyb/campus-connect/internal/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Rule pairs a request field with its validator tag.
type Rule struct {
	Field string
	Value any
	Tag   string
}

// Field builds a Rule; name is the proto field name reported to clients.
func Field(name string, value any, tag string) Rule {
	return Rule{Field: name, Value: value, Tag: tag}
}

// Validate checks rules in order and reports the first violation as an
// InvalidArgument domain error.
func Validate(rules ...Rule) error {
	for _, r := range rules {
		err := validate.Var(r.Value, r.Tag)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Param() != "" {
				return svcErr.Invalid("%s failed %s=%s", r.Field, fe.Tag(), fe.Param())
			}
			return svcErr.Invalid("%s failed %s", r.Field, fe.Tag())
		}
		return svcErr.Invalid("%s: %v", r.Field, err)
	}
	return nil
}
