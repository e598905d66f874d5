// Package validation holds the input rules for contact submissions and the
// entity invariants for events and resources.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"gothamai/internal/domain"
)

var (
	phoneRegex = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	must(v.RegisterValidation("phone", matches(phoneRegex)))
	must(v.RegisterValidation("slug", matches(slugRegex)))
	must(v.RegisterValidation("eventcategory", oneOf(domain.EventCategories)))
	must(v.RegisterValidation("resourcetype", oneOf(domain.ResourceTypes)))
	must(v.RegisterValidation("resourcecategory", oneOf(domain.ResourceCategories)))
	must(v.RegisterValidation("difficulty", oneOf(domain.ResourceDifficulties)))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

var enumValues = map[string][]string{
	"eventcategory":    domain.EventCategories,
	"resourcetype":     domain.ResourceTypes,
	"resourcecategory": domain.ResourceCategories,
	"difficulty":       domain.ResourceDifficulties,
}

// entityError turns validator output into a domain.ValidationError with one
// message per failed rule.
func entityError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.NewValidationError(msgs...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "slug":
		return field + " must contain only lowercase letters, digits and dashes"
	}
	if values, ok := enumValues[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(values, ", "))
	}
	return field + " is invalid"
}
