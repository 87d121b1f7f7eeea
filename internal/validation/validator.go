package validation

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/go-playground/validator/v10"
)

// Violation is a single field-path + message pair describing one rule failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	personNameRegex = regexp.MustCompile(constants.PersonNamePattern)
	phoneRegex      = regexp.MustCompile(constants.PhonePattern)
	postalCodeRegex = regexp.MustCompile(constants.PostalCodePattern)
)

// New builds a validator with the submission rule set registered: json tag
// names for field paths plus the custom tags the schemas use.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodeRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("wholenum", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})

	return v
}

// Check validates a payload and returns the ordered violation list, one entry
// per failing field, with array elements index-qualified (items.2.unitPrice).
// A nil result means the payload satisfies the schema. Pure function of the
// payload and the registered rules; validating the same payload twice yields
// the identical list.
func Check(v *validator.Validate, payload any) []Violation {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-schema failure (bad payload type); surface as a single entry
		return []Violation{{Field: "", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, Violation{
			Field:   FieldPath(fe.Namespace()),
			Message: MessageFor(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return violations
}

// FieldPath converts a validator namespace into a json field path:
// "OrderRequest.items[2].unitPrice" -> "items.2.unitPrice".
func FieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}
