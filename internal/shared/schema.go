package shared

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Schema validates candidate records against validator tags and turns the
// violations into per-field messages. Messages are looked up by
// "<field path without indices>.<tag>", e.g. "items.quantity.min".
type Schema struct {
	validate *validator.Validate
	messages map[string]string
}

// NewSchema builds a Schema with the given message overrides.
func NewSchema(messages map[string]string) *Schema {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return &Schema{validate: v, messages: messages}
}

// Validate checks candidate and returns nil when it is valid.
func (s *Schema) Validate(candidate any) FieldErrors {
	err := s.validate.Struct(candidate)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"general": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = s.message(path, fe)
	}
	return out
}

func (s *Schema) message(path string, fe validator.FieldError) string {
	key := indexPattern.ReplaceAllString(path, "") + "." + fe.Tag()
	if msg, ok := s.messages[key]; ok {
		return msg
	}
	label := Humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "oneof":
		return "Invalid " + strings.ToLower(label)
	case "min":
		if fe.Kind() == reflect.Slice {
			return label + " must contain at least " + fe.Param() + " item(s)"
		}
		return label + " must be at least " + fe.Param()
	case "max":
		return label + " must be at most " + fe.Param()
	}
	return label + " is invalid"
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// Humanize turns a camelCase json name into a sentence-case label:
// "postalCode" becomes "Postal code".
func Humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
