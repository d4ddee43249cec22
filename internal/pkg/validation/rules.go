package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/revams/api/internal/pkg/helpers"
)

// Validation rule patterns
var (
	// StudentNumberPattern matches campus student numbers such as 21-00042.
	StudentNumberPattern = regexp.MustCompile(`^[0-9]{2,4}-[0-9]{3,6}$`)

	NameMaxLength = 100
)

// custom tags & their messages
var customRules = []struct {
	tag   string
	match func(string) bool
	text  string
}{
	{"timeofday", helpers.TimeOfDayPattern.MatchString, "{0} must be a time of day in HH:MM or HH:MM:SS format"},
	{"studentnumber", StudentNumberPattern.MatchString, "{0} must be a student number like 21-00042"},
	{"calendardate", isCalendarDate, "{0} must be a date in YYYY-MM-DD format"},
}

func isCalendarDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// FieldError is the first schema violation found in a payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Validator wraps go-playground/validator with English messages that name
// fields by their JSON, query or path parameter name.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	for _, rule := range customRules {
		match := rule.match
		_ = validate.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
			return match(fl.Field().String())
		})
		registerTranslation(validate, translator, rule.tag, rule.text)
	}

	return &Validator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates s and returns the first violation as a *FieldError, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		first := errs[0]
		return &FieldError{Field: first.Field(), Message: first.Translate(v.translator)}
	}
	return err
}
