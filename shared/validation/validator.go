package validation

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
)

// DateLayout is the accepted format for calendar dates such as date of birth.
const DateLayout = "2006-01-02"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{8,15}$`)
)

var customMessages = map[string]string{
	"appemail": "Invalid email format",
	"password": "Password must be at least 6 characters and contain an uppercase letter, " +
		"a lowercase letter, a number and a special character",
	"passwordlen": "Password must be at most 72 bytes long",
	"imagesource": "Image must be a base64 data URI or an http(s) URL",
	"phone":       "Invalid phone number format",
	"pastdate":    "Date of birth must be a valid date in the past",
}

// Validator validates request payloads and renders the first failure as a
// human readable message.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with the custom rules and English translations registered.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"appemail": func(fl validator.FieldLevel) bool { return ValidEmail(fl.Field().String()) },
		"password": func(fl validator.FieldLevel) bool { return ValidPassword(fl.Field().String()) },
		"passwordlen": func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= MaxPasswordBytes
		},
		"imagesource": func(fl validator.FieldLevel) bool { return ValidImageSource(fl.Field().String()) },
		"phone":    func(fl validator.FieldLevel) bool { return ValidPhone(fl.Field().String()) },
		"pastdate": func(fl validator.FieldLevel) bool { return ValidPastDate(fl.Field().String(), time.Now()) },
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	for tag, message := range customMessages {
		if err := v.RegisterTranslation(tag, trans, registerMessage(tag, message), translateMessage(tag)); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: v, trans: trans}, nil
}

// Struct validates s and returns a validation error carrying the first
// failing field's message.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.Validation(fieldErrs[0].Translate(v.trans))
	}

	return err
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s has at least 6 characters including an
// uppercase letter, a lowercase letter, a digit and a special character,
// and fits in MaxPasswordBytes.
func ValidPassword(s string) bool {
	if len([]rune(s)) < 6 || len(s) > MaxPasswordBytes {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			special = true
		}
	}

	return upper && lower && digit && special
}

// ValidImageSource reports whether s is a base64 data URI or an absolute
// http(s) URL. Anything else could be read as a path on the server.
func ValidImageSource(s string) bool {
	if strings.HasPrefix(s, "data:") {
		return strings.Contains(s, ";base64,")
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}

// ValidPhone reports whether s is 8-15 digits with an optional leading '+'.
// Empty values are valid; use the required tag to demand a value.
func ValidPhone(s string) bool {
	return s == "" || phonePattern.MatchString(s)
}

// ValidPastDate reports whether s is a YYYY-MM-DD date strictly before now.
// Empty values are valid.
func ValidPastDate(s string, now time.Time) bool {
	if s == "" {
		return true
	}

	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}

	return date.Before(now)
}

func registerMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

func translateMessage(tag string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		msg, err := trans.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	}
}
