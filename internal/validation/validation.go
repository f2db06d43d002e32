package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	Translator ut.Translator

	once sync.Once

	// custom validation tags
	notBlankTag = "notblank"
	isoDateTag  = "isodate"
	clockTag    = "clock"
)

// FieldError is one failed field, keyed by its json name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Init configures the validator behind gin's binding. Safe to call more than once.
func Init() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		register(v)
	})
}

func register(v *validator.Validate) {
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, Translator)

	// Use JSON (or form) tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation(notBlankTag, notBlankValidation)
	_ = v.RegisterValidation(isoDateTag, layoutValidation("2006-01-02"))
	_ = v.RegisterValidation(clockTag, layoutValidation("15:04"))

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, isoDateTag, clockTag} {
		_ = v.RegisterTranslation(tag, Translator, registerFn, translateCustom)
	}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case isoDateTag:
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case clockTag:
		return fe.Field() + " must be a time in HH:MM format"
	}
	return ""
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// layoutValidation accepts empty strings; combine with required where needed.
func layoutValidation(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		if str == "" {
			return true
		}
		_, err := time.Parse(layout, str)
		return err == nil
	}
}

// Translate turns a binding error into field messages. It returns nil when err is
// not a validation error.
func Translate(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if Translator != nil {
			msg = fe.Translate(Translator)
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// IsMissing reports whether err failed only on required or notblank fields.
func IsMissing(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() != "required" && fe.Tag() != notBlankTag {
			return false
		}
	}
	return true
}
