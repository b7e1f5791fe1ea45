package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var customValidators = map[string]validator.Func{
	"image_ref":          isImageRef,
	"image_ref_or_empty": orEmpty(isImageRef),
	"http_url_or_empty":  orEmpty(isHTTPURL),
	"specialty":          isSpecialty,
	"wizard_step":        isWizardStep,
}

// customTranslations also overrides built-in tags whose default English message is missing.
var customTranslations = map[string]string{
	"image_ref":          "{0} must be an http(s) URL or a blob: reference",
	"image_ref_or_empty": "{0} must be empty, an http(s) URL or a blob: reference",
	"http_url":           "{0} must be an http(s) URL",
	"http_url_or_empty":  "{0} must be empty or an http(s) URL",
	"specialty":          "{0} must be one of the listed specialties",
	"wizard_step":        "{0} must be a step between 1 and 5",
}

// Translator renders validator errors as field => message maps.
type Translator struct {
	trans ut.Translator
}

// Register installs the custom rules and English messages on v. The json tag is used as the
// field name so messages line up with request bodies.
func Register(v *validator.Validate) (*Translator, error) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	for name, fn := range customValidators {
		if err := v.RegisterValidation(name, fn); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}
	for tag, msg := range customTranslations {
		err := v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, msg, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(tag, fe.Field())
				return t
			},
		)
		if err != nil {
			return nil, err
		}
	}
	return &Translator{trans: trans}, nil
}

// RegisterGin installs the rules on gin's default binding validator.
func RegisterGin() (*Translator, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

// Details flattens a binding error. Non-validation errors (bad JSON) yield nil.
func (t *Translator) Details(err error) map[string]string {
	var ve validator.ValidationErrors
	if t == nil || !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fieldPath(fe)] = fe.Translate(t.trans)
	}
	return out
}

// fieldPath drops the top-level struct name: "StartWizardRequest.draft.website" => "draft.website".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// orEmpty lets a blank string through so pointer fields can be cleared with "".
func orEmpty(fn validator.Func) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() == reflect.String && strings.TrimSpace(fl.Field().String()) == "" {
			return true
		}
		return fn(fl)
	}
}

func isImageRef(fl validator.FieldLevel) bool {
	ref := strings.TrimSpace(fl.Field().String())
	if strings.HasPrefix(ref, "blob:") {
		return len(ref) > len("blob:")
	}
	return isHTTP(ref)
}

func isHTTPURL(fl validator.FieldLevel) bool {
	return isHTTP(strings.TrimSpace(fl.Field().String()))
}

func isHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isSpecialty(fl validator.FieldLevel) bool {
	return entities.IsSpecialty(strings.TrimSpace(fl.Field().String()))
}

func isWizardStep(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wizard.Step(f.Int()).Valid()
	}
	return false
}
