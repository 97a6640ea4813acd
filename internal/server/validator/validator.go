package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

var tagOnce sync.Once

// Validator translates gin binding failures into field messages in one locale.
type Validator struct {
	trans ut.Translator
}

// New configures gin's validator engine and returns a Validator for locale.
// Locales without validator translations fall back to English.
func New(locale string) (*Validator, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("gin binding engine is not go-playground/validator")
	}

	tagOnce.Do(func() {
		v.RegisterTagNameFunc(tagName)
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())

	trans, found := uni.GetTranslator(locale)
	if !found {
		trans, _ = uni.GetTranslator("en")
	}

	var err error
	switch trans.Locale() {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(v, trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		return nil, fmt.Errorf("register %s translations: %w", trans.Locale(), err)
	}

	return &Validator{trans: trans}, nil
}

// tagName prefers the json name, then the form name, of a struct field.
func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ParseError converts a binding error into a field -> message map.
func (v *Validator) ParseError(err error) map[string]string {
	errMap := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			ns := e.Namespace()
			if i := strings.Index(ns, "."); i != -1 {
				ns = ns[i+1:]
			}

			msg := e.Translate(v.trans)
			if e.Tag() == "oneof" {
				msg = fmt.Sprintf("%s must be one of [%s]", ns, strings.ReplaceAll(e.Param(), " ", ", "))
			}

			errMap[ns] = msg
		}
		return errMap
	}

	errMap["request"] = "Malformed request. Please fix your payload."
	return errMap
}
