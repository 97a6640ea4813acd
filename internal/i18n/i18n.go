// Package i18n supplies the localization collaborator the registry resolves its
// human readable strings through.
package i18n

import (
	"fmt"
	"sort"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
)

const DefaultLocale = "en"

// Localizer resolves a translation key, substituting positional params ({0}, {1}, ...).
// Unknown keys resolve to the key itself.
type Localizer interface {
	Locale() string
	T(key string, params ...string) string
}

// Translator is a Localizer backed by a universal-translator catalog.
type Translator struct {
	trans ut.Translator
}

var supported = []locales.Translator{en.New(), de.New(), zh.New()}

// New builds a Translator for locale. Unsupported locales fall back to English;
// keys missing from a locale's catalog fall back to the English text.
func New(locale string) (*Translator, error) {
	fallback := en.New()
	uni := ut.New(fallback, supported...)

	trans, _ := uni.GetTranslator(locale)

	catalog := catalogs[trans.Locale()]
	keys := make([]string, 0, len(catalogs[DefaultLocale]))
	for k := range catalogs[DefaultLocale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		text, ok := catalog[key]
		if !ok {
			text = catalogs[DefaultLocale][key]
		}
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("register translation %q for %s: %w", key, trans.Locale(), err)
		}
	}

	return &Translator{trans: trans}, nil
}

func (t *Translator) Locale() string {
	return t.trans.Locale()
}

func (t *Translator) T(key string, params ...string) string {
	s, err := t.trans.T(key, params...)
	if err != nil {
		return key
	}
	return s
}

// Supported returns the locales with a bundled catalog.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, l := range supported {
		out = append(out, l.Locale())
	}
	return out
}
