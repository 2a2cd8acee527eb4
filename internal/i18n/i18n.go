// Package i18n provides the bilingual (English/Vietnamese) string catalog.
// Lookups fall back to English, then to the key itself, so a missing
// translation never blanks the UI.
package i18n

import "fmt"

// Lang identifies a supported display language.
type Lang string

const (
	LangEN Lang = "en"
	LangVI Lang = "vi"
)

// ParseLang normalizes a language code, defaulting to English.
func ParseLang(code string) Lang {
	if Lang(code) == LangVI {
		return LangVI
	}
	return LangEN
}

// Translator resolves catalog keys for one language.
type Translator struct {
	lang Lang
}

// New creates a Translator for the given language.
func New(lang Lang) *Translator {
	return &Translator{lang: lang}
}

// Lang returns the translator's language.
func (t *Translator) Lang() Lang {
	return t.lang
}

// T looks up a catalog key.
func (t *Translator) T(key string) string {
	if t.lang == LangVI {
		if s, ok := catalogVI[key]; ok {
			return s
		}
	}
	if s, ok := catalogEN[key]; ok {
		return s
	}
	return key
}

// Tf looks up a key and formats it with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
