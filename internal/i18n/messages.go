// Package i18n holds the user-facing strings of the dashboard. Danish is the
// primary language; English is kept for operators running the service locally.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key doubles as the English text.
const (
	KeyInvalidPassword = "Incorrect password"
	KeyUnexpectedError = "An unexpected error occurred. Please try again."
	KeyInvalidRequest  = "The request could not be read."
	KeyLoginTitle      = "Log in"
	KeyPasswordLabel   = "Password"
	KeyLoginButton     = "Sign in"
	KeyLogoutButton    = "Log out"
	KeyOverviewTitle   = "Overview"
	KeySelectAll       = "Select all"
	KeySelectedCount   = "%d selected"
)

var danish = map[string]string{
	KeyInvalidPassword: "Forkert adgangskode",
	KeyUnexpectedError: "Der opstod en uventet fejl. Prøv igen.",
	KeyInvalidRequest:  "Forespørgslen kunne ikke læses.",
	KeyLoginTitle:      "Log ind",
	KeyPasswordLabel:   "Adgangskode",
	KeyLoginButton:     "Log ind",
	KeyLogoutButton:    "Log ud",
	KeyOverviewTitle:   "Oversigt",
	KeySelectAll:       "Vælg alle",
	KeySelectedCount:   "%d valgt",
}

// supported is ordered by preference; the first entry is the fallback for
// locales that match nothing.
var supported = []language.Tag{language.Danish, language.English}

var matcher = language.NewMatcher(supported)

// Translator renders message keys for one configured locale. It is immutable
// and safe for concurrent use; a printer is created per call.
type Translator struct {
	tag     language.Tag
	catalog catalog.Catalog
}

func NewTranslator(locale string) (*Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	_, index, _ := matcher.Match(tag)
	tag = supported[index]

	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for key, text := range danish {
		if err := builder.SetString(language.Danish, key, text); err != nil {
			return nil, fmt.Errorf("failed to register danish message %q: %w", key, err)
		}
		if err := builder.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("failed to register english message %q: %w", key, err)
		}
	}

	return &Translator{tag: tag, catalog: builder}, nil
}

// MustTranslator is NewTranslator for locales that were already validated.
func MustTranslator(locale string) *Translator {
	t, err := NewTranslator(locale)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) T(key string, args ...any) string {
	return message.NewPrinter(t.tag, message.Catalog(t.catalog)).Sprintf(key, args...)
}

// Language is the resolved language, never one without translations.
func (t *Translator) Language() string {
	return t.tag.String()
}
