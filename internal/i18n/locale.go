// Package i18n implements the bilingual text resolution used across the
// site: locale negotiation, bilingual record lookup with literal-key
// fallback, and the localized user-facing messages of the reservation flow.
package i18n

import "golang.org/x/text/language"

// Locale represents a supported display language
type Locale string

const (
	FR Locale = "fr"
	EN Locale = "en"
)

// DefaultLocale is used whenever negotiation cannot produce a supported locale.
const DefaultLocale = FR

// supported tags, in preference order. French first so it wins ties and
// empty Accept-Language headers.
var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

// ParseLocale parses a stored or user-supplied locale string.
// The second return value reports whether the value was supported.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case FR:
		return FR, true
	case EN:
		return EN, true
	}
	return DefaultLocale, false
}

// DetectLocale negotiates a locale from an Accept-Language header value,
// mapping anything unsupported to the default.
func DetectLocale(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "en" {
		return EN
	}
	return DefaultLocale
}
