package i18n

// Text is a bilingual content record holding the same semantic content in
// both supported locales. Records are immutable once loaded from content
// data.
type Text struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

// NewText builds a bilingual record from its two renderings.
func NewText(fr, en string) Text {
	return Text{FR: fr, EN: en}
}

// Resolver resolves bilingual records against one active locale. A Resolver
// is built once per request and threaded explicitly into whatever renders
// text; there is no process-wide language state.
type Resolver struct {
	locale Locale
}

// NewResolver returns a resolver for the given locale.
func NewResolver(locale Locale) *Resolver {
	if _, ok := ParseLocale(string(locale)); !ok {
		locale = DefaultLocale
	}
	return &Resolver{locale: locale}
}

// Locale returns the active locale.
func (r *Resolver) Locale() Locale {
	return r.locale
}

// SetLocale switches the active locale. Unsupported values are ignored and
// the active locale stays unchanged.
func (r *Resolver) SetLocale(s string) {
	if locale, ok := ParseLocale(s); ok {
		r.locale = locale
	}
}

// Resolve returns the active locale's rendering of text. A record with no
// rendering for the active locale degrades to the literal lookup key, so a
// missing translation renders as its key instead of failing.
func (r *Resolver) Resolve(key string, text Text) string {
	var s string
	switch r.locale {
	case EN:
		s = text.EN
	default:
		s = text.FR
	}
	if s == "" {
		return key
	}
	return s
}
