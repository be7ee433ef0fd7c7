package middleware

import (
	"github.com/gin-gonic/gin"

	"boisdebene/internal/i18n"
)

const (
	localeQueryParam = "lang"
	localeCookieName = "language"
	localeCookieAge  = 365 * 24 * 60 * 60

	resolverContextKey = "i18n_resolver"
)

// Locale resolves the active locale for the request and injects an i18n
// resolver into the gin context. Resolution order: ?lang query parameter
// (adopted and persisted when supported), then the language cookie, then
// Accept-Language negotiation (persisted). Unsupported values at any step
// degrade to the next source, never to an error.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		var locale i18n.Locale
		resolved := false

		if q := c.Query(localeQueryParam); q != "" {
			if parsed, ok := i18n.ParseLocale(q); ok {
				locale = parsed
				resolved = true
				persistLocale(c, parsed)
			}
		}

		if !resolved {
			if cookie, err := c.Cookie(localeCookieName); err == nil {
				if parsed, ok := i18n.ParseLocale(cookie); ok {
					locale = parsed
					resolved = true
				}
			}
		}

		if !resolved {
			locale = i18n.DetectLocale(c.GetHeader("Accept-Language"))
			persistLocale(c, locale)
		}

		c.Set(resolverContextKey, i18n.NewResolver(locale))
		c.Next()
	}
}

func persistLocale(c *gin.Context, locale i18n.Locale) {
	c.SetCookie(localeCookieName, string(locale), localeCookieAge, "/", "", false, false)
}

// ResolverFrom returns the request's i18n resolver. Handlers running outside
// the Locale middleware get a default-locale resolver.
func ResolverFrom(c *gin.Context) *i18n.Resolver {
	if v, exists := c.Get(resolverContextKey); exists {
		if resolver, ok := v.(*i18n.Resolver); ok {
			return resolver
		}
	}
	return i18n.NewResolver(i18n.DefaultLocale)
}
