package i18n

import (
	"fmt"
	"time"
)

var weekdaysFR = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var monthsFR = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatLongDate renders a calendar date long-form (weekday, day, month,
// year) for the given locale, e.g. "mercredi 24 décembre 2025" or
// "Wednesday, December 24, 2025".
func FormatLongDate(locale Locale, t time.Time) string {
	if locale == EN {
		return t.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s %d %s %d",
		weekdaysFR[t.Weekday()],
		t.Day(),
		monthsFR[t.Month()-1],
		t.Year(),
	)
}
