// Package reservation holds the reservation request value object and its
// authoritative validation rules. Requests are created per submission and
// never persisted.
package reservation

import (
	"regexp"
	"time"

	"boisdebene/internal/shared/errors"
)

// Validation failures surfaced by the dispatch boundary. The submitting
// client runs the same checks, but the client is not trusted, so they are
// enforced again here.
var (
	ErrMissingFields = errors.NewValidationError("Missing required fields")
	ErrInvalidEmail  = errors.NewValidationError("Invalid email address")
)

// local-part "@" domain "." tld, no whitespace or extra "@" anywhere.
// Matches the shape check of the submitting form.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the address pattern. The submitting
// boundary uses this for its own pre-check.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Request is one reservation request as received from the form. Date is
// YYYY-MM-DD and Time is HH:MM; Guests arrives as text and is passed through
// to the notification untouched. Message is optional.
type Request struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Guests  string
	Message string
}

// Validate enforces the dispatch invariant: name, email, phone, date and
// time must all be present and the email must match the address pattern.
func (r Request) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.Date == "" || r.Time == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ReservationDate parses the calendar date of the request.
func (r Request) ReservationDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
