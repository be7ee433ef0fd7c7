// Package email provides the outbound email capability used to deliver
// reservation notifications.
package email

// Message is one outbound email with both a rich and a plain-text rendering.
type Message struct {
	FromAddress string
	FromName    string
	To          []string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// Mailer delivers a message and returns an opaque delivery identifier.
// Implementations are stateless between calls.
type Mailer interface {
	Send(msg Message) (string, error)
}
