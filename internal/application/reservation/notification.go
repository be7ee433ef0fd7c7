package reservation

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"boisdebene/internal/domain/reservation"
)

// Free-text messages are stripped down to plain text before they are
// embedded in the notification HTML; line breaks are the only markup kept.
var messagePolicy = bluemonday.StrictPolicy()

const notificationHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #1a1a1a 0%, #2d2d2d 100%); color: #D4AF37; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #f9f9f9; padding: 30px; border: 1px solid #e0e0e0; border-top: none; }
      .info-row { margin-bottom: 15px; padding-bottom: 15px; border-bottom: 1px solid #e0e0e0; }
      .info-label { font-weight: bold; color: #1a1a1a; display: inline-block; min-width: 120px; }
      .info-value { color: #555; }
      .message-box { background: #fff; padding: 15px; border-left: 4px solid #D4AF37; margin-top: 20px; }
      .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1 style="margin: 0; font-size: 28px;">Bois d&#39;Éb&egrave;ne</h1>
      <p style="margin: 10px 0 0 0; font-size: 16px;">Nouvelle demande de réservation</p>
    </div>
    <div class="content">
      <div class="info-row"><span class="info-label">Nom:</span> <span class="info-value">{{.Name}}</span></div>
      <div class="info-row"><span class="info-label">Email:</span> <span class="info-value">{{.Email}}</span></div>
      <div class="info-row"><span class="info-label">Téléphone:</span> <span class="info-value">{{.Phone}}</span></div>
      <div class="info-row"><span class="info-label">Date:</span> <span class="info-value">{{.Date}}</span></div>
      <div class="info-row"><span class="info-label">Heure:</span> <span class="info-value">{{.Time}}</span></div>
      <div class="info-row"><span class="info-label">Nombre de personnes:</span> <span class="info-value">{{.Guests}}</span></div>
      {{if .Message}}<div class="message-box"><strong>Message:</strong><br>{{.Message}}</div>{{end}}
    </div>
    <div class="footer">
      <p>Cette réservation a été envoyée depuis le site web <a href="{{.SiteURL}}" style="color: #D4AF37;">{{.SiteURL}}</a></p>
    </div>
  </body>
</html>`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))

type notificationData struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Guests  string
	Message template.HTML
	SiteURL string
}

// renderNotification builds the rich and plain-text renderings of a
// reservation notification. The formatted date is produced by the caller so
// both renderings share it.
func renderNotification(req reservation.Request, formattedDate, guests, siteURL string) (htmlBody, textBody string, err error) {
	var msgHTML template.HTML
	if req.Message != "" {
		sanitized := messagePolicy.Sanitize(req.Message)
		msgHTML = template.HTML(strings.ReplaceAll(sanitized, "\n", "<br>"))
	}

	var buf bytes.Buffer
	err = notificationTmpl.Execute(&buf, notificationData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    formattedDate,
		Time:    req.Time,
		Guests:  guests,
		Message: msgHTML,
		SiteURL: siteURL,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}

	var text strings.Builder
	text.WriteString("Nouvelle réservation - Bois d'Ébène\n\n")
	fmt.Fprintf(&text, "Nom: %s\n", req.Name)
	fmt.Fprintf(&text, "Email: %s\n", req.Email)
	fmt.Fprintf(&text, "Téléphone: %s\n", req.Phone)
	fmt.Fprintf(&text, "Date: %s\n", formattedDate)
	fmt.Fprintf(&text, "Heure: %s\n", req.Time)
	fmt.Fprintf(&text, "Nombre de personnes: %s\n", guests)
	if req.Message != "" {
		fmt.Fprintf(&text, "\nMessage:\n%s\n", req.Message)
	}
	fmt.Fprintf(&text, "\n---\nCette réservation a été envoyée depuis %s", siteURL)

	return buf.String(), text.String(), nil
}

// notificationSubject builds the subject line for a reservation request.
func notificationSubject(req reservation.Request) string {
	return fmt.Sprintf("Nouvelle réservation - %s", req.Name)
}
