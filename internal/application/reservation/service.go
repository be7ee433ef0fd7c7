// Package reservation implements the trusted dispatch boundary of the
// reservation flow: authoritative validation, notification formatting and
// delivery through the outbound email capability.
package reservation

import (
	"context"

	"boisdebene/internal/domain/reservation"
	"boisdebene/internal/i18n"
	"boisdebene/internal/infrastructure/email"
	sharedConfig "boisdebene/internal/shared/config"
	"boisdebene/internal/shared/errors"
	"boisdebene/internal/shared/logger"
)

const defaultGuests = "2"

// Result is the tagged outcome of one dispatch. DeliveryID is the opaque
// identifier returned by the email capability and may be empty.
type Result struct {
	DeliveryID string
}

// Service dispatches reservation notifications. It is stateless: every call
// receives the full request and produces one result, so concurrent
// submissions are independent.
type Service struct {
	mailer   email.Mailer
	emailCfg sharedConfig.EmailConfig
	siteCfg  sharedConfig.SiteConfig
	logger   logger.Interface
}

func NewService(mailer email.Mailer, emailCfg sharedConfig.EmailConfig, siteCfg sharedConfig.SiteConfig, log logger.Interface) *Service {
	return &Service{
		mailer:   mailer,
		emailCfg: emailCfg,
		siteCfg:  siteCfg,
		logger:   log,
	}
}

// Dispatch validates the request, formats the notification and sends it to
// the venue's notification address. The submitting client already ran the
// same validation, but the client is untrusted, so the checks run again
// here. There is no retry and no idempotency key: a duplicate submission
// sends a duplicate notification.
func (s *Service) Dispatch(ctx context.Context, req reservation.Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("panic during reservation dispatch", "panic", r)
			result = nil
			err = errors.NewInternalError("Unexpected error")
		}
	}()

	if err := req.Validate(); err != nil {
		s.logger.Warnw("reservation request rejected",
			"reason", err.Error(),
			"name", req.Name)
		return nil, err
	}

	date, err := req.ReservationDate()
	if err != nil {
		s.logger.Errorw("unparseable reservation date", "date", req.Date, "error", err)
		return nil, errors.NewInternalError("Unexpected error")
	}

	// The venue reads notifications in French regardless of the UI locale,
	// so the long-form date is always formatted fr-FR. Time-of-day is passed
	// through verbatim; no timezone conversion happens anywhere in this flow.
	formattedDate := i18n.FormatLongDate(i18n.FR, date)

	guests := req.Guests
	if guests == "" {
		guests = defaultGuests
	}

	htmlBody, textBody, err := renderNotification(req, formattedDate, guests, s.siteCfg.PublicURL)
	if err != nil {
		s.logger.Errorw("failed to render reservation notification", "error", err)
		return nil, errors.NewInternalError("Unexpected error")
	}

	deliveryID, err := s.mailer.Send(email.Message{
		FromAddress: s.siteCfg.ContactEmail,
		FromName:    s.emailCfg.FromName,
		To:          []string{s.siteCfg.ContactEmail},
		ReplyTo:     req.Email,
		Subject:     notificationSubject(req),
		HTMLBody:    htmlBody,
		TextBody:    textBody,
	})
	if err != nil {
		s.logger.Errorw("failed to deliver reservation notification",
			"error", err,
			"name", req.Name)
		return nil, errors.NewDeliveryError("Failed to send email")
	}

	s.logger.Infow("reservation notification delivered",
		"delivery_id", deliveryID,
		"date", req.Date,
		"time", req.Time,
		"guests", guests)

	return &Result{DeliveryID: deliveryID}, nil
}
