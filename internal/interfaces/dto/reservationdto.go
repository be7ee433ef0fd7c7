package dto

import (
	"boisdebene/internal/domain/reservation"
	"boisdebene/internal/shared/utils"
)

// SubmitReservationRequest is the form payload of the reservation endpoint.
// Guests arrives as text and defaults to "2" when omitted.
type SubmitReservationRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Guests  string `json:"guests"`
	Message string `json:"message"`
}

// Validate runs the submitting-boundary checks: required fields first, then
// the email shape. The dispatch service re-runs the same checks because this
// boundary is not trusted.
func (r *SubmitReservationRequest) Validate() error {
	if err := utils.ValidateStruct(r); err != nil {
		return reservation.ErrMissingFields
	}
	if !reservation.ValidEmail(r.Email) {
		return reservation.ErrInvalidEmail
	}
	return nil
}

// ToDomain converts the payload into a domain request.
func (r *SubmitReservationRequest) ToDomain() reservation.Request {
	guests := r.Guests
	if guests == "" {
		guests = "2"
	}
	return reservation.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Date:    r.Date,
		Time:    r.Time,
		Guests:  guests,
		Message: r.Message,
	}
}

// SubmitReservationResponse reports a dispatched reservation back to the
// form. DeliveryID is opaque and may be empty.
type SubmitReservationResponse struct {
	DeliveryID string `json:"delivery_id,omitempty"`
}
