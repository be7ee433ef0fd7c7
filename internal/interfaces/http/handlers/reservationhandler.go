package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appReservation "boisdebene/internal/application/reservation"
	domain "boisdebene/internal/domain/reservation"
	"boisdebene/internal/i18n"
	"boisdebene/internal/interfaces/dto"
	"boisdebene/internal/interfaces/http/middleware"
	"boisdebene/internal/shared/errors"
	"boisdebene/internal/shared/logger"
	"boisdebene/internal/shared/utils"
)

// ReservationDispatcher is the trusted dispatch boundary of the reservation
// flow.
type ReservationDispatcher interface {
	Dispatch(ctx context.Context, req domain.Request) (*appReservation.Result, error)
}

type ReservationHandler struct {
	service ReservationDispatcher
	logger  logger.Interface
}

func NewReservationHandler(service ReservationDispatcher, log logger.Interface) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  log,
	}
}

// Submit accepts a reservation form payload, runs the submitting-boundary
// validation and forwards the request to the dispatch service. One outbound
// call per submission; the outcome is surfaced to the form exactly once and
// never retried here.
func (h *ReservationHandler) Submit(c *gin.Context) {
	locale := middleware.ResolverFrom(c).Locale()

	var req dto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid reservation payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, i18n.MsgMissingFields(locale))
		return
	}

	if err := req.Validate(); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, h.localizeError(err, locale))
		return
	}

	result, err := h.service.Dispatch(c.Request.Context(), req.ToDomain())
	if err != nil {
		appErr := errors.GetAppError(err)
		status := http.StatusInternalServerError
		if appErr != nil {
			status = appErr.Code
		}
		utils.ErrorResponse(c, status, h.localizeError(err, locale))
		return
	}

	utils.OKResponse(c,
		dto.SubmitReservationResponse{DeliveryID: result.DeliveryID},
		i18n.MsgReservationSent(locale))
}

// localizeError maps the reservation error taxonomy onto the user-facing
// localized messages. Anything unrecognized gets the generic fallback.
func (h *ReservationHandler) localizeError(err error, locale i18n.Locale) string {
	switch {
	case stderrors.Is(err, domain.ErrMissingFields):
		return i18n.MsgMissingFields(locale)
	case stderrors.Is(err, domain.ErrInvalidEmail):
		return i18n.MsgInvalidEmail(locale)
	case errors.IsDeliveryError(err):
		return i18n.MsgDeliveryFailed(locale)
	default:
		return i18n.MsgUnexpectedError(locale)
	}
}
