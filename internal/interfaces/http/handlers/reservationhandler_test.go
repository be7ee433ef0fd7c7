package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appReservation "boisdebene/internal/application/reservation"
	domain "boisdebene/internal/domain/reservation"
	"boisdebene/internal/interfaces/http/middleware"
	"boisdebene/internal/shared/errors"
	"boisdebene/internal/shared/logger"
)

type mockDispatcher struct {
	dispatchFn func(ctx context.Context, req domain.Request) (*appReservation.Result, error)
	calls      []domain.Request
}

func (m *mockDispatcher) Dispatch(ctx context.Context, req domain.Request) (*appReservation.Result, error) {
	m.calls = append(m.calls, req)
	if m.dispatchFn != nil {
		return m.dispatchFn(ctx, req)
	}
	return &appReservation.Result{DeliveryID: "<delivery-id@smtp.test>"}, nil
}

type apiResponse struct {
	Success bool `json:"success"`
	Data    struct {
		DeliveryID string `json:"delivery_id"`
	} `json:"data"`
	Message string `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(dispatcher *mockDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Locale())

	handler := NewReservationHandler(dispatcher, logger.NewLogger())
	engine.POST("/api/reservations", handler.Submit)

	return engine
}

func submit(t *testing.T, engine *gin.Engine, path string, payload map[string]any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))

	return rec, parsed
}

func validPayload() map[string]any {
	return map[string]any{
		"name":    "Marie Dupont",
		"email":   "marie@example.com",
		"phone":   "+237600000000",
		"date":    "2025-12-24",
		"time":    "20:00",
		"guests":  "4",
		"message": "Table près de la scène",
	}
}

func TestSubmitSuccess(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	rec, resp := submit(t, engine, "/api/reservations", validPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "<delivery-id@smtp.test>", resp.Data.DeliveryID)
	assert.Equal(t, "Votre demande de réservation a été envoyée. Nous vous confirmerons rapidement.", resp.Message)

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "marie@example.com", dispatcher.calls[0].Email)
	assert.Equal(t, "4", dispatcher.calls[0].Guests)
}

func TestSubmitMissingFieldsRejectedBeforeDispatch(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	payload := validPayload()
	payload["email"] = ""

	rec, resp := submit(t, engine, "/api/reservations", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Veuillez remplir tous les champs obligatoires", resp.Error.Message)
	assert.Empty(t, dispatcher.calls, "the dispatch boundary must not be reached")
}

func TestSubmitMissingFieldsLocalizedMessage(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	payload := validPayload()
	payload["name"] = ""

	_, resp := submit(t, engine, "/api/reservations?lang=en", payload)

	require.NotNil(t, resp.Error)
	assert.Equal(t, "Please fill in all required fields", resp.Error.Message)
}

func TestSubmitInvalidEmailRejectedBeforeDispatch(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	for _, bad := range []string{"a@b", "abc", "@b.com"} {
		payload := validPayload()
		payload["email"] = bad

		rec, resp := submit(t, engine, "/api/reservations", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "email %q", bad)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Veuillez saisir une adresse email valide", resp.Error.Message)
	}

	assert.Empty(t, dispatcher.calls)
}

func TestSubmitMalformedJSON(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dispatcher.calls)
}

func TestSubmitDeliveryFailure(t *testing.T) {
	dispatcher := &mockDispatcher{
		dispatchFn: func(context.Context, domain.Request) (*appReservation.Result, error) {
			return nil, errors.NewDeliveryError("Failed to send email")
		},
	}
	engine := setupRouter(dispatcher)

	rec, resp := submit(t, engine, "/api/reservations", validPayload())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "L'envoi de votre réservation a échoué. Veuillez réessayer plus tard.", resp.Error.Message)
}

func TestSubmitUnexpectedFailure(t *testing.T) {
	dispatcher := &mockDispatcher{
		dispatchFn: func(context.Context, domain.Request) (*appReservation.Result, error) {
			return nil, errors.NewInternalError("Unexpected error")
		},
	}
	engine := setupRouter(dispatcher)

	rec, resp := submit(t, engine, "/api/reservations?lang=en", validPayload())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "An unexpected error occurred. Please try again later.", resp.Error.Message)
}

func TestSubmitGuestsDefault(t *testing.T) {
	dispatcher := &mockDispatcher{}
	engine := setupRouter(dispatcher)

	payload := validPayload()
	delete(payload, "guests")

	_, resp := submit(t, engine, "/api/reservations", payload)

	assert.True(t, resp.Success)
	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "2", dispatcher.calls[0].Guests)
}
