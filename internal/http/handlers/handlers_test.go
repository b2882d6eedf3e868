package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queensauto/brakes-booking/internal/availability"
	"github.com/queensauto/brakes-booking/internal/confirmation"
	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/lead"
)

func fixedNow() time.Time {
	// Thursday
	return time.Date(2025, time.June, 5, 9, 30, 0, 0, time.UTC)
}

func TestGetMonth(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?year=2025&month=6", nil)
	rec := httptest.NewRecorder()
	h.GetMonth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var grid availability.Grid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	assert.Equal(t, 2025, grid.Year)
	assert.Len(t, grid.Days, 30)
	// June 2025 starts on a Sunday
	assert.Equal(t, 0, grid.LeadingBlanks)
}

func TestGetMonthDefaultsToCurrent(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()
	h.GetMonth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var grid availability.Grid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, time.June, grid.Month)
}

func TestGetMonthRejectsBadMonth(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?year=2025&month=13", nil)
	rec := httptest.NewRecorder()
	h.GetMonth(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSlotsSaturday(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2025-06-07", nil)
	rec := httptest.NewRecorder()
	h.GetSlots(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Selectable)
	assert.Len(t, resp.Slots, 9)
	assert.Equal(t, "08:00 AM", resp.Slots[0])
}

func TestGetSlotsPastDate(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2025-06-01", nil)
	rec := httptest.NewRecorder()
	h.GetSlots(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Selectable)
	assert.Empty(t, resp.Slots)
}

func TestGetSlotsRejectsBadInput(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, fixedNow)

	for _, target := range []string{
		"/api/v1/availability/slots",
		"/api/v1/availability/slots?date=June-7",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.GetSlots(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func validBookingBody() string {
	return `{
		"firstName": "Maria",
		"lastName": "Lopez",
		"email": "maria@example.com",
		"phone": "(555) 123-4567",
		"carYear": "2019",
		"carMake": "Honda",
		"carModel": "Civic",
		"date": "2025-06-07",
		"time": "10:00 AM",
		"pageUrl": "https://queensautoservices.com/?utm_source=google",
		"language": "en"
	}`
}

func newBookingHandler(webhookURL string) *BookingHandler {
	pipeline := lead.NewPipeline(lead.PipelineOptions{
		WebhookURL: webhookURL,
		Now:        fixedNow,
	})
	return NewBookingHandler(nil, pipeline, nil, nil, nil, fixedNow)
}

func TestCreateBooking(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"couponCode":"SAVE50"}`))
	}))
	defer webhook.Close()

	h := newBookingHandler(webhook.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBookingBody()))
	req.Header.Set(SessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result lead.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Maria", result.Name)
	assert.Equal(t, "2019 Honda Civic", result.Vehicle)
	assert.Equal(t, "SAVE50", result.CouponCode)
}

func TestCreateBookingWebhookDownStillConfirms(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	webhook.Close()

	h := newBookingHandler(webhook.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBookingBody()))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result lead.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, lead.FallbackCouponCode, result.CouponCode)
}

func TestCreateBookingValidationErrors(t *testing.T) {
	h := newBookingHandler("http://unused.invalid")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, field := range []string{"firstName", "lastName", "email", "phone", "carYear", "carMake", "carModel", "date", "time"} {
		assert.Contains(t, body.Errors, field)
	}
}

func TestCreateBookingRejectsUnofferedSlot(t *testing.T) {
	h := newBookingHandler("http://unused.invalid")
	// 02:00 PM is a weekday-only slot; 2025-06-07 is a Saturday
	body := strings.Replace(validBookingBody(), "10:00 AM", "02:00 PM", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "time")
	assert.NotContains(t, resp.Errors, "date")
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	h := newBookingHandler("http://unused.invalid")
	body := strings.Replace(validBookingBody(), "2025-06-07", "2025-06-01", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "date")
}

func TestCreateBookingRejectsBadJSON(t *testing.T) {
	h := newBookingHandler("http://unused.invalid")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmationFromArchive(t *testing.T) {
	repo := lead.NewInMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), &lead.Lead{
		FirstName:  "Maria",
		Vehicle:    "2019 Honda Civic",
		Date:       "2025-06-07",
		Time:       "10:00 AM",
		EventID:    "gen_1749115800000",
		Outcome:    lead.OutcomeDelivered,
		CouponCode: "SAVE50",
	}))

	h := NewConfirmationHandler(nil, repo, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/confirmation?event_id=gen_1749115800000", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view confirmation.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Maria", view.Name)
	assert.Equal(t, "2025-06-07 at 10:00 AM", view.Appointment)
	assert.Equal(t, "SAVE50", view.CouponCode)
}

func TestConfirmationUnknownEventDegrades(t *testing.T) {
	h := NewConfirmationHandler(nil, lead.NewInMemoryRepository(), nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/confirmation?event_id=gen_0", nil)
	req.Header.Set("Accept-Language", "es-MX")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view confirmation.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Estimado Cliente", view.Name)
	assert.Equal(t, lead.FallbackCouponCode, view.CouponCode)
	assert.False(t, view.HasAudio)
}

func TestLanguagePreferenceRoundTrip(t *testing.T) {
	prefs := i18n.NewPreferences(nil)
	h := NewPreferencesHandler(prefs, nil)

	put := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/language", strings.NewReader(`{"language":"es"}`))
	put.Header.Set(SessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	h.SetLanguage(rec, put)
	require.Equal(t, http.StatusOK, rec.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/language", nil)
	get.Header.Set(SessionHeader, "sess-1")
	get.Header.Set("Accept-Language", "en-US")
	rec = httptest.NewRecorder()
	h.GetLanguage(rec, get)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "es", resp["language"])
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	h := NewPreferencesHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/language", strings.NewReader(`{"language":"fr"}`))
	req.Header.Set(SessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	h.SetLanguage(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	noSession := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/language", strings.NewReader(`{"language":"es"}`))
	rec = httptest.NewRecorder()
	h.SetLanguage(rec, noSession)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
