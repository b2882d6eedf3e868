package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/queensauto/brakes-booking/internal/availability"
	"github.com/queensauto/brakes-booking/internal/booking"
	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/lead"
	"github.com/queensauto/brakes-booking/internal/observability/metrics"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// SessionHeader carries the visitor's session identifier across requests.
const SessionHeader = "X-Session-ID"

// BookingHandler accepts completed drafts and runs them through the
// submission pipeline.
type BookingHandler struct {
	policy   *availability.Policy
	pipeline *lead.Pipeline
	prefs    *i18n.Preferences
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
	now      func() time.Time
}

func NewBookingHandler(policy *availability.Policy, pipeline *lead.Pipeline, prefs *i18n.Preferences, m *metrics.BookingMetrics, logger *logging.Logger, now func() time.Time) *BookingHandler {
	if policy == nil {
		policy = availability.DefaultPolicy()
	}
	if prefs == nil {
		prefs = i18n.NewPreferences(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &BookingHandler{
		policy:   policy,
		pipeline: pipeline,
		prefs:    prefs,
		metrics:  m,
		logger:   logger,
		now:      now,
	}
}

// BookingRequest is the submitted two-step form plus the page context
// the visitor arrived with.
type BookingRequest struct {
	booking.Draft
	PageURL  string `json:"pageUrl"`
	Referrer string `json:"referrer"`
	Language string `json:"language"`
}

// Create validates and submits a booking.
// POST /api/v1/bookings
//
// Validation failures come back as 422 with a per-field error map. A
// valid booking always returns 200 with a confirmation result, even
// when the downstream webhook is unreachable.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	draft := req.Draft
	if draft.Symptom == "" {
		draft.Symptom = booking.DefaultSymptom
	}

	now := h.now()
	errs := draft.ValidateContact()
	if errs == nil {
		errs = booking.ValidationErrors{}
	}
	if draft.Date == "" {
		errs[booking.FieldDate] = "Select an appointment date"
	} else if !h.policy.IsDateSelectable(draft.Date, now) {
		errs[booking.FieldDate] = "That date is not available"
	}
	if draft.Time == "" {
		errs[booking.FieldTime] = "Select an appointment time"
	} else if draft.Date != "" && !slotOffered(h.policy, draft.Date, draft.Time, now) {
		errs[booking.FieldTime] = "That time is not available"
	}

	if len(errs) > 0 {
		for field := range errs {
			h.metrics.ObserveValidationFailure(field)
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	sessionID := r.Header.Get(SessionHeader)
	lang := i18n.Lang(req.Language)
	if !i18n.Valid(lang) {
		lang = h.prefs.Language(r.Context(), sessionID, r.Header.Get("Accept-Language"))
	}

	result := h.pipeline.Submit(r.Context(), lead.SubmitRequest{
		Draft:     draft,
		PageURL:   req.PageURL,
		Referrer:  req.Referrer,
		Language:  lang,
		SessionID: sessionID,
	})
	writeJSON(w, http.StatusOK, result)
}

func slotOffered(p *availability.Policy, date, slot string, now time.Time) bool {
	for _, s := range p.AvailableSlots(date, now) {
		if s == slot {
			return true
		}
	}
	return false
}
