package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/queensauto/brakes-booking/internal/availability"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// AvailabilityHandler serves the booking calendar: month grids and
// per-date time slots.
type AvailabilityHandler struct {
	policy *availability.Policy
	logger *logging.Logger
	now    func() time.Time
}

func NewAvailabilityHandler(policy *availability.Policy, logger *logging.Logger, now func() time.Time) *AvailabilityHandler {
	if policy == nil {
		policy = availability.DefaultPolicy()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &AvailabilityHandler{policy: policy, logger: logger, now: now}
}

// GetMonth returns the calendar grid for a month.
// GET /api/v1/availability?year=2025&month=6
// Missing params default to the current month.
func (h *AvailabilityHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year := now.Year()
	month := int(now.Month())

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			jsonError(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = parsed
	}

	grid := h.policy.MonthGrid(year, time.Month(month), now)
	writeJSON(w, http.StatusOK, grid)
}

// SlotsResponse lists the offerable times for one date.
type SlotsResponse struct {
	Date       string   `json:"date"`
	Selectable bool     `json:"selectable"`
	Slots      []string `json:"slots"`
}

// GetSlots returns the available time slots for a date.
// GET /api/v1/availability/slots?date=2025-06-07
func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		jsonError(w, "missing date", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse(availability.DateLayout, date); err != nil {
		jsonError(w, "invalid date", http.StatusBadRequest)
		return
	}

	now := h.now()
	resp := SlotsResponse{
		Date:       date,
		Selectable: h.policy.IsDateSelectable(date, now),
		Slots:      []string{},
	}
	if resp.Selectable {
		if slots := h.policy.AvailableSlots(date, now); slots != nil {
			resp.Slots = slots
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
