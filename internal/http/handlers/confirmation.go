package handlers

import (
	"errors"
	"net/http"

	"github.com/queensauto/brakes-booking/internal/confirmation"
	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/lead"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// ConfirmationHandler rehydrates the thank-you view, typically after a
// reload where the in-page booking result was lost.
type ConfirmationHandler struct {
	page   *confirmation.Page
	repo   lead.Repository
	prefs  *i18n.Preferences
	logger *logging.Logger
}

func NewConfirmationHandler(page *confirmation.Page, repo lead.Repository, prefs *i18n.Preferences, logger *logging.Logger) *ConfirmationHandler {
	if page == nil {
		page = confirmation.NewPage(nil, nil, nil)
	}
	if prefs == nil {
		prefs = i18n.NewPreferences(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ConfirmationHandler{page: page, repo: repo, prefs: prefs, logger: logger}
}

// Get returns the confirmation view.
// GET /api/v1/confirmation?event_id=gen_...
//
// An unknown or missing event id still renders: the view degrades to
// localized placeholders instead of a dead end.
func (h *ConfirmationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	lang := h.prefs.Language(r.Context(), sessionID, r.Header.Get("Accept-Language"))

	var result *lead.BookingResult
	if eventID := r.URL.Query().Get("event_id"); eventID != "" && h.repo != nil {
		archived, err := h.repo.GetByEventID(r.Context(), eventID)
		switch {
		case err == nil:
			result = &lead.BookingResult{
				Name:       archived.FirstName,
				Vehicle:    archived.Vehicle,
				Date:       archived.Date,
				Time:       archived.Time,
				CouponCode: archived.CouponCode,
			}
		case errors.Is(err, lead.ErrNotFound):
		default:
			h.logger.Error("failed to load archived lead", "event_id", eventID, "error", err)
		}
	}

	view := h.page.Hydrate(r.Context(), result, sessionID, lang)
	writeJSON(w, http.StatusOK, view)
}
