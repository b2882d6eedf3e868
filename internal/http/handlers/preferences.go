package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// PreferencesHandler persists per-visitor settings, currently just the
// display language.
type PreferencesHandler struct {
	prefs  *i18n.Preferences
	logger *logging.Logger
}

func NewPreferencesHandler(prefs *i18n.Preferences, logger *logging.Logger) *PreferencesHandler {
	if prefs == nil {
		prefs = i18n.NewPreferences(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PreferencesHandler{prefs: prefs, logger: logger}
}

// LanguageRequest is the language toggle payload.
type LanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage stores the visitor's language choice.
// PUT /api/v1/preferences/language
func (h *PreferencesHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		jsonError(w, "missing session id", http.StatusBadRequest)
		return
	}

	var req LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	lang := i18n.Lang(req.Language)
	if err := h.prefs.SetLanguage(r.Context(), sessionID, lang); err != nil {
		jsonError(w, "unsupported language", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": string(lang)})
}

// GetLanguage resolves the visitor's effective language: the stored
// choice when present, otherwise detected from Accept-Language.
// GET /api/v1/preferences/language
func (h *PreferencesHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	lang := h.prefs.Language(r.Context(), sessionID, r.Header.Get("Accept-Language"))
	writeJSON(w, http.StatusOK, map[string]string{"language": string(lang)})
}
