// Package confirmation renders the post-booking thank-you state: the
// visitor's name, vehicle and appointment, the coupon code, and the
// optional personalized audio message.
package confirmation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/lead"
	"github.com/queensauto/brakes-booking/internal/session"
)

// Effect fires the one-shot celebration when the confirmation first
// renders.
type Effect interface {
	Celebrate()
}

// Clipboard copies the coupon code on request.
type Clipboard interface {
	WriteText(text string) error
}

var ErrNoClipboard = errors.New("no clipboard available")

// View is the hydrated confirmation. Every field is display-ready: a
// missing booking result degrades to localized placeholders instead of
// an error page.
type View struct {
	Name        string `json:"name"`
	Vehicle     string `json:"vehicle"`
	Appointment string `json:"appointment"`
	CouponCode  string `json:"couponCode"`
	AudioURL    string `json:"audioUrl,omitempty"`
	HasAudio    bool   `json:"hasAudio"`
}

// Page hydrates confirmation views. The celebration fires at most once
// per page instance, no matter how many times the view re-renders.
type Page struct {
	sessions  session.Store
	effect    Effect
	clipboard Clipboard
	once      sync.Once
}

func NewPage(sessions session.Store, effect Effect, clipboard Clipboard) *Page {
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}
	return &Page{sessions: sessions, effect: effect, clipboard: clipboard}
}

// Hydrate builds the view for a booking result. A nil result still
// produces a usable view with placeholder name, vehicle and appointment;
// the audio URL falls back to the visitor's session when the result
// doesn't carry one.
func (p *Page) Hydrate(ctx context.Context, result *lead.BookingResult, sessionID string, lang i18n.Lang) View {
	p.once.Do(func() {
		if p.effect != nil {
			p.effect.Celebrate()
		}
	})

	v := View{
		Name:        i18n.T(lang, i18n.KeyFallbackCustomer),
		Vehicle:     i18n.T(lang, i18n.KeyFallbackVehicle),
		Appointment: i18n.T(lang, i18n.KeyPendingConfirmation),
		CouponCode:  lead.FallbackCouponCode,
	}
	if result != nil {
		if result.Name != "" {
			v.Name = result.Name
		}
		if result.Vehicle != "" {
			v.Vehicle = result.Vehicle
		}
		if result.Date != "" && result.Time != "" {
			v.Appointment = fmt.Sprintf("%s at %s", result.Date, result.Time)
		}
		if result.CouponCode != "" {
			v.CouponCode = result.CouponCode
		}
		v.AudioURL = result.AudioURL
	}

	if v.AudioURL == "" && sessionID != "" {
		if stored, err := p.sessions.Get(ctx, lead.AudioSessionKey(sessionID)); err == nil {
			v.AudioURL = stored
		}
	}
	v.HasAudio = v.AudioURL != ""
	return v
}

// CopyCoupon puts the view's coupon code on the clipboard.
func (p *Page) CopyCoupon(v View) error {
	if p.clipboard == nil {
		return ErrNoClipboard
	}
	return p.clipboard.WriteText(v.CouponCode)
}
