package i18n

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/queensauto/brakes-booking/internal/session"
)

// preferenceTTL keeps the language choice across visits without growing
// the store forever.
const preferenceTTL = 365 * 24 * time.Hour

// Preferences persists each visitor's chosen display language.
type Preferences struct {
	store session.Store
}

// NewPreferences wraps a session store. A nil store yields an in-memory
// fallback.
func NewPreferences(store session.Store) *Preferences {
	if store == nil {
		store = session.NewMemoryStore()
	}
	return &Preferences{store: store}
}

// Language returns the stored preference for the visitor, or detects one
// from the browser tag when nothing valid is stored.
func (p *Preferences) Language(ctx context.Context, visitorID, browserTag string) Lang {
	v, err := p.store.Get(ctx, prefKey(visitorID))
	if err == nil && Valid(Lang(v)) {
		return Lang(v)
	}
	return Detect(browserTag)
}

// SetLanguage stores the visitor's explicit choice.
func (p *Preferences) SetLanguage(ctx context.Context, visitorID string, lang Lang) error {
	if !Valid(lang) {
		return errors.New("unsupported language")
	}
	if err := p.store.Set(ctx, prefKey(visitorID), string(lang), preferenceTTL); err != nil {
		return fmt.Errorf("persist language preference: %w", err)
	}
	return nil
}

func prefKey(visitorID string) string {
	return "lang:" + visitorID
}
