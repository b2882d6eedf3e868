// Package analytics models the page-level analytics event queue as an
// injected collaborator, so the submission pipeline can push lead events
// without assuming a browser data layer exists.
package analytics

// EventGenerateLead names the lead event as the tag manager expects it.
const EventGenerateLead = "generate_lead"

// LeadEvent is the generate-lead event pushed when a booking is
// submitted, shaped like the tag-manager data layer object the marketing
// stack consumes.
type LeadEvent struct {
	Event        string   `json:"event"`
	EventID      string   `json:"event_id"`
	UserData     UserData `json:"user_data"`
	LeadType     string   `json:"lead_type"`
	PageVariant  string   `json:"page_variant"`
	UserLanguage string   `json:"user_language"`
}

// UserData carries unhashed contact fields on the lead event.
type UserData struct {
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Address     Address `json:"address"`
}

// Address holds the name fields the event nests under address.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Sink receives lead events. Delivery is fire-and-forget: implementations
// must not fail the caller.
type Sink interface {
	Push(event LeadEvent)
}

// NopSink drops events; the default when no queue is wired.
type NopSink struct{}

// Push discards the event.
func (NopSink) Push(LeadEvent) {}

// RecordingSink retains pushed events, for tests and diagnostics.
type RecordingSink struct {
	Events []LeadEvent
}

// Push appends the event.
func (s *RecordingSink) Push(e LeadEvent) {
	s.Events = append(s.Events, e)
}
