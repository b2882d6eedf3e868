package lead

import (
	"fmt"
	"time"

	"github.com/queensauto/brakes-booking/internal/attribution"
	"github.com/queensauto/brakes-booking/internal/booking"
	"github.com/queensauto/brakes-booking/internal/i18n"
)

// FallbackCouponCode is shown whenever the webhook doesn't return one.
const FallbackCouponCode = "276KJO"

// LeadType tags every submission from this funnel.
const LeadType = "generate_lead"

// WebhookPayload is the lead record POSTed to the n8n automation. Field
// names and null-vs-empty-string behavior match what the live consumer is
// keyed to; don't normalize them.
type WebhookPayload struct {
	FirstName       string  `json:"First Name"`
	LastName        string  `json:"Last Name"`
	FullName        string  `json:"Full Name"`
	Phone           string  `json:"Phone"`
	Email           string  `json:"Email"`
	CarMake         string  `json:"Car Make"`
	CarModel        string  `json:"Car Model"`
	CarYear         string  `json:"Car Year"`
	Vehicle         string  `json:"Vehicle"`
	AppointmentDate string  `json:"Appointment Date"`
	AppointmentTime string  `json:"Appointment Time"`
	UTMSource       *string `json:"UTM Source"`
	UTMMedium       *string `json:"UTM Medium"`
	UTMCampaign     *string `json:"UTM Campaign"`
	UTMTerm         *string `json:"UTM Term"`
	UTMContent      *string `json:"UTM Content"`
	GCLID           *string `json:"GCLID"`
	FBCLID          *string `json:"FBCLID"`
	MSCLKID         string  `json:"MSCLKID"`
	GAClientID      string  `json:"GA Client ID"`
	FBC             *string `json:"FBC"`
	Referrer        *string `json:"Referrer"`
	PageVariant     string  `json:"Page Variant"`
	UserLanguage    string  `json:"User Language"`
	EventID         string  `json:"Event ID"`
	LeadType        string  `json:"Lead Type"`
}

// WebhookResponse is what the automation may answer with. Both fields are
// optional; absence is handled, not an error.
type WebhookResponse struct {
	CouponCode string `json:"couponCode"`
	AudioURL   string `json:"audioUrl"`
}

// BookingResult is handed to the confirmation view after a submission
// settles. It exists for every submission, delivered or not.
type BookingResult struct {
	Name       string `json:"name"`
	Vehicle    string `json:"vehicle"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CouponCode string `json:"couponCode"`
	AudioURL   string `json:"audioUrl,omitempty"`
}

// Lead is the archived submission attempt.
type Lead struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Vehicle    string    `json:"vehicle"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	EventID    string    `json:"event_id"`
	Outcome    string    `json:"outcome"`
	CouponCode string    `json:"coupon_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// NormalizePhone strips formatting and prefixes the shop's country code.
func NormalizePhone(phone, countryCode string) string {
	return countryCode + booking.DigitsOnly(phone)
}

// NewEventID builds the time-based event identifier shared by the
// analytics event and the webhook payload.
func NewEventID(now time.Time) string {
	return fmt.Sprintf("gen_%d", now.UnixMilli())
}

// BuildWebhookPayload assembles the lead record from a completed draft.
func BuildWebhookPayload(d booking.Draft, phone string, attr attribution.Attribution, pageVariant string, lang i18n.Lang, eventID string) WebhookPayload {
	return WebhookPayload{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		FullName:        d.FullName(),
		Phone:           phone,
		Email:           d.Email,
		CarMake:         d.CarMake,
		CarModel:        d.CarModel,
		CarYear:         d.CarYear,
		Vehicle:         d.Vehicle(),
		AppointmentDate: d.Date,
		AppointmentTime: d.Time,
		UTMSource:       attr.UTMSource,
		UTMMedium:       attr.UTMMedium,
		UTMCampaign:     attr.UTMCampaign,
		UTMTerm:         attr.UTMTerm,
		UTMContent:      attr.UTMContent,
		GCLID:           attr.GCLID,
		FBCLID:          attr.FBCLID,
		MSCLKID:         attr.MSCLKID,
		GAClientID:      attr.GAClientID,
		FBC:             attr.FBC,
		Referrer:        attr.Referrer,
		PageVariant:     pageVariant,
		UserLanguage:    string(lang),
		EventID:         eventID,
		LeadType:        LeadType,
	}
}

// AudioSessionKey is where the personalized audio URL is mirrored for a
// visitor session, so a reload of the confirmation page can recover it.
func AudioSessionKey(sessionID string) string {
	return "audio:" + sessionID
}
