package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/queensauto/brakes-booking/internal/analytics"
	"github.com/queensauto/brakes-booking/internal/attribution"
	"github.com/queensauto/brakes-booking/internal/booking"
	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/observability/metrics"
	"github.com/queensauto/brakes-booking/internal/session"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// Outcome values recorded per submission.
const (
	OutcomeDelivered = "delivered"
	OutcomeDegraded  = "degraded"
	OutcomeFailed    = "failed"
)

const sessionAudioTTL = time.Hour

// Pipeline turns a completed booking draft into a webhook delivery, an
// analytics event, an archived lead, and a confirmation result. Submit
// always produces exactly one BookingResult; delivery problems degrade
// the result instead of failing the booking.
type Pipeline struct {
	webhookURL  string
	pageVariant string
	countryCode string
	client      *http.Client
	sink        analytics.Sink
	sessions    session.Store
	repo        Repository
	metrics     *metrics.BookingMetrics
	logger      *logging.Logger
	ga          attribution.ClientIDProvider
	now         func() time.Time
}

// PipelineOptions carries the pipeline's collaborators. Zero-value fields
// get working defaults, so tests can supply only what they assert on.
type PipelineOptions struct {
	WebhookURL  string
	PageVariant string
	CountryCode string
	Client      *http.Client
	Sink        analytics.Sink
	Sessions    session.Store
	Repo        Repository
	Metrics     *metrics.BookingMetrics
	Logger      *logging.Logger
	GA          attribution.ClientIDProvider
	Now         func() time.Time
}

func NewPipeline(opts PipelineOptions) *Pipeline {
	p := &Pipeline{
		webhookURL:  opts.WebhookURL,
		pageVariant: opts.PageVariant,
		countryCode: opts.CountryCode,
		client:      opts.Client,
		sink:        opts.Sink,
		sessions:    opts.Sessions,
		repo:        opts.Repo,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
		ga:          opts.GA,
		now:         opts.Now,
	}
	if p.countryCode == "" {
		p.countryCode = "+1"
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: 15 * time.Second}
	}
	if p.sink == nil {
		p.sink = analytics.NopSink{}
	}
	if p.sessions == nil {
		p.sessions = session.NewMemoryStore()
	}
	if p.repo == nil {
		p.repo = NewInMemoryRepository()
	}
	if p.logger == nil {
		p.logger = logging.Default()
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// SubmitRequest is a completed two-step draft plus the page context the
// visitor arrived with.
type SubmitRequest struct {
	Draft     booking.Draft
	PageURL   string
	Referrer  string
	Language  i18n.Lang
	SessionID string
}

// Submit runs the full submission. It never returns an error: the caller
// always gets a BookingResult to confirm with, and failures surface in
// logs and metrics instead.
func (p *Pipeline) Submit(ctx context.Context, req SubmitRequest) BookingResult {
	draft := req.Draft
	phone := NormalizePhone(draft.Phone, p.countryCode)
	attr := attribution.Collect(req.PageURL, req.Referrer, p.ga)
	eventID := NewEventID(p.now())

	p.sink.Push(analytics.LeadEvent{
		Event:   analytics.EventGenerateLead,
		EventID: eventID,
		UserData: analytics.UserData{
			Email:       draft.Email,
			PhoneNumber: phone,
			Address: analytics.Address{
				FirstName: draft.FirstName,
				LastName:  draft.LastName,
			},
		},
		LeadType:     LeadType,
		PageVariant:  p.pageVariant,
		UserLanguage: string(req.Language),
	})

	payload := BuildWebhookPayload(draft, phone, attr, p.pageVariant, req.Language, eventID)
	resp, outcome := p.deliver(ctx, payload)

	coupon := resp.CouponCode
	if coupon == "" {
		coupon = FallbackCouponCode
	}

	if resp.AudioURL != "" && req.SessionID != "" {
		if err := p.sessions.Set(ctx, AudioSessionKey(req.SessionID), resp.AudioURL, sessionAudioTTL); err != nil {
			p.logger.Warn("failed to store audio url", "error", err, "event_id", eventID)
		}
	}

	lead := &Lead{
		FirstName:  draft.FirstName,
		LastName:   draft.LastName,
		Email:      draft.Email,
		Phone:      phone,
		Vehicle:    draft.Vehicle(),
		Date:       draft.Date,
		Time:       draft.Time,
		EventID:    eventID,
		Outcome:    outcome,
		CouponCode: coupon,
		CreatedAt:  p.now().UTC(),
	}
	if err := p.repo.Create(ctx, lead); err != nil {
		p.logger.Error("failed to archive lead", "error", err, "event_id", eventID)
	}

	p.metrics.ObserveSubmission(outcome)

	return BookingResult{
		Name:       draft.FirstName,
		Vehicle:    draft.Vehicle(),
		Date:       draft.Date,
		Time:       draft.Time,
		CouponCode: coupon,
		AudioURL:   resp.AudioURL,
	}
}

// deliver POSTs the payload and decodes whatever came back. A body that
// isn't valid JSON is treated as an empty response, not a failure.
func (p *Pipeline) deliver(ctx context.Context, payload WebhookPayload) (WebhookResponse, string) {
	var out WebhookResponse

	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to encode webhook payload", "error", err)
		return out, OutcomeFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(body))
	if err != nil {
		p.logger.Error("failed to build webhook request", "error", err)
		return out, OutcomeFailed
	}
	req.Header.Set("Content-Type", "application/json")

	start := p.now()
	resp, err := p.client.Do(req)
	p.metrics.ObserveWebhookLatency(time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("webhook delivery failed", "error", err, "url", p.webhookURL)
		return out, OutcomeFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		p.logger.Warn("failed to read webhook response", "error", err)
		return out, OutcomeDegraded
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		p.logger.Warn("webhook response is not json", "status", resp.StatusCode)
		return WebhookResponse{}, OutcomeDegraded
	}
	if out.CouponCode == "" {
		return out, OutcomeDegraded
	}
	return out, OutcomeDelivered
}
