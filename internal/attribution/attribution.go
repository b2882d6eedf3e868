// Package attribution harvests marketing parameters from the page a lead
// submitted from: UTM fields, ad click identifiers and the referrer.
package attribution

import "net/url"

// Attribution mirrors the fields the lead webhook consumer expects. Most
// absent fields serialize as null; MSCLKID and GAClientID default to the
// empty string instead, matching the shapes the downstream automation is
// keyed to.
type Attribution struct {
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	UTMTerm     *string
	UTMContent  *string
	GCLID       *string
	FBCLID      *string
	MSCLKID     string
	FBC         *string
	Referrer    *string
	GAClientID  string
}

// ClientIDProvider supplies the legacy analytics client id when the page
// exposes one. Absence is tolerated.
type ClientIDProvider interface {
	ClientID() string
}

// Collect parses attribution out of the submitted page URL and referrer.
// A nil or failing provider leaves GAClientID empty.
func Collect(pageURL, referrer string, ga ClientIDProvider) Attribution {
	var q url.Values
	if u, err := url.Parse(pageURL); err == nil {
		q = u.Query()
	}

	a := Attribution{
		UTMSource:   optParam(q, "utm_source"),
		UTMMedium:   optParam(q, "utm_medium"),
		UTMCampaign: optParam(q, "utm_campaign"),
		UTMTerm:     optParam(q, "utm_term"),
		UTMContent:  optParam(q, "utm_content"),
		GCLID:       optParam(q, "gclid"),
		FBCLID:      optParam(q, "fbclid"),
		MSCLKID:     q.Get("msclkid"),
		FBC:         optParam(q, "fbc"),
	}
	if referrer != "" {
		a.Referrer = &referrer
	}
	if ga != nil {
		a.GAClientID = ga.ClientID()
	}
	return a
}

// optParam returns nil for absent or empty query parameters so they
// serialize as JSON null.
func optParam(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}
