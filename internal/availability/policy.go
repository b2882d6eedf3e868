// Package availability computes which appointment days and time slots the
// shop can offer. Days are excluded when they are in the past, match a
// recurring month-day holiday, or are explicitly blocked. Saturdays run a
// reduced morning-only slot list. Sundays are not modeled separately: they
// fall through to the full weekday list and are only excluded by the
// past-date and holiday rules.
package availability

import "time"

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// Policy describes the shop schedule: the slot tables per day kind and the
// dates that are never bookable.
type Policy struct {
	// WeekdaySlots are the canonical slot labels for a normal day, in
	// display order.
	WeekdaySlots []string
	// SaturdaySlots is the reduced Saturday list.
	SaturdaySlots []string
	// FixedHolidays are recurring closures keyed by "MM-DD".
	FixedHolidays map[string]struct{}
	// BlockedDates are one-off closures keyed by "YYYY-MM-DD".
	BlockedDates map[string]struct{}
}

// DefaultPolicy returns the schedule the shop runs today.
func DefaultPolicy() *Policy {
	return &Policy{
		WeekdaySlots: []string{
			"08:00 AM", "08:30 AM", "09:00 AM", "09:30 AM", "10:00 AM",
			"10:30 AM", "11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
			"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
		},
		SaturdaySlots: []string{
			"08:00 AM", "08:30 AM", "09:00 AM", "09:30 AM", "10:00 AM",
			"10:30 AM", "11:00 AM", "11:30 AM", "12:00 PM",
		},
		FixedHolidays: map[string]struct{}{
			"01-01": {},
			"07-04": {},
			"12-25": {},
		},
		BlockedDates: map[string]struct{}{
			"2025-05-26": {}, // Memorial Day
			"2025-11-27": {}, // Thanksgiving
		},
	}
}

// IsDateSelectable reports whether the given date can be booked, judged
// against the day containing now. Time of day is ignored: today is
// selectable, yesterday is not.
func (p *Policy) IsDateSelectable(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return false
	}

	if _, ok := p.FixedHolidays[d.Format("01-02")]; ok {
		return false
	}
	if _, ok := p.BlockedDates[date]; ok {
		return false
	}
	return true
}

func (p *Policy) baseSlots(d time.Time) []string {
	if d.Weekday() == time.Saturday {
		return p.SaturdaySlots
	}
	return p.WeekdaySlots
}
