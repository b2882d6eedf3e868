package availability

import (
	"regexp"
	"strconv"
	"time"
)

var slotLabelRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// parseSlotLabel converts a 12-hour slot label into 24-hour clock parts.
// Labels that don't match the canonical pattern are unavailable.
func parseSlotLabel(label string) (hour, minute int, ok bool) {
	m := slotLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	if m[3] == "PM" && hour < 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// AvailableSlots returns the offerable slot labels for a date. Future
// dates get the full base set for their weekday; today is filtered down to
// slots strictly after now. An empty result for today means the day is
// sold through and the caller should present a "no slots left" message.
func (p *Policy) AvailableSlots(date string, now time.Time) []string {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil
	}

	base := p.baseSlots(d)
	if date != now.Format(DateLayout) {
		out := make([]string, len(base))
		copy(out, base)
		return out
	}

	var out []string
	for _, label := range base {
		hour, minute, ok := parseSlotLabel(label)
		if !ok {
			continue
		}
		slot := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if slot.After(now) {
			out = append(out, label)
		}
	}
	return out
}
