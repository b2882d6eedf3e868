package availability

import (
	"fmt"
	"time"
)

// DaysInMonth returns the day count of the given month, leap years
// included.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first of the month
// (Sunday == 0), used to left-pad the calendar grid.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddMonths moves a year/month pair by delta months, rolling year
// boundaries in either direction.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// Day is one selectable cell of the month grid.
type Day struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

// Grid is the calendar for one displayed month: LeadingBlanks empty cells
// followed by one cell per day.
type Grid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          []Day      `json:"days"`
}

// MonthGrid builds the grid for a month, marking each day's selectability
// against now.
func (p *Policy) MonthGrid(year int, month time.Month, now time.Time) Grid {
	g := Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(FirstWeekday(year, month)),
	}
	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		g.Days = append(g.Days, Day{
			Day:        day,
			Date:       date,
			Selectable: p.IsDateSelectable(date, now),
		})
	}
	return g
}
