package booking

import (
	"time"

	"github.com/queensauto/brakes-booking/internal/availability"
)

// Step identifies the wizard page being shown.
type Step int

const (
	// StepContact collects contact and vehicle details.
	StepContact Step = 1
	// StepSchedule collects the appointment date and time.
	StepSchedule Step = 2
)

// Controller owns one visitor's trip through the booking wizard: the
// draft, its validation errors, the displayed calendar month and the
// submission busy flag.
type Controller struct {
	policy *availability.Policy
	now    func() time.Time

	draft      Draft
	errors     ValidationErrors
	step       Step
	submitting bool

	calYear  int
	calMonth time.Month
}

// NewController seeds a controller the way the form mounts: the schedule
// date defaults to today, bumped to Monday when today is Sunday, and the
// calendar opens on that date's month.
func NewController(policy *availability.Policy, now func() time.Time) *Controller {
	if policy == nil {
		policy = availability.DefaultPolicy()
	}
	if now == nil {
		now = time.Now
	}

	c := &Controller{
		policy: policy,
		now:    now,
		step:   StepContact,
		errors: ValidationErrors{},
		draft:  Draft{Symptom: DefaultSymptom},
	}

	start := now()
	if start.Weekday() == time.Sunday {
		start = start.AddDate(0, 0, 1)
	}
	c.draft.Date = start.Format(availability.DateLayout)
	c.calYear, c.calMonth = start.Year(), start.Month()
	return c
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft { return c.draft }

// Step returns the wizard page currently shown.
func (c *Controller) Step() Step { return c.step }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting }

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() ValidationErrors {
	out := ValidationErrors{}
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetField updates one step-one field and clears that field's error; full
// re-validation waits for the next Next attempt.
func (c *Controller) SetField(field, value string) error {
	switch field {
	case FieldFirstName:
		c.draft.FirstName = value
	case FieldLastName:
		c.draft.LastName = value
	case FieldEmail:
		c.draft.Email = value
	case FieldPhone:
		c.draft.Phone = value
	case FieldCarYear:
		c.draft.CarYear = value
	case FieldCarMake:
		c.draft.CarMake = value
	case FieldCarModel:
		c.draft.CarModel = value
	default:
		return ErrUnknownField
	}
	delete(c.errors, field)
	return nil
}

// Next validates every step-one field atomically. On failure the wizard
// stays on the contact step with an error recorded per failing field; on
// success errors are cleared and the schedule step is shown.
func (c *Controller) Next() error {
	if c.step != StepContact {
		return nil
	}
	if errs := c.draft.ValidateContact(); errs != nil {
		c.errors = errs
		return ErrValidation
	}
	c.errors = ValidationErrors{}
	c.step = StepSchedule
	return nil
}

// Back returns to the contact step. No re-validation happens on the way
// back.
func (c *Controller) Back() {
	c.step = StepContact
}

// Calendar returns the displayed month.
func (c *Controller) Calendar() (int, time.Month) { return c.calYear, c.calMonth }

// NextMonth advances the displayed month, rolling December into January.
// The selected date is untouched.
func (c *Controller) NextMonth() {
	c.calYear, c.calMonth = availability.AddMonths(c.calYear, c.calMonth, 1)
}

// PrevMonth shows the previous month, rolling January into December.
func (c *Controller) PrevMonth() {
	c.calYear, c.calMonth = availability.AddMonths(c.calYear, c.calMonth, -1)
}

// MonthGrid renders the displayed month with per-day selectability.
func (c *Controller) MonthGrid() availability.Grid {
	return c.policy.MonthGrid(c.calYear, c.calMonth, c.now())
}

// SelectDate sets the appointment date and clears any previously chosen
// time, so a time selection is only ever valid for the date it was chosen
// under.
func (c *Controller) SelectDate(date string) error {
	if !c.policy.IsDateSelectable(date, c.now()) {
		return ErrDateUnavailable
	}
	c.draft.Date = date
	c.draft.Time = ""
	return nil
}

// AvailableTimes lists the offerable slots for the selected date. An
// empty list on today means the day is sold through.
func (c *Controller) AvailableTimes() []string {
	return c.policy.AvailableSlots(c.draft.Date, c.now())
}

// SelectTime picks a slot from the offered list.
func (c *Controller) SelectTime(label string) error {
	for _, offered := range c.AvailableTimes() {
		if offered == label {
			c.draft.Time = label
			return nil
		}
	}
	return ErrTimeUnavailable
}

// BeginSubmit marks the submission in flight. It fails when date or time
// is missing or another submission is running, which is what keeps the
// confirmation from firing more than once per click.
func (c *Controller) BeginSubmit() error {
	if c.submitting {
		return ErrSubmitInFlight
	}
	if c.draft.Date == "" || c.draft.Time == "" {
		return ErrScheduleIncomplete
	}
	c.submitting = true
	return nil
}

// EndSubmit clears the busy flag once the pipeline settles.
func (c *Controller) EndSubmit() {
	c.submitting = false
}
