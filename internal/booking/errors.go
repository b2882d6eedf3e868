package booking

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("unknown form field")

	// ErrValidation is returned when step one fails validation; the field
	// details live in the controller's Errors map.
	ErrValidation = errors.New("contact details failed validation")

	// ErrDateUnavailable is returned for past, holiday or blocked dates.
	ErrDateUnavailable = errors.New("date is not available")

	// ErrTimeUnavailable is returned when the slot is not offered for the
	// selected date.
	ErrTimeUnavailable = errors.New("time slot is not available")

	// ErrScheduleIncomplete is returned when submit is attempted without
	// both a date and a time.
	ErrScheduleIncomplete = errors.New("date and time are required")

	// ErrSubmitInFlight is returned when a submission is already running.
	ErrSubmitInFlight = errors.New("submission already in flight")
)
