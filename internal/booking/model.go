package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultSymptom is the fixed service type this funnel books. It is not
// user-editable.
const DefaultSymptom = "Brake Service Request"

// Form field names, matching the JSON keys the landing page posts.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldCarYear   = "carYear"
	FieldCarMake   = "carMake"
	FieldCarModel  = "carModel"
	FieldDate      = "date"
	FieldTime      = "time"
)

// Draft is the booking being assembled across the two wizard steps.
type Draft struct {
	Symptom   string `json:"symptom"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CarYear   string `json:"carYear"`
	CarMake   string `json:"carMake"`
	CarModel  string `json:"carModel"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Vehicle renders the combined "{year} {make} {model}" string used on the
// confirmation page and in the lead payload.
func (d *Draft) Vehicle() string {
	return fmt.Sprintf("%s %s %s", d.CarYear, d.CarMake, d.CarModel)
}

// FullName joins first and last name.
func (d *Draft) FullName() string {
	return fmt.Sprintf("%s %s", d.FirstName, d.LastName)
}

// ValidationErrors maps a field name to a human-readable message. A field
// is present only while it fails validation.
type ValidationErrors map[string]string

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigitRe = regexp.MustCompile(`\D`)

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ValidateContact checks every step-one field at once and returns an entry
// for each failure, so the form can mark all offending inputs together.
func (d *Draft) ValidateContact() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs[FieldLastName] = "Last name is required"
	}
	switch {
	case strings.TrimSpace(d.Email) == "":
		errs[FieldEmail] = "Email is required"
	case !emailRe.MatchString(d.Email):
		errs[FieldEmail] = "Enter a valid email address"
	}
	switch {
	case strings.TrimSpace(d.Phone) == "":
		errs[FieldPhone] = "Phone number is required"
	case len(DigitsOnly(d.Phone)) < 10:
		errs[FieldPhone] = "Enter a valid 10-digit phone number"
	}
	if strings.TrimSpace(d.CarYear) == "" {
		errs[FieldCarYear] = "Select your vehicle year"
	}
	if strings.TrimSpace(d.CarMake) == "" {
		errs[FieldCarMake] = "Vehicle make is required"
	}
	if strings.TrimSpace(d.CarModel) == "" {
		errs[FieldCarModel] = "Vehicle model is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// YearOptions lists the selectable model years, next calendar year down to
// 1980, descending.
func YearOptions(now time.Time) []int {
	var years []int
	for y := now.Year() + 1; y >= 1980; y-- {
		years = append(years, y)
	}
	return years
}
