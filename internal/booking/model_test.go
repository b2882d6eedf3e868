package booking

import (
	"testing"
	"time"
)

func TestValidateContactAllFieldsReported(t *testing.T) {
	d := Draft{}
	errs := d.ValidateContact()
	if errs == nil {
		t.Fatal("expected validation errors for empty draft")
	}

	for _, field := range []string{
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldCarYear, FieldCarMake, FieldCarModel,
	} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s", field)
		}
	}
	if len(errs) != 7 {
		t.Errorf("expected 7 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateContactEmailShape(t *testing.T) {
	d := validDraft()

	for _, bad := range []string{"plainaddress", "missing@tld", "spaces in@example.com", "@example.com"} {
		d.Email = bad
		errs := d.ValidateContact()
		if _, ok := errs[FieldEmail]; !ok {
			t.Errorf("expected email error for %q", bad)
		}
	}

	d.Email = "jane.doe@example.com"
	if errs := d.ValidateContact(); errs != nil {
		t.Errorf("expected valid draft, got %v", errs)
	}
}

func TestValidateContactPhoneDigits(t *testing.T) {
	d := validDraft()

	d.Phone = "847-844"
	if errs := d.ValidateContact(); errs[FieldPhone] == "" {
		t.Error("expected phone error for short number")
	}

	// Formatting characters don't count against the digit minimum.
	d.Phone = "(847) 844-1700"
	if errs := d.ValidateContact(); errs != nil {
		t.Errorf("expected formatted phone to pass, got %v", errs)
	}
}

func TestValidateContactWhitespaceOnly(t *testing.T) {
	d := validDraft()
	d.CarMake = "   "
	errs := d.ValidateContact()
	if _, ok := errs[FieldCarMake]; !ok {
		t.Error("expected whitespace-only make to fail")
	}
}

func TestVehicle(t *testing.T) {
	d := Draft{CarYear: "2019", CarMake: "Honda", CarModel: "Civic"}
	if got := d.Vehicle(); got != "2019 Honda Civic" {
		t.Errorf("expected %q, got %q", "2019 Honda Civic", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("(847) 844-1700"); got != "8478441700" {
		t.Errorf("expected 8478441700, got %s", got)
	}
}

func TestYearOptions(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	years := YearOptions(now)

	if years[0] != 2026 {
		t.Errorf("expected first option 2026, got %d", years[0])
	}
	if years[len(years)-1] != 1980 {
		t.Errorf("expected last option 1980, got %d", years[len(years)-1])
	}
	if len(years) != 2026-1980+1 {
		t.Errorf("unexpected option count %d", len(years))
	}
}

func validDraft() Draft {
	return Draft{
		Symptom:   DefaultSymptom,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "8478441700",
		CarYear:   "2019",
		CarMake:   "Honda",
		CarModel:  "Civic",
	}
}
