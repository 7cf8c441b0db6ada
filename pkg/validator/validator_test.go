package validator

import "testing"

type bookingForm struct {
	DoctorID string `validate:"required,uuid"`
	Date     string `validate:"required,datetime=2006-01-02"`
	TimeSlot string `validate:"required"`
	Reason   string `validate:"required,max=500"`
}

func TestValidateAccepts(t *testing.T) {
	cv := NewValidator()
	form := bookingForm{
		DoctorID: "6f4a1a9e-9d4e-4f3a-8a3e-2a1b6c9d0e1f",
		Date:     "2024-06-01",
		TimeSlot: "10:00 AM",
		Reason:   "Annual checkup",
	}
	if err := cv.Validate(&form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateMissingFields(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&bookingForm{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := cv.FormatValidationErrors(err)
	for _, field := range []string{"DoctorID", "Date", "TimeSlot", "Reason"} {
		if fields[field] != field+" is required" {
			t.Fatalf("unexpected message for %s: %q", field, fields[field])
		}
	}
}

func TestValidateBadDate(t *testing.T) {
	cv := NewValidator()
	form := bookingForm{
		DoctorID: "6f4a1a9e-9d4e-4f3a-8a3e-2a1b6c9d0e1f",
		Date:     "06/01/2024",
		TimeSlot: "10:00 AM",
		Reason:   "Annual checkup",
	}
	err := cv.Validate(&form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := cv.FormatValidationErrors(err)
	if fields["Date"] != "Date must match the format 2006-01-02" {
		t.Fatalf("unexpected message: %q", fields["Date"])
	}
}
