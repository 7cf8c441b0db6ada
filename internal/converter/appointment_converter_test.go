package converter

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponse(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()
	appt := entity.Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00 AM",
		Reason:    "Annual checkup",
		Status:    entity.AppointmentStatusPending,
		Doctor:    entity.User{ID: doctorID, FullName: "Dr. Gregory House"},
	}

	resp := AppointmentToResponse(&appt)
	if resp.Date != "2024-06-01" {
		t.Fatalf("unexpected date: %s", resp.Date)
	}
	if resp.DoctorName != "Dr. Gregory House" {
		t.Fatalf("unexpected doctor name: %s", resp.DoctorName)
	}
	if resp.PatientName != "" {
		t.Fatalf("patient not loaded, name should be empty: %s", resp.PatientName)
	}
	if resp.Status != "Pending" {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
}

func TestAppointmentToResponseNil(t *testing.T) {
	if AppointmentToResponse(nil) != nil {
		t.Fatal("expected nil for nil appointment")
	}
}

func TestAppointmentsToResponsesKeepsOrder(t *testing.T) {
	appts := []entity.Appointment{
		{TimeSlot: "09:00 AM"},
		{TimeSlot: "09:30 AM"},
		{TimeSlot: "10:00 AM"},
	}

	responses := AppointmentsToResponses(appts)
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}
	for i := range appts {
		if responses[i].TimeSlot != appts[i].TimeSlot {
			t.Fatalf("order broken at %d: %s", i, responses[i].TimeSlot)
		}
	}
}
