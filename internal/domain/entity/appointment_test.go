package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, value := range []string{"Pending", "Accepted", "Rejected", "Completed"} {
		status, err := ParseAppointmentStatus(value)
		if err != nil {
			t.Fatalf("ParseAppointmentStatus(%q) error: %v", value, err)
		}
		if string(status) != value {
			t.Fatalf("expected %q, got %q", value, status)
		}
	}
}

func TestParseAppointmentStatusRejectsUnknown(t *testing.T) {
	for _, value := range []string{"", "pending", "Cancelled", "Approved", "REJECTED"} {
		if _, err := ParseAppointmentStatus(value); err != ErrUnknownStatus {
			t.Fatalf("expected ErrUnknownStatus for %q, got %v", value, err)
		}
	}
}

func TestStatusBlocks(t *testing.T) {
	if AppointmentStatusRejected.Blocks() {
		t.Fatal("Rejected must free its slot")
	}
	for _, status := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusAccepted,
		AppointmentStatusCompleted,
	} {
		if !status.Blocks() {
			t.Fatalf("%s must occupy its slot", status)
		}
	}
}

func TestOwnership(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()
	appt := Appointment{DoctorID: doctorID, PatientID: patientID}

	if !appt.OwnedByDoctor(doctorID) || appt.OwnedByDoctor(patientID) {
		t.Fatal("doctor ownership check failed")
	}
	if !appt.OwnedByPatient(patientID) || appt.OwnedByPatient(doctorID) {
		t.Fatal("patient ownership check failed")
	}
}
