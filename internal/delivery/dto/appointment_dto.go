package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" validate:"required"`
	Reason   string `json:"reason" validate:"required,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected Completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"available_slots"`
}
