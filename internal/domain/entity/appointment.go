package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment.
// The set is closed: transitions with any other value are rejected at the
// boundary instead of being persisted.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusAccepted  AppointmentStatus = "Accepted"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
)

// ErrUnknownStatus is returned when a status value outside the closed set
// is supplied.
var ErrUnknownStatus = errors.New("unknown appointment status")

// ParseAppointmentStatus validates a caller-supplied status value.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	switch AppointmentStatus(value) {
	case AppointmentStatusPending, AppointmentStatusAccepted,
		AppointmentStatusRejected, AppointmentStatusCompleted:
		return AppointmentStatus(value), nil
	}
	return "", ErrUnknownStatus
}

// Blocks reports whether an appointment in this status occupies its slot.
// Only Rejected frees the slot; every other status keeps it taken.
func (s AppointmentStatus) Blocks() bool {
	return s != AppointmentStatusRejected
}

// Appointment represents one reservation of a doctor's time slot by a
// patient. At most one non-Rejected appointment may exist per
// (doctor, date, time_slot); the database enforces this with a partial
// unique index.
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	TimeSlot  string            `gorm:"type:varchar(8);not null" json:"time_slot"`
	Reason    string            `gorm:"type:text;not null" json:"reason"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting the doctor's decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsRejected checks if the appointment has freed its slot
func (a *Appointment) IsRejected() bool {
	return a.Status == AppointmentStatusRejected
}

// OwnedByDoctor checks doctor ownership
func (a *Appointment) OwnedByDoctor(doctorID uuid.UUID) bool {
	return a.DoctorID == doctorID
}

// OwnedByPatient checks patient ownership
func (a *Appointment) OwnedByPatient(patientID uuid.UUID) bool {
	return a.PatientID == patientID
}
