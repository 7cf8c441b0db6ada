package repository

import (
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)

	// FindActiveSlot returns the non-Rejected appointment holding
	// (doctor, date, slot), or nil when the slot is free.
	FindActiveSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeSlot string) (*entity.Appointment, error)

	// ListBookedSlots returns the time slot labels held by non-Rejected
	// appointments for the doctor on the given date.
	ListBookedSlots(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error)

	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)

	// UpdateStatusByDoctor updates the status of an appointment scoped to
	// its owning doctor. Returns affected rows: 0 = not found or not owned.
	UpdateStatusByDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID, status entity.AppointmentStatus) (int64, error)

	// DeleteByPatient / DeleteByDoctor remove an appointment scoped to its
	// owner. Returns affected rows: 0 = not found or not owned.
	DeleteByPatient(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (int64, error)
	DeleteByDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) (int64, error)
}
