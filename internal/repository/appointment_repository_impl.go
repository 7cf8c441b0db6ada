package repository

import (
	"errors"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeSlot string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND date = ? AND time_slot = ? AND status != ?",
		doctorID, date, timeSlot, entity.AppointmentStatusRejected).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListBookedSlots(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var slots []string
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status != ?", doctorID, date, entity.AppointmentStatusRejected).
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// time_slot is stored as a 12-hour label, so ordering casts it to a time
// value; plain string order would put the afternoon slots first.
const appointmentOrder = "date ASC, time_slot::time ASC"

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order(appointmentOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order(appointmentOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatusByDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByPatient(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
