package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/domain/slot"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrSlotTaken           = errors.New("time slot is already booked")
	ErrInvalidDoctorID     = errors.New("invalid doctor id")
	ErrUnknownSlot         = errors.New("time slot is not on the booking grid")
	ErrCallerMissing       = errors.New("user not found in context")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetPatientAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Book reserves a slot for the calling patient.
//
// The conflict check and the insert run in one serializable transaction, and
// the appointments table carries a partial unique index over active slots, so
// two concurrent bookers for the same (doctor, date, slot) cannot both
// commit: the loser sees the same ErrSlotTaken as a sequential conflict.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCallerMissing
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if !slot.IsValid(req.TimeSlot) {
		return nil, ErrUnknownSlot
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindActiveSlot(tx, doctorID, date, req.TimeSlot)
	if err != nil {
		u.log.Warnf("Failed to check slot conflict: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctorID.String(),
		"date":           req.Date,
		"time_slot":      req.TimeSlot,
	})

	// Reload with the doctor preloaded for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, slot=%s", appointment.ID, doctorID, req.Date, req.TimeSlot)
	return converter.AppointmentToResponse(full), nil
}

// GetPatientAppointments returns the calling patient's appointments joined
// with the doctor's display name, ordered by date and slot.
func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCallerMissing
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetDoctorAppointments returns the calling doctor's appointments joined with
// the patient's display name, ordered by date and slot.
func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCallerMissing
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus transitions an appointment's status. Only the owning doctor
// may do this, and only to a value in the closed status set. Setting
// Rejected frees the slot for future availability queries; repeating the
// transition is harmless.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCallerMissing
	}

	status, err := entity.ParseAppointmentStatus(req.Status)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.OwnedByDoctor(doctorID) {
		return nil, ErrAppointmentNotOwned
	}

	rows, err := u.appointmentRepo.UpdateStatusByDoctor(u.db.WithContext(ctx), appointmentID, doctorID, status)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		// Deleted between the lookup and the update
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, doctorID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": appointmentID.String(),
		"status":         string(status),
	})

	appointment.Status = status
	u.log.Infof("Appointment status updated: id=%s, status=%s", appointmentID, status)
	return converter.AppointmentToResponse(appointment), nil
}

// Delete removes an appointment. Either owner may delete, regardless of
// status; the row is gone and its slot becomes bookable again.
func (u *appointmentUsecase) Delete(ctx context.Context, appointmentID uuid.UUID) error {
	callerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrCallerMissing
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return ErrCallerMissing
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	var rows int64
	switch roleID {
	case entity.RoleIDPatient:
		if !appointment.OwnedByPatient(callerID) {
			return ErrAppointmentNotOwned
		}
		rows, err = u.appointmentRepo.DeleteByPatient(u.db.WithContext(ctx), appointmentID, callerID)
	case entity.RoleIDDoctor:
		if !appointment.OwnedByDoctor(callerID) {
			return ErrAppointmentNotOwned
		}
		rows, err = u.appointmentRepo.DeleteByDoctor(u.db.WithContext(ctx), appointmentID, callerID)
	default:
		return ErrAppointmentNotOwned
	}

	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, callerID, entity.AuditActionAppointmentDelete, entity.JSON{
		"appointment_id": appointmentID.String(),
	})

	u.log.Infof("Appointment deleted: id=%s", appointmentID)
	return nil
}
