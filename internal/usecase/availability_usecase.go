package usecase

import (
	"context"
	"time"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*dto.AvailableSlotsResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// GetAvailableSlots returns the slot labels still free for the doctor on the
// given date: the canonical grid minus slots held by non-Rejected
// appointments. A missing or malformed doctor/date yields an empty list
// rather than an error, so the booking form can poll it freely.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*dto.AvailableSlotsResponse, error) {
	empty := &dto.AvailableSlotsResponse{AvailableSlots: []string{}}

	if doctorID == "" || date == "" {
		return empty, nil
	}

	parsedDoctorID, err := uuid.Parse(doctorID)
	if err != nil {
		return empty, nil
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return empty, nil
	}

	booked, err := u.appointmentRepo.ListBookedSlots(u.db.WithContext(ctx), parsedDoctorID, parsedDate)
	if err != nil {
		u.log.Warnf("Failed to list booked slots for doctor %s on %s: %+v", parsedDoctorID, date, err)
		return nil, err
	}

	return &dto.AvailableSlotsResponse{
		AvailableSlots: slot.Subtract(slot.Generate(), booked),
	}, nil
}
