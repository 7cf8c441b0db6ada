package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Counterpart names are filled from whichever relationship is loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date.Format(dateLayout),
		TimeSlot:  appointment.TimeSlot,
		Reason:    appointment.Reason,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = appointment.Patient.FullName
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
