package dto

import "github.com/google/uuid"

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
