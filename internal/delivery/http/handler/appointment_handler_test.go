package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	bookFn         func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	bookCalls      int
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.bookCalls++
	return s.bookFn(ctx, req)
}

func (s *stubAppointmentUsecase) GetPatientAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return s.updateStatusFn(ctx, id, req)
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type stubAvailabilityUsecase struct {
	slots []string
}

func (s *stubAvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*dto.AvailableSlotsResponse, error) {
	if doctorID == "" || date == "" {
		return &dto.AvailableSlotsResponse{AvailableSlots: []string{}}, nil
	}
	return &dto.AvailableSlotsResponse{AvailableSlots: s.slots}, nil
}

func newTestHandler(appt *stubAppointmentUsecase, avail *stubAvailabilityUsecase) *AppointmentHandler {
	return NewAppointmentHandler(appt, avail, validator.NewValidator())
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func bookBody() string {
	return `{"doctor_id":"6f4a1a9e-9d4e-4f3a-8a3e-2a1b6c9d0e1f","date":"2024-06-01","time_slot":"10:00 AM","reason":"Annual checkup"}`
}

func TestBookSuccess(t *testing.T) {
	appt := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{TimeSlot: req.TimeSlot, Status: "Pending"}, nil
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody()))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Fatalf("expected success response: %+v", resp)
	}
}

func TestBookSlotConflict(t *testing.T) {
	appt := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSlotTaken
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody()))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Success {
		t.Fatal("expected failure response")
	}
}

func TestBookMissingFields(t *testing.T) {
	appt := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase must not be called on validation failure")
			return nil, nil
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"doctor_id":""}`))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if appt.bookCalls != 0 {
		t.Fatalf("expected no booking attempt, got %d", appt.bookCalls)
	}
}

func TestGetAvailability(t *testing.T) {
	avail := &stubAvailabilityUsecase{slots: []string{"09:00 AM", "09:30 AM"}}
	h := newTestHandler(&stubAppointmentUsecase{}, avail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability?doctor_id=6f4a1a9e-9d4e-4f3a-8a3e-2a1b6c9d0e1f&date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	h.GetAvailability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "09:30 AM") {
		t.Fatalf("expected slots in body: %s", rec.Body.String())
	}
}

func TestGetAvailabilityMissingParams(t *testing.T) {
	h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{slots: []string{"09:00 AM"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability", nil)
	rec := httptest.NewRecorder()
	h.GetAvailability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"available_slots":[]`) {
		t.Fatalf("expected empty slot list: %s", rec.Body.String())
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	appt := &stubAppointmentUsecase{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase must not be called for unknown status")
			return nil, nil
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/doctor/appointments/x/status", strings.NewReader(`{"status":"Approved"}`))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusForbiddenForNonOwner(t *testing.T) {
	appt := &stubAppointmentUsecase{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotOwned
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/doctor/appointments/x/status", strings.NewReader(`{"status":"Accepted"}`))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteNotFound(t *testing.T) {
	appt := &stubAppointmentUsecase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return usecase.ErrAppointmentNotFound
		},
	}
	h := newTestHandler(appt, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/x", nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteInvalidID(t *testing.T) {
	h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
