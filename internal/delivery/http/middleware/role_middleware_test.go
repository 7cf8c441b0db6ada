package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-appointment-service/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireDoctorAllowsDoctor(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	RequireDoctor(next).ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	if !called {
		t.Fatal("expected handler to be called")
	}
}

func TestRequireDoctorBlocksPatient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	rec := httptest.NewRecorder()
	RequireDoctor(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoleWithoutContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	rec := httptest.NewRecorder()
	RequirePatient(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireOwnerRoleAllowsBothParties(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDDoctor, entity.RoleIDPatient} {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		RequireOwnerRole(next).ServeHTTP(rec, requestWithRole(roleID))

		if !called {
			t.Fatalf("expected handler to be called for role %d", roleID)
		}
	}
}
