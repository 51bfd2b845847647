package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type stubUserService struct {
	updateFn func(ctx context.Context, email string, update domain.ProfileUpdate) (*ports.ProfileOutcome, error)
}

func (s *stubUserService) Create(context.Context, *domain.User) (*domain.InsertResult, error) {
	return &domain.InsertResult{Acknowledged: true}, nil
}

func (s *stubUserService) Upsert(context.Context, *domain.User) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (s *stubUserService) IsAdmin(context.Context, string) (bool, error) { return false, nil }

func (s *stubUserService) Phone(context.Context, string) (string, error) {
	return "", domain.ErrPhoneNotFound
}

func (s *stubUserService) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) (*ports.ProfileOutcome, error) {
	return s.updateFn(ctx, email, update)
}

func TestUserHandler_UpdateProfile_PassesEmailAndFields(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		updateFn: func(_ context.Context, email string, update domain.ProfileUpdate) (*ports.ProfileOutcome, error) {
			if email != "ana@example.com" || update.Country != "PT" || update.DisplayName != "" {
				t.Fatalf("unexpected args: %s %+v", email, update)
			}
			return &ports.ProfileOutcome{Changed: true}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users/ana@example.com", strings.NewReader(`{"country":"PT"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:email")
	c.SetParamNames("email")
	c.SetParamValues("ana@example.com")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != msgProfileUpdated {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestUserHandler_UpdateProfile_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		updateFn: func(context.Context, string, domain.ProfileUpdate) (*ports.ProfileOutcome, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users/ana@example.com", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.UpdateProfile(e.NewContext(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Phone_ReturnsDomainError(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/phone/ana@example.com", nil)
	err := h.Phone(e.NewContext(req, httptest.NewRecorder()))

	if !errors.Is(err, domain.ErrPhoneNotFound) {
		t.Fatalf("expected ErrPhoneNotFound for the error handler, got %v", err)
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	cases := []struct {
		name string
		deps map[string]Pinger
		code int
	}{
		{"no dependencies", nil, http.StatusOK},
		{"all up", map[string]Pinger{"mongodb": stubPinger{}, "redis": stubPinger{}}, http.StatusOK},
		{"mongo down", map[string]Pinger{"mongodb": stubPinger{err: errors.New("no reachable servers")}}, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

		if err := NewHealthHandler(tc.deps).Readiness(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}

		var resp readinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", tc.name, err)
		}
		if len(resp.Dependencies) != len(tc.deps) {
			t.Errorf("%s: expected %d dependency entries, got %d", tc.name, len(tc.deps), len(resp.Dependencies))
		}
	}
}
