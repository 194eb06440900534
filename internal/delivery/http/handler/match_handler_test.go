package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubMatchingUsecase struct {
	items []usecase.MatchItem
	err   error

	lastStudentID    uuid.UUID
	lastInternshipID uuid.UUID
	lastLimit        int
}

func (s *stubMatchingUsecase) MatchInternshipsForStudent(_ context.Context, studentID uuid.UUID, limit int) ([]usecase.MatchItem, error) {
	s.lastStudentID = studentID
	s.lastLimit = limit
	return s.items, s.err
}

func (s *stubMatchingUsecase) MatchStudentsForInternship(_ context.Context, internshipID uuid.UUID, limit int) ([]usecase.MatchItem, error) {
	s.lastInternshipID = internshipID
	s.lastLimit = limit
	return s.items, s.err
}

func newTestApp(stub *stubMatchingUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewMatchHandler(stub).RegisterRoutes(app.Group("/api/v1"))
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	var env response.SemanticResponse
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestMatchesForStudent_OK(t *testing.T) {
	stub := &stubMatchingUsecase{items: []usecase.MatchItem{
		{CandidateID: uuid.New(), CandidateName: "Frontend Intern", CandidateCompany: "Acme", Score: 0.88},
	}}
	app := newTestApp(stub)
	studentID := uuid.New()

	req := httptest.NewRequest("GET", "/api/v1/students/"+studentID.String()+"/matches?limit=3", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastStudentID != studentID || stub.lastLimit != 3 {
		t.Fatalf("usecase called with id=%s limit=%d", stub.lastStudentID, stub.lastLimit)
	}

	env := decodeEnvelope(t, resp.Body)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape: %T", env.Data)
	}
	if data["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", data["count"])
	}
}

func TestMatchesForStudent_DefaultLimit(t *testing.T) {
	stub := &stubMatchingUsecase{items: []usecase.MatchItem{}}
	app := newTestApp(stub)

	req := httptest.NewRequest("GET", "/api/v1/students/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastLimit != usecase.DefaultMatchLimit {
		t.Fatalf("expected default limit %d, got %d", usecase.DefaultMatchLimit, stub.lastLimit)
	}
}

func TestMatchesForStudent_InvalidLimit(t *testing.T) {
	app := newTestApp(&stubMatchingUsecase{})

	for _, q := range []string{"limit=0", "limit=-1", "limit=abc"} {
		req := httptest.NewRequest("GET", "/api/v1/students/"+uuid.NewString()+"/matches?"+q, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestMatchesForStudent_BadUUID(t *testing.T) {
	app := newTestApp(&stubMatchingUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/students/not-a-uuid/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestMatchesForStudent_NotFound(t *testing.T) {
	app := newTestApp(&stubMatchingUsecase{err: usecase.ErrStudentNotFound})

	req := httptest.NewRequest("GET", "/api/v1/students/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMatchesForStudent_InternalErrorMasked(t *testing.T) {
	app := newTestApp(&stubMatchingUsecase{err: usecase.ErrInternal})

	req := httptest.NewRequest("GET", "/api/v1/students/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env.Message != response.MessageInternalServerError {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}

func TestMatchesForInternship_OK(t *testing.T) {
	stub := &stubMatchingUsecase{items: []usecase.MatchItem{
		{CandidateID: uuid.New(), CandidateName: "Ana", Score: 0.9},
	}}
	app := newTestApp(stub)
	internshipID := uuid.New()

	req := httptest.NewRequest("GET", "/api/v1/internships/"+internshipID.String()+"/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastInternshipID != internshipID {
		t.Fatalf("usecase called with id=%s", stub.lastInternshipID)
	}
}

func TestMatchesForInternship_NotFound(t *testing.T) {
	app := newTestApp(&stubMatchingUsecase{err: usecase.ErrInternshipNotFound})

	req := httptest.NewRequest("GET", "/api/v1/internships/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
