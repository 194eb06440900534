package handler

import (
	"errors"
	"strconv"
	"strings"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/students/:student_id/matches", h.MatchesForStudent)
	r.Get("/internships/:internship_id/matches", h.MatchesForInternship)
}

// MatchesForStudent returns the top internships for one student.
func (h *MatchHandler) MatchesForStudent(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit, err := parseLimitQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	items, err := h.uc.MatchInternshipsForStudent(c.Context(), studentID, limit)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchListResponse(items))
}

// MatchesForInternship returns the top students for one listing.
func (h *MatchHandler) MatchesForInternship(c fiber.Ctx) error {
	internshipID, err := uuid.Parse(c.Params("internship_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit, err := parseLimitQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	items, err := h.uc.MatchStudentsForInternship(c.Context(), internshipID, limit)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchListResponse(items))
}

func parseLimitQuery(c fiber.Ctx) (int, error) {
	s := strings.TrimSpace(c.Query("limit"))
	if s == "" {
		return usecase.DefaultMatchLimit, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errors.New("limit must be positive")
	}
	return v, nil
}

func toMatchListResponse(items []usecase.MatchItem) dto.MatchListResponse {
	out := dto.MatchListResponse{
		Items: make([]dto.MatchItemResponse, 0, len(items)),
		Count: len(items),
	}
	for _, it := range items {
		resp := dto.MatchItemResponse{
			CandidateID:      it.CandidateID,
			CandidateName:    it.CandidateName,
			CandidateCompany: it.CandidateCompany,
			Score:            it.Score,
			Dimensions: dto.DimensionScoresResponse{
				Skills:       it.Dimensions.Skills,
				Education:    it.Dimensions.Education,
				Experience:   it.Dimensions.Experience,
				Location:     it.Dimensions.Location,
				Compensation: it.Dimensions.Compensation,
				CulturalFit:  it.Dimensions.CulturalFit,
			},
			Skills: make([]dto.SkillMatchResponse, 0, len(it.Skills)),
		}
		for _, sm := range it.Skills {
			resp.Skills = append(resp.Skills, dto.SkillMatchResponse{
				SkillID:        sm.SkillID,
				SkillName:      sm.SkillName,
				CandidateLevel: sm.CandidateLevel,
				RequiredLevel:  sm.RequiredLevel,
				Score:          sm.Score,
			})
		}
		out.Items = append(out.Items, resp)
	}
	return out
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrStudentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student not found", nil, err)
	case errors.Is(err, usecase.ErrInternshipNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Internship not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidLimit):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
