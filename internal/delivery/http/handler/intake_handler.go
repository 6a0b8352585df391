package handler

import (
	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// IntakeHandler serves the unauthenticated application endpoint embedded in
// public job listings.
type IntakeHandler struct {
	uc usecase.IntakeUsecase
}

type intakeRequest struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	YearsExperience *int     `json:"years_experience"`
	CurrentRole     string   `json:"current_role"`
	DesiredRole     string   `json:"desired_role"`
	Location        string   `json:"location"`
}

func NewIntakeHandler(uc usecase.IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

func (h *IntakeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/:id/apply", h.Apply)
}

func (h *IntakeHandler) Apply(c fiber.Ctx) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req intakeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Apply(c.Context(), usecase.IntakeInput{
		JobID:           jobID,
		FullName:        req.FullName,
		Email:           req.Email,
		Skills:          req.Skills,
		YearsExperience: req.YearsExperience,
		CurrentRole:     req.CurrentRole,
		DesiredRole:     req.DesiredRole,
		Location:        req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(app))
}
