package handler

import (
	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc       usecase.CandidateUsecase
	meetings usecase.MeetingUsecase
}

type candidateRequest struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	YearsExperience *int     `json:"years_experience"`
	CurrentRole     string   `json:"current_role"`
	DesiredRole     string   `json:"desired_role"`
	Location        string   `json:"location"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
}

func NewCandidateHandler(uc usecase.CandidateUsecase, meetings usecase.MeetingUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc, meetings: meetings}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/meetings", h.Meetings)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cand, err := h.uc.Create(c.Context(), middleware.UserIDFromCtx(c), candidateInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCandidateResponse(cand))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cand, err := h.uc.Update(c.Context(), middleware.UserIDFromCtx(c), id, candidateInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func (h *CandidateHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), middleware.UserIDFromCtx(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cand, err := h.uc.Get(c.Context(), middleware.UserIDFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	profiles, err := h.uc.List(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateListResponse(profiles))
}

func (h *CandidateHandler) Meetings(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	meetings, err := h.meetings.ListForCandidate(c.Context(), middleware.UserIDFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeetingListResponse(meetings))
}

func candidateInputFromRequest(req candidateRequest) usecase.CandidateInput {
	return usecase.CandidateInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Skills:          req.Skills,
		YearsExperience: req.YearsExperience,
		CurrentRole:     req.CurrentRole,
		DesiredRole:     req.DesiredRole,
		Location:        req.Location,
		Tags:            req.Tags,
		Status:          req.Status,
	}
}
