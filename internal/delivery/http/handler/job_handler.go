package handler

import (
	"strconv"

	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Location        string               `json:"location"`
	ExperienceLevel string               `json:"experience_level"`
	Status          string               `json:"status"`
	Requirements    []requirementRequest `json:"requirements"`
}

type requirementRequest struct {
	Skill  string  `json:"skill"`
	Level  string  `json:"level"`
	Weight float64 `json:"weight"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), middleware.UserIDFromCtx(c), jobInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Update(c.Context(), middleware.UserIDFromCtx(c), id, jobInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), middleware.UserIDFromCtx(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	j, err := h.uc.Get(c.Context(), middleware.UserIDFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	jobs, err := h.uc.List(c.Context(), middleware.UserIDFromCtx(c), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func jobInputFromRequest(req jobRequest) usecase.JobInput {
	reqs := make([]usecase.RequirementInput, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		reqs = append(reqs, usecase.RequirementInput{Skill: r.Skill, Level: r.Level, Weight: r.Weight})
	}
	return usecase.JobInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		Status:          req.Status,
		Requirements:    reqs,
	}
}

func queryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return n, nil
}
