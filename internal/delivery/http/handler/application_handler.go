package handler

import (
	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.PipelineUsecase
}

type stageRequest struct {
	Stage string `json:"stage"`
}

func NewApplicationHandler(uc usecase.PipelineUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterJobRoutes hangs the pipeline listing under the jobs group.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/applications", h.ListByJob)
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Patch("/:id/stage", h.AdvanceStage)
	r.Get("/:id/history", h.History)
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	apps, err := h.uc.ListByJob(c.Context(), middleware.UserIDFromCtx(c), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) AdvanceStage(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req stageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.AdvanceStage(c.Context(), middleware.UserIDFromCtx(c), id, req.Stage)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) History(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.uc.History(c.Context(), middleware.UserIDFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStageHistoryResponse(history))
}
