package handler

import (
	"time"

	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MeetingHandler struct {
	uc usecase.MeetingUsecase
}

type meetingRequest struct {
	CandidateID uuid.UUID  `json:"candidate_id"`
	JobID       *uuid.UUID `json:"job_id"`
	Title       string     `json:"title"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      time.Time  `json:"ends_at"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
}

func NewMeetingHandler(uc usecase.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{uc: uc}
}

func (h *MeetingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Schedule)
	r.Get("/", h.Agenda)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Reschedule)
	r.Delete("/:id", h.Cancel)
}

func (h *MeetingHandler) Schedule(c fiber.Ctx) error {
	var req meetingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Schedule(c.Context(), middleware.UserIDFromCtx(c), meetingInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMeetingResponse(m))
}

func (h *MeetingHandler) Reschedule(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req meetingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Reschedule(c.Context(), middleware.UserIDFromCtx(c), id, meetingInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeetingResponse(m))
}

func (h *MeetingHandler) Cancel(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Cancel(c.Context(), middleware.UserIDFromCtx(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *MeetingHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.uc.Get(c.Context(), middleware.UserIDFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeetingResponse(m))
}

// Agenda lists meetings in a window; the window defaults to the next 7 days.
func (h *MeetingHandler) Agenda(c fiber.Ctx) error {
	from, err := queryTime(c, "from", time.Now().UTC())
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to", from.Add(7*24*time.Hour))
	if err != nil {
		return err
	}

	meetings, err := h.uc.Agenda(c.Context(), middleware.UserIDFromCtx(c), from, to)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeetingListResponse(meetings))
}

func meetingInputFromRequest(req meetingRequest) usecase.MeetingInput {
	return usecase.MeetingInput{
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		Title:       req.Title,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
		Notes:       req.Notes,
	}
}

func queryTime(c fiber.Ctx, key string, defaultVal time.Time) (time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return t, nil
}
