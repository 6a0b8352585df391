package handler

import (
	"errors"

	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates usecase sentinels into transport errors. Every
// handler funnels through here so the status mapping stays in one place.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidFilter):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid search filter", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrMeetingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Meeting not found", nil, err)
	case errors.Is(err, usecase.ErrDataUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Candidate data unavailable", nil, err)
	case errors.Is(err, usecase.ErrJobNotOpen):
		return middleware.NewAppError(fiber.StatusConflict, "Job is not open for applications", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidStageTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid stage transition", nil, err)
	case errors.Is(err, usecase.ErrMeetingOverlap):
		return middleware.NewAppError(fiber.StatusConflict, "Meeting overlaps an existing one", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func pathUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}
