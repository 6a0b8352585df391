package handler

import (
	"strconv"
	"strings"

	"talentdesk/internal/delivery/http/dto"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/pkg/response"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.CandidateSearchUsecase
}

func NewSearchHandler(uc usecase.CandidateSearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/candidates/search", h.Search)
}

// Search ranks the owner's resume bank against one job. Query parameters
// are camelCase to match the response shape.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	minScore, err := queryFloat(c, "minScore", 0)
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	minYears, err := queryIntPtr(c, "minYears")
	if err != nil {
		return err
	}
	maxYears, err := queryIntPtr(c, "maxYears")
	if err != nil {
		return err
	}

	params := usecase.SearchParams{
		OwnerID:   middleware.UserIDFromCtx(c),
		JobID:     jobID,
		MinScore:  minScore,
		Statuses:  splitCSV(c.Query("statuses")),
		Tags:      splitCSV(c.Query("tags")),
		Skills:    splitCSV(c.Query("skills")),
		MinYears:  minYears,
		MaxYears:  maxYears,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	res, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSearchResponse(res))
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func queryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid search filter", nil, err)
	}
	return v, nil
}

func queryIntPtr(c fiber.Ctx, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid search filter", nil, err)
	}
	return &n, nil
}
