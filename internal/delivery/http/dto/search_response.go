package dto

import (
	"talentdesk/internal/domain/scoring"
	"talentdesk/internal/usecase"

	"github.com/google/uuid"
)

// SearchResponse is the ranked-search payload. Field names are camelCase
// because this endpoint is consumed by the recruiter frontend directly.
type SearchResponse struct {
	Candidates      []SearchCandidate      `json:"candidates"`
	TotalCandidates int                    `json:"totalCandidates"`
	SearchCriteria  usecase.SearchCriteria `json:"searchCriteria"`
	SearchTime      float64                `json:"searchTime"`
	Pagination      SearchPagination       `json:"pagination"`
}

type SearchCandidate struct {
	ID              uuid.UUID   `json:"id"`
	FullName        string      `json:"fullName"`
	CurrentRole     string      `json:"currentRole"`
	Location        string      `json:"location"`
	YearsExperience *int        `json:"yearsExperience"`
	Status          string      `json:"status"`
	Tags            []string    `json:"tags"`
	Score           SearchScore `json:"score"`
	Reasons         []string    `json:"reasons"`
}

type SearchScore struct {
	Overall         float64 `json:"overall"`
	SkillsMatch     float64 `json:"skillsMatch"`
	ExperienceMatch float64 `json:"experienceMatch"`
	RoleMatch       float64 `json:"roleMatch"`
	LocationMatch   float64 `json:"locationMatch"`
	MatchConfidence float64 `json:"matchConfidence"`
}

type SearchPagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"`
}

func NewSearchResponse(res usecase.SearchResult) SearchResponse {
	candidates := make([]SearchCandidate, 0, len(res.Candidates))
	for _, m := range res.Candidates {
		candidates = append(candidates, newSearchCandidate(m))
	}

	return SearchResponse{
		Candidates:      candidates,
		TotalCandidates: res.TotalCandidates,
		SearchCriteria:  res.Criteria,
		SearchTime:      res.SearchTime.Seconds(),
		Pagination: SearchPagination{
			Page:        res.Page.Page,
			Limit:       res.Page.Limit,
			TotalPages:  res.Page.TotalPages,
			HasNext:     res.Page.HasNext,
			HasPrevious: res.Page.HasPrevious,
			StartIndex:  res.Page.StartIndex,
			EndIndex:    res.Page.EndIndex,
		},
	}
}

func newSearchCandidate(m scoring.CandidateMatch) SearchCandidate {
	return SearchCandidate{
		ID:              m.Candidate.ID,
		FullName:        m.Candidate.FullName,
		CurrentRole:     m.Candidate.CurrentRole,
		Location:        m.Candidate.Location,
		YearsExperience: m.Candidate.YearsExperience,
		Status:          string(m.Candidate.Status),
		Tags:            m.Candidate.Tags,
		Score: SearchScore{
			Overall:         m.Score.Overall,
			SkillsMatch:     m.Score.SkillsMatch,
			ExperienceMatch: m.Score.ExperienceMatch,
			RoleMatch:       m.Score.RoleMatch,
			LocationMatch:   m.Score.LocationMatch,
			MatchConfidence: m.Score.Confidence,
		},
		Reasons: m.Reasons,
	}
}
