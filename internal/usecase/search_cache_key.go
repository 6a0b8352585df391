package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// candidateSearchKeyInput is the canonical form hashed into the cache key.
// Slices are normalized and sorted so reordered but equivalent requests
// share one entry.
type candidateSearchKeyInput struct {
	MinScore  float64  `json:"min_score"`
	Statuses  []string `json:"statuses"`
	Tags      []string `json:"tags"`
	Skills    []string `json:"skills"`
	MinYears  *int     `json:"min_years"`
	MaxYears  *int     `json:"max_years"`
	SortBy    string   `json:"sort_by"`
	SortOrder string   `json:"sort_order"`
	Page      int      `json:"page"`
	Limit     int      `json:"limit"`

	// RequirementsHash pins the entry to one revision of the job's
	// requirement list, so edits invalidate implicitly even if pattern
	// deletion lags.
	RequirementsHash string `json:"requirements_hash"`
}

func normalizeSearchValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func normalizeSearchValues(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// CandidateSearchCacheKey builds "candidates:search:<owner>:<job>:<hash>".
// The owner and job segments stay in clear text so write paths can
// invalidate by pattern.
func CandidateSearchCacheKey(p SearchParams, requirementsHash string) string {
	in := candidateSearchKeyInput{
		MinScore:         p.MinScore,
		Statuses:         normalizeSearchValues(p.Statuses),
		Tags:             normalizeSearchValues(p.Tags),
		Skills:           normalizeSearchValues(p.Skills),
		MinYears:         p.MinYears,
		MaxYears:         p.MaxYears,
		SortBy:           normalizeSearchValue(p.SortBy),
		SortOrder:        normalizeSearchValue(p.SortOrder),
		Page:             p.Page,
		Limit:            p.Limit,
		RequirementsHash: requirementsHash,
	}

	b, err := json.Marshal(in)
	if err != nil {
		b = []byte{}
	}
	sum := sha256.Sum256(b)
	return "candidates:search:" + p.OwnerID.String() + ":" + p.JobID.String() + ":" + hex.EncodeToString(sum[:])
}

func CandidateSearchLockKey(cacheKey string) string {
	return cacheKey + ":lock"
}
