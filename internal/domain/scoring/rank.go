package scoring

import (
	"sort"
	"strings"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/search"
)

type SortKey string

const (
	SortByScore      SortKey = "score"
	SortByConfidence SortKey = "confidence"
	SortByExperience SortKey = "experience"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByScore, SortByConfidence, SortByExperience:
		return true
	}
	return false
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Filters narrows the scored candidate set before pagination. Zero values
// mean "no constraint"; an empty Statuses list admits everything except
// Archived profiles.
type Filters struct {
	MinScore float64
	Statuses []candidate.Status
	Tags     []string
	Skills   []string
	MinYears *int
	MaxYears *int
}

type PageRequest struct {
	Page  int
	Limit int
}

type PageInfo struct {
	Page        int
	Limit       int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
	StartIndex  int
	EndIndex    int
}

// Rank filters, orders and slices scored matches. The order is fully
// deterministic: the requested sort key first, then confidence descending,
// then candidate id ascending, so equal-score candidates paginate stably
// across repeated requests. The returned total counts every match passing
// the filters regardless of the page window.
func Rank(matches []CandidateMatch, f Filters, key SortKey, order SortOrder, page PageRequest) ([]CandidateMatch, int, PageInfo) {
	kept := filterMatches(matches, f)
	sortMatches(kept, key, order)

	total := len(kept)
	info := paginate(total, page)

	if info.StartIndex >= total {
		return []CandidateMatch{}, total, info
	}
	end := info.StartIndex + info.Limit
	if end > total {
		end = total
	}
	window := kept[info.StartIndex:end]
	info.EndIndex = info.StartIndex + len(window)
	return window, total, info
}

func filterMatches(matches []CandidateMatch, f Filters) []CandidateMatch {
	allowed := map[candidate.Status]struct{}{}
	if len(f.Statuses) == 0 {
		allowed[candidate.StatusActive] = struct{}{}
		allowed[candidate.StatusInactive] = struct{}{}
		allowed[candidate.StatusShortlisted] = struct{}{}
	} else {
		for _, s := range f.Statuses {
			allowed[s] = struct{}{}
		}
	}

	wantSkills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		cs := search.CanonicalSkill(s)
		if cs != "" {
			wantSkills = append(wantSkills, cs)
		}
	}

	kept := make([]CandidateMatch, 0, len(matches))
	for _, m := range matches {
		if m.Score.Overall < f.MinScore {
			continue
		}
		if _, ok := allowed[m.Candidate.Status]; !ok {
			continue
		}
		if !hasAllTags(m.Candidate, f.Tags) {
			continue
		}
		if len(wantSkills) > 0 && !hasAllSkills(m.Candidate, wantSkills) {
			continue
		}
		if !inYearsRange(m.Candidate, f.MinYears, f.MaxYears) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func hasAllTags(c candidate.Profile, tags []string) bool {
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !c.HasTag(t) {
			return false
		}
	}
	return true
}

func hasAllSkills(c candidate.Profile, canonical []string) bool {
	have := search.CanonicalSkillSet(c.Skills)
	for _, s := range canonical {
		if _, ok := have[s]; !ok {
			return false
		}
	}
	return true
}

// An explicit experience-range filter excludes candidates with no recorded
// experience; missing data degrades scores, but a hard filter is a hard
// filter.
func inYearsRange(c candidate.Profile, minYears, maxYears *int) bool {
	if minYears == nil && maxYears == nil {
		return true
	}
	if c.YearsExperience == nil {
		return false
	}
	y := *c.YearsExperience
	if minYears != nil && y < *minYears {
		return false
	}
	if maxYears != nil && y > *maxYears {
		return false
	}
	return true
}

func sortMatches(matches []CandidateMatch, key SortKey, order SortOrder) {
	if !key.Valid() {
		key = SortByScore
	}
	if !order.Valid() {
		order = OrderDesc
	}

	primary := func(m CandidateMatch) float64 {
		switch key {
		case SortByConfidence:
			return m.Score.Confidence
		case SortByExperience:
			if m.Candidate.YearsExperience == nil {
				return -1
			}
			return float64(*m.Candidate.YearsExperience)
		default:
			return m.Score.Overall
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]

		pa, pb := primary(a), primary(b)
		if pa != pb {
			if order == OrderAsc {
				return pa < pb
			}
			return pa > pb
		}
		if a.Score.Overall != b.Score.Overall {
			return a.Score.Overall > b.Score.Overall
		}
		if a.Score.Confidence != b.Score.Confidence {
			return a.Score.Confidence > b.Score.Confidence
		}
		return a.Candidate.ID.String() < b.Candidate.ID.String()
	})
}

func paginate(total int, page PageRequest) PageInfo {
	limit := page.Limit
	if limit <= 0 {
		limit = 20
	}
	p := page.Page
	if p <= 0 {
		p = 1
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (p - 1) * limit
	return PageInfo{
		Page:        p,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNext:     start+limit < total,
		HasPrevious: p > 1,
		StartIndex:  start,
		EndIndex:    start,
	}
}
