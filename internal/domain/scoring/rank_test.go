package scoring

import (
	"testing"

	"talentdesk/internal/domain/candidate"

	"github.com/google/uuid"
)

func match(id string, overall, confidence float64, c candidate.Profile) CandidateMatch {
	c.ID = uuid.MustParse(id)
	if c.Status == "" {
		c.Status = candidate.StatusActive
	}
	return CandidateMatch{Candidate: c, Score: Score{Overall: overall, Confidence: confidence}}
}

const (
	idA = "00000000-0000-0000-0000-00000000000a"
	idB = "00000000-0000-0000-0000-00000000000b"
	idC = "00000000-0000-0000-0000-00000000000c"
	idD = "00000000-0000-0000-0000-00000000000d"
)

func TestRank_SortsByScoreDescByDefault(t *testing.T) {
	matches := []CandidateMatch{
		match(idA, 50, 100, candidate.Profile{}),
		match(idB, 90, 100, candidate.Profile{}),
		match(idC, 70, 100, candidate.Profile{}),
	}

	window, total, _ := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{})
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if window[0].Score.Overall != 90 || window[2].Score.Overall != 50 {
		t.Fatalf("wrong order: %v %v %v", window[0].Score.Overall, window[1].Score.Overall, window[2].Score.Overall)
	}
}

func TestRank_TieBreaksByConfidenceThenID(t *testing.T) {
	matches := []CandidateMatch{
		match(idC, 80, 60, candidate.Profile{}),
		match(idB, 80, 90, candidate.Profile{}),
		match(idA, 80, 60, candidate.Profile{}),
	}

	window, _, _ := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{})
	if window[0].Candidate.ID.String() != idB {
		t.Fatalf("higher confidence should rank first, got %s", window[0].Candidate.ID)
	}
	if window[1].Candidate.ID.String() != idA || window[2].Candidate.ID.String() != idC {
		t.Fatalf("equal score and confidence should order by id asc: %s, %s",
			window[1].Candidate.ID, window[2].Candidate.ID)
	}
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	matches := []CandidateMatch{
		match(idD, 80, 60, candidate.Profile{}),
		match(idA, 80, 60, candidate.Profile{}),
		match(idC, 80, 60, candidate.Profile{}),
		match(idB, 80, 60, candidate.Profile{}),
	}

	first, _, _ := Rank(append([]CandidateMatch(nil), matches...), Filters{}, SortByScore, OrderDesc, PageRequest{})
	for i := 0; i < 10; i++ {
		again, _, _ := Rank(append([]CandidateMatch(nil), matches...), Filters{}, SortByScore, OrderDesc, PageRequest{})
		for j := range first {
			if first[j].Candidate.ID != again[j].Candidate.ID {
				t.Fatalf("run %d ordered differently at %d", i, j)
			}
		}
	}
}

func TestRank_MinScoreFilter(t *testing.T) {
	matches := []CandidateMatch{
		match(idA, 40, 100, candidate.Profile{}),
		match(idB, 70, 100, candidate.Profile{}),
		match(idC, 69.99, 100, candidate.Profile{}),
	}

	window, total, _ := Rank(matches, Filters{MinScore: 70}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 || len(window) != 1 {
		t.Fatalf("expected exactly 1 at or above threshold, got total=%d window=%d", total, len(window))
	}
	if window[0].Candidate.ID.String() != idB {
		t.Fatalf("wrong survivor: %s", window[0].Candidate.ID)
	}
}

func TestRank_ArchivedExcludedByDefault(t *testing.T) {
	matches := []CandidateMatch{
		match(idA, 90, 100, candidate.Profile{Status: candidate.StatusArchived}),
		match(idB, 50, 100, candidate.Profile{}),
	}

	_, total, _ := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 {
		t.Fatalf("archived profile should be excluded, total = %d", total)
	}

	_, total, _ = Rank(matches, Filters{Statuses: []candidate.Status{candidate.StatusArchived}}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 {
		t.Fatalf("explicit archived filter should include it, total = %d", total)
	}
}

func TestRank_TagAndSkillFiltersAreConjunctive(t *testing.T) {
	matches := []CandidateMatch{
		match(idA, 90, 100, candidate.Profile{Tags: []string{"referral", "urgent"}, Skills: []string{"Go", "React"}}),
		match(idB, 90, 100, candidate.Profile{Tags: []string{"referral"}, Skills: []string{"Go"}}),
	}

	_, total, _ := Rank(matches, Filters{Tags: []string{"referral", "urgent"}}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 {
		t.Fatalf("both tags required, total = %d", total)
	}

	_, total, _ = Rank(matches, Filters{Skills: []string{"golang", "react"}}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 {
		t.Fatalf("both skills required via aliases, total = %d", total)
	}
}

func TestRank_YearsRangeExcludesUnknownExperience(t *testing.T) {
	three := 3
	matches := []CandidateMatch{
		match(idA, 90, 100, candidate.Profile{YearsExperience: &three}),
		match(idB, 90, 100, candidate.Profile{}),
	}

	minY := 1
	_, total, _ := Rank(matches, Filters{MinYears: &minY}, SortByScore, OrderDesc, PageRequest{})
	if total != 1 {
		t.Fatalf("candidate without recorded years must fail a years filter, total = %d", total)
	}
}

func TestRank_Pagination(t *testing.T) {
	matches := make([]CandidateMatch, 0, 5)
	ids := []string{idA, idB, idC, idD, "00000000-0000-0000-0000-00000000000e"}
	for i, id := range ids {
		matches = append(matches, match(id, float64(100-i), 100, candidate.Profile{}))
	}

	window, total, info := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{Page: 2, Limit: 2})
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(window) != 2 || window[0].Score.Overall != 98 {
		t.Fatalf("page 2 should hold the 3rd and 4th results")
	}
	if info.TotalPages != 3 || !info.HasNext || !info.HasPrevious {
		t.Fatalf("unexpected page info: %+v", info)
	}
	if info.StartIndex != 2 || info.EndIndex != 4 {
		t.Fatalf("unexpected indexes: %+v", info)
	}
}

func TestRank_PagesConcatenateToFullOrdering(t *testing.T) {
	matches := make([]CandidateMatch, 0, 5)
	ids := []string{idA, idB, idC, idD, "00000000-0000-0000-0000-00000000000e"}
	for i, id := range ids {
		matches = append(matches, match(id, float64(10+i), 100, candidate.Profile{}))
	}

	full, _, _ := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{Limit: 100})

	var joined []CandidateMatch
	for p := 1; p <= 3; p++ {
		w, _, _ := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{Page: p, Limit: 2})
		joined = append(joined, w...)
	}

	if len(joined) != len(full) {
		t.Fatalf("joined %d, full %d", len(joined), len(full))
	}
	for i := range full {
		if joined[i].Candidate.ID != full[i].Candidate.ID {
			t.Fatalf("pages diverge from full ordering at %d", i)
		}
	}
}

func TestRank_PageBeyondEndIsEmptyNotError(t *testing.T) {
	matches := []CandidateMatch{match(idA, 90, 100, candidate.Profile{})}

	window, total, info := Rank(matches, Filters{}, SortByScore, OrderDesc, PageRequest{Page: 7, Limit: 10})
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if len(window) != 0 {
		t.Fatalf("beyond-end page should be empty, got %d", len(window))
	}
	if info.HasNext {
		t.Fatalf("beyond-end page cannot have a next page")
	}
}

func TestRank_EmptyInput(t *testing.T) {
	window, total, info := Rank(nil, Filters{}, SortByScore, OrderDesc, PageRequest{})
	if total != 0 || len(window) != 0 {
		t.Fatalf("empty input should rank to empty output")
	}
	if info.TotalPages != 0 {
		t.Fatalf("TotalPages = %d, want 0", info.TotalPages)
	}
}

func TestRank_SortByExperience(t *testing.T) {
	two, nine := 2, 9
	matches := []CandidateMatch{
		match(idA, 50, 100, candidate.Profile{YearsExperience: &two}),
		match(idB, 50, 100, candidate.Profile{YearsExperience: &nine}),
		match(idC, 50, 100, candidate.Profile{}),
	}

	window, _, _ := Rank(matches, Filters{}, SortByExperience, OrderDesc, PageRequest{})
	if window[0].Candidate.ID.String() != idB {
		t.Fatalf("most experienced should rank first")
	}
	if window[2].Candidate.ID.String() != idC {
		t.Fatalf("unknown experience should rank last on experience sort")
	}
}
