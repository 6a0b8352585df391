package scoring

import (
	"testing"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/search"
)

func intPtr(n int) *int { return &n }

func testExtractor() Extractor {
	return Extractor{Canonical: search.CanonicalSkill}
}

func TestExtractSkills_WeightedMatch(t *testing.T) {
	c := candidate.Profile{Skills: []string{"Go", "Docker"}}
	j := job.Job{Requirements: []job.Requirement{
		{Skill: "Go", Level: job.LevelAdvanced, Weight: 8},
		{Skill: "PostgreSQL", Level: job.LevelIntermediate, Weight: 2},
	}}

	f := testExtractor().Extract(c, j)
	if f.SkillsMatch != 80 {
		t.Fatalf("SkillsMatch = %v, want 80", f.SkillsMatch)
	}
	if len(f.MatchedSkills) != 1 || f.MatchedSkills[0] != "Go" {
		t.Fatalf("unexpected matched skills: %v", f.MatchedSkills)
	}
	if len(f.MissingSkills) != 1 || f.MissingSkills[0] != "PostgreSQL" {
		t.Fatalf("unexpected missing skills: %v", f.MissingSkills)
	}
}

func TestExtractSkills_AliasesMatch(t *testing.T) {
	c := candidate.Profile{Skills: []string{"Golang", "Postgres"}}
	j := job.Job{Requirements: []job.Requirement{
		{Skill: "Go", Level: job.LevelAdvanced, Weight: 5},
		{Skill: "PostgreSQL", Level: job.LevelIntermediate, Weight: 5},
	}}

	f := testExtractor().Extract(c, j)
	if f.SkillsMatch != 100 {
		t.Fatalf("SkillsMatch = %v, want 100 via aliases", f.SkillsMatch)
	}
}

func TestExtractSkills_NoRequirements(t *testing.T) {
	f := testExtractor().Extract(candidate.Profile{}, job.Job{})
	if f.SkillsMatch != 100 {
		t.Fatalf("no requirements should score 100, got %v", f.SkillsMatch)
	}
}

func TestExtractSkills_ZeroWeightRequirementsOnly(t *testing.T) {
	j := job.Job{Requirements: []job.Requirement{
		{Skill: "Go", Level: job.LevelBeginner, Weight: 0},
	}}
	f := testExtractor().Extract(candidate.Profile{}, j)
	if f.SkillsMatch != 100 {
		t.Fatalf("all-zero weights should score 100, got %v", f.SkillsMatch)
	}
}

func TestExtractExperience_WithinBand(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(4)}
	j := job.Job{ExperienceLevel: job.ExperienceMid}

	f := testExtractor().Extract(c, j)
	if f.ExperienceMatch != 100 {
		t.Fatalf("ExperienceMatch = %v, want 100", f.ExperienceMatch)
	}
	if f.NeutralDims != 2 {
		// only role and location lack data here
		t.Fatalf("NeutralDims = %d, want 2", f.NeutralDims)
	}
}

func TestExtractExperience_DecayBelowBand(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(1)}
	j := job.Job{ExperienceLevel: job.ExperienceMid}

	// 2 years under the 3..6 band, default decay 10/yr
	f := testExtractor().Extract(c, j)
	if f.ExperienceMatch != 80 {
		t.Fatalf("ExperienceMatch = %v, want 80", f.ExperienceMatch)
	}
}

func TestExtractExperience_DecayAboveBand(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(9)}
	j := job.Job{ExperienceLevel: job.ExperienceMid}

	f := testExtractor().Extract(c, j)
	if f.ExperienceMatch != 70 {
		t.Fatalf("ExperienceMatch = %v, want 70", f.ExperienceMatch)
	}
}

func TestExtractExperience_OpenEndedLeadBand(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(25)}
	j := job.Job{ExperienceLevel: job.ExperienceLead}

	f := testExtractor().Extract(c, j)
	if f.ExperienceMatch != 100 {
		t.Fatalf("Lead band is open above, got %v", f.ExperienceMatch)
	}
}

func TestExtractExperience_ConfigurableDecay(t *testing.T) {
	e := Extractor{Canonical: search.CanonicalSkill, DecayPerYear: 25}
	c := candidate.Profile{YearsExperience: intPtr(1)}
	j := job.Job{ExperienceLevel: job.ExperienceMid}

	f := e.Extract(c, j)
	if f.ExperienceMatch != 50 {
		t.Fatalf("ExperienceMatch = %v, want 50 with decay 25", f.ExperienceMatch)
	}
}

func TestExtractExperience_ClampedAtZero(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(30)}
	j := job.Job{ExperienceLevel: job.ExperienceEntry}

	f := testExtractor().Extract(c, j)
	if f.ExperienceMatch != 0 {
		t.Fatalf("ExperienceMatch = %v, want clamp to 0", f.ExperienceMatch)
	}
}

func TestExtractExperience_MissingDataIsNeutral(t *testing.T) {
	j := job.Job{ExperienceLevel: job.ExperienceSenior}
	f := testExtractor().Extract(candidate.Profile{}, j)
	if f.ExperienceMatch != 50 {
		t.Fatalf("missing years should be neutral 50, got %v", f.ExperienceMatch)
	}
}

func TestExtractExperience_JobWithoutLevelIsNeutral(t *testing.T) {
	c := candidate.Profile{YearsExperience: intPtr(5)}
	f := testExtractor().Extract(c, job.Job{})
	if f.ExperienceMatch != 50 {
		t.Fatalf("job without level should be neutral 50, got %v", f.ExperienceMatch)
	}
}

func TestExtractRole_BestOfCurrentAndDesired(t *testing.T) {
	c := candidate.Profile{
		CurrentRole: "QA Analyst",
		DesiredRole: "Backend Engineer",
	}
	j := job.Job{Title: "Backend Engineer"}

	f := testExtractor().Extract(c, j)
	if f.RoleMatch != 100 {
		t.Fatalf("RoleMatch = %v, want 100 from desired role", f.RoleMatch)
	}
}

func TestExtractRole_PartialOverlap(t *testing.T) {
	c := candidate.Profile{CurrentRole: "Backend Developer"}
	j := job.Job{Title: "Senior Backend Engineer"}

	// tokens overlap: {backend}; union {backend, developer, senior, engineer}
	f := testExtractor().Extract(c, j)
	if f.RoleMatch != 25 {
		t.Fatalf("RoleMatch = %v, want 25", f.RoleMatch)
	}
}

func TestExtractRole_MissingTitlesAreNeutral(t *testing.T) {
	f := testExtractor().Extract(candidate.Profile{}, job.Job{Title: "Engineer"})
	if f.RoleMatch != 50 {
		t.Fatalf("no candidate roles should be neutral, got %v", f.RoleMatch)
	}
}

func TestExtractLocation(t *testing.T) {
	e := testExtractor()

	f := e.Extract(candidate.Profile{Location: " berlin "}, job.Job{Location: "Berlin"})
	if f.LocationMatch != 100 {
		t.Fatalf("same location should score 100, got %v", f.LocationMatch)
	}

	f = e.Extract(candidate.Profile{Location: "Hamburg"}, job.Job{Location: "Berlin"})
	if f.LocationMatch != 0 {
		t.Fatalf("different location should score 0, got %v", f.LocationMatch)
	}

	f = e.Extract(candidate.Profile{}, job.Job{Location: "Berlin"})
	if f.LocationMatch != 50 {
		t.Fatalf("missing location should be neutral, got %v", f.LocationMatch)
	}
}
