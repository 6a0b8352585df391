package scoring

import (
	"fmt"
	"strings"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
)

// CandidateMatch pairs a candidate snapshot with its computed score and the
// human-readable reasons behind it. Built per search request, never stored.
type CandidateMatch struct {
	Candidate candidate.Profile
	Score     Score
	Reasons   []string
}

// BuildReasons turns features into short recruiter-facing explanations.
func BuildReasons(f Features, c candidate.Profile, j job.Job) []string {
	reasons := make([]string, 0, 4)

	totalReqs := len(f.MatchedSkills) + len(f.MissingSkills)
	switch {
	case totalReqs == 0:
		reasons = append(reasons, "job lists no skill requirements")
	case len(f.MatchedSkills) == 0:
		reasons = append(reasons, "none of the required skills found")
	default:
		reasons = append(reasons, fmt.Sprintf("matches %d of %d required skills: %s",
			len(f.MatchedSkills), totalReqs, strings.Join(f.MatchedSkills, ", ")))
	}

	_, hasBand := j.ExperienceLevel.Band()
	switch {
	case c.YearsExperience == nil:
		reasons = append(reasons, "no experience information on file")
	case !hasBand:
		reasons = append(reasons, "job specifies no experience level")
	case f.ExperienceMatch >= 100:
		reasons = append(reasons, fmt.Sprintf("%d years experience fits the %s level", *c.YearsExperience, j.ExperienceLevel))
	case f.ExperienceMatch > neutralScore:
		reasons = append(reasons, fmt.Sprintf("%d years experience is close to the %s level", *c.YearsExperience, j.ExperienceLevel))
	default:
		reasons = append(reasons, fmt.Sprintf("%d years experience is outside the %s band", *c.YearsExperience, j.ExperienceLevel))
	}

	if c.CurrentRole != "" || c.DesiredRole != "" {
		switch {
		case f.RoleMatch >= 60:
			reasons = append(reasons, "role title closely matches the job title")
		case f.RoleMatch > 0:
			reasons = append(reasons, "partial role title overlap with the job title")
		}
	}

	switch f.LocationMatch {
	case 100:
		reasons = append(reasons, "location matches the job")
	case 0:
		reasons = append(reasons, "location differs from the job")
	}

	return reasons
}
