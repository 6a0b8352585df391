package scoring

import "math"

// Dimension weights. Skills dominate, but the other factors still move rank
// order. They must sum to 1.
const (
	WeightSkills     = 0.4
	WeightExperience = 0.25
	WeightRole       = 0.2
	WeightLocation   = 0.15
)

// Each dimension that fell back to neutral 50 for missing data costs this
// much confidence, so a strong match on sparse data ranks below an equally
// strong match on full data.
const confidencePenalty = 20

// Score is the combined compatibility of one candidate with one job. All
// fields are in [0,100]. Overall is a deterministic function of the four
// dimension scores and the weights above.
type Score struct {
	Overall         float64
	SkillsMatch     float64
	ExperienceMatch float64
	RoleMatch       float64
	LocationMatch   float64
	Confidence      float64
}

// Compute folds features into a Score. Out-of-range inputs are clamped, not
// rejected; the extractor is the only producer and already stays in range.
func Compute(f Features) Score {
	s := Score{
		SkillsMatch:     clamp(f.SkillsMatch, 0, 100),
		ExperienceMatch: clamp(f.ExperienceMatch, 0, 100),
		RoleMatch:       clamp(f.RoleMatch, 0, 100),
		LocationMatch:   clamp(f.LocationMatch, 0, 100),
	}

	overall := WeightSkills*s.SkillsMatch +
		WeightExperience*s.ExperienceMatch +
		WeightRole*s.RoleMatch +
		WeightLocation*s.LocationMatch
	s.Overall = round2(overall)

	s.Confidence = clamp(100-confidencePenalty*float64(f.NeutralDims), 0, 100)

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
