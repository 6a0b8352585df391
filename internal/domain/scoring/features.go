package scoring

import (
	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/search"
)

const neutralScore = 50

// Features holds the per-dimension match scores for one candidate against
// one job, each in [0,100]. NeutralDims counts dimensions that fell back to
// the neutral 50 because data was missing on either side; the scorer turns
// that into a confidence penalty.
type Features struct {
	SkillsMatch     float64
	ExperienceMatch float64
	RoleMatch       float64
	LocationMatch   float64

	MatchedSkills []string
	MissingSkills []string
	NeutralDims   int
}

// Extractor computes features. Canonical is the skill-alias lookup; when nil
// skills compare by plain normalized spelling. DecayPerYear is the penalty
// applied per year outside the job's experience band (default 10).
type Extractor struct {
	Canonical    func(string) string
	DecayPerYear float64
}

func (e Extractor) canonical(s string) string {
	if e.Canonical != nil {
		return e.Canonical(s)
	}
	return search.Normalize(s)
}

func (e Extractor) decay() float64 {
	if e.DecayPerYear > 0 {
		return e.DecayPerYear
	}
	return 10
}

func (e Extractor) Extract(c candidate.Profile, j job.Job) Features {
	f := Features{}
	e.extractSkills(&f, c, j)
	e.extractExperience(&f, c, j)
	e.extractRole(&f, c, j)
	e.extractLocation(&f, c, j)
	return f
}

func (e Extractor) extractSkills(f *Features, c candidate.Profile, j job.Job) {
	have := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		cs := e.canonical(s)
		if cs == "" {
			continue
		}
		have[cs] = struct{}{}
	}

	var totalWeight, matchedWeight float64
	for _, r := range j.Requirements {
		w := clamp(r.Weight, 0, 10)
		totalWeight += w
		if _, ok := have[e.canonical(r.Skill)]; ok {
			matchedWeight += w
			f.MatchedSkills = append(f.MatchedSkills, r.Skill)
		} else {
			f.MissingSkills = append(f.MissingSkills, r.Skill)
		}
	}

	// A job with no weighted requirements specifies no skill constraint at
	// all, so every candidate satisfies it fully. This is a deliberate edge
	// case, not a fallback, and does not lower confidence.
	if totalWeight == 0 {
		f.SkillsMatch = 100
		return
	}
	f.SkillsMatch = 100 * matchedWeight / totalWeight
}

func (e Extractor) extractExperience(f *Features, c candidate.Profile, j job.Job) {
	if c.YearsExperience == nil {
		f.ExperienceMatch = neutralScore
		f.NeutralDims++
		return
	}
	band, ok := j.ExperienceLevel.Band()
	if !ok {
		f.ExperienceMatch = neutralScore
		f.NeutralDims++
		return
	}

	years := *c.YearsExperience
	score := float64(100)
	switch {
	case years < band.MinYears:
		score = 100 - e.decay()*float64(band.MinYears-years)
	case band.MaxYears > 0 && years > band.MaxYears:
		score = 100 - e.decay()*float64(years-band.MaxYears)
	}
	f.ExperienceMatch = clamp(score, 0, 100)
}

func (e Extractor) extractRole(f *Features, c candidate.Profile, j job.Job) {
	cur := search.Normalize(c.CurrentRole)
	des := search.Normalize(c.DesiredRole)
	title := search.Normalize(j.Title)

	if (cur == "" && des == "") || title == "" {
		f.RoleMatch = neutralScore
		f.NeutralDims++
		return
	}

	titleTokens := search.Tokens(title)
	best := 0.0
	if cur != "" {
		best = search.Jaccard(search.Tokens(cur), titleTokens)
	}
	if des != "" {
		if v := search.Jaccard(search.Tokens(des), titleTokens); v > best {
			best = v
		}
	}
	f.RoleMatch = clamp(best*100, 0, 100)
}

func (e Extractor) extractLocation(f *Features, c candidate.Profile, j job.Job) {
	cl := search.Normalize(c.Location)
	jl := search.Normalize(j.Location)

	if cl == "" || jl == "" {
		f.LocationMatch = neutralScore
		f.NeutralDims++
		return
	}
	if cl == jl {
		f.LocationMatch = 100
		return
	}
	f.LocationMatch = 0
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
