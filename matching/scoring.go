package matching

import (
	"math"
	"math/rand"
	"strings"

	"github.com/candidate-compare/backend/models"
)

// Jitter returns a pseudo-random value in [-span, +span]. The engine uses it
// to differentiate otherwise-tied scores when the JD carries no constraint
// for a dimension; tests inject a deterministic one.
type Jitter func(span int) int

func randJitter(span int) int {
	return rand.Intn(2*span+1) - span
}

// skillMatches reports whether a candidate skill and a required skill match
// under the symmetric case-insensitive substring rule.
func skillMatches(a, b string) bool {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)
	return strings.Contains(al, bl) || strings.Contains(bl, al)
}

// findMatchedSkills returns the candidate skills that match at least one
// required skill. The count of matched skills drives the skills sub-score.
func findMatchedSkills(candidateSkills, requiredSkills []string) []string {
	matched := []string{}
	for _, skill := range candidateSkills {
		for _, req := range requiredSkills {
			if skillMatches(skill, req) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}

// findMissingSkills returns the required skills no candidate skill matches
func findMissingSkills(candidateSkills, requiredSkills []string) []string {
	missing := []string{}
	for _, req := range requiredSkills {
		found := false
		for _, skill := range candidateSkills {
			if skillMatches(skill, req) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// skillsScore computes the 0-100 skills sub-score. Without required skills
// the score rewards the size of the candidate's skill list, jittered so that
// unconstrained JDs still rank candidates apart.
func (e *Engine) skillsScore(candidateSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		base := min(70+3*len(candidateSkills), 95)
		return max(base+e.jitter(5), 60)
	}

	matched := findMatchedSkills(candidateSkills, requiredSkills)
	pct := float64(len(matched)) / float64(len(requiredSkills)) * 100
	return min(int(math.Round(pct)), 100)
}

// experienceScore computes the experience sub-score from the candidate's
// most recent position duration in months.
func (e *Engine) experienceScore(durationMonths int, required *models.ExperienceRequirement) int {
	candidateYears := float64(durationMonths) / 12

	if required == nil || required.Min == 0 {
		base := math.Min(60+candidateYears*15, 90)
		return int(math.Round(base)) + e.jitter(4)
	}

	if candidateYears >= required.Min {
		// Exceeding the requirement earns a bonus proportional to the excess
		bonus := math.Min((candidateYears-required.Min)*5, 20)
		return int(math.Round(math.Min(90+bonus, 100)))
	}

	// Below the requirement the penalty is a strict linear ratio
	return int(math.Round(candidateYears / required.Min * 80))
}

// educationScore compares degree levels. The only dimension with a flat
// default when the JD is silent.
func (e *Engine) educationScore(candidateDegree, requiredDegree string) int {
	if requiredDegree == "" {
		return 85
	}

	candidateLevel := educationLevel(candidateDegree)
	requiredLevel := educationLevel(requiredDegree)

	if candidateLevel >= requiredLevel {
		return min(90+5*(candidateLevel-requiredLevel), 100)
	}
	return int(math.Round(float64(candidateLevel) / float64(requiredLevel) * 75))
}

// educationLevel classifies a degree string by case-insensitive substring.
// Unrecognized or absent degrees default to bachelor level.
func educationLevel(degree string) int {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "bachelor"):
		return 3
	case strings.Contains(d, "master"):
		return 4
	case strings.Contains(d, "phd"), strings.Contains(d, "doctorate"):
		return 5
	case strings.Contains(d, "diploma"):
		return 2
	case strings.Contains(d, "high school"):
		return 1
	default:
		return 3
	}
}

// projectsScore rewards project count and technology diversity. Requirement
// text is never compared to project content; only its presence selects the
// formula branch.
func (e *Engine) projectsScore(projects []models.Project, requirements []string) int {
	if len(projects) == 0 {
		return 50
	}

	uniqueTechs := map[string]struct{}{}
	for _, project := range projects {
		for _, tech := range project.Technologies {
			uniqueTechs[strings.ToLower(tech)] = struct{}{}
		}
	}

	if len(requirements) == 0 {
		diversityScore := min(8*len(uniqueTechs), 50)
		quantityScore := min(12*len(projects), 40)
		return max(diversityScore+quantityScore+e.jitter(5), 60)
	}

	diversityScore := min(10*len(uniqueTechs), 60)
	quantityScore := min(15*len(projects), 40)
	return diversityScore + quantityScore
}

// compositeScore is the weighted overall score. Only the final sum is
// rounded; the weights sum to 1.0.
func compositeScore(b models.Breakdown) int {
	return int(math.Round(
		0.45*float64(b.Skills) +
			0.30*float64(b.Experience) +
			0.05*float64(b.Education) +
			0.20*float64(b.Projects)))
}
