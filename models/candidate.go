package models

import "time"

// Candidate is a full candidate record as imported into the store.
// The Matching field is written back by the matching engine after each
// match computation.
type Candidate struct {
	ID         string         `json:"id"`
	Profile    Profile        `json:"profile"`
	Education  []Education    `json:"education"`
	Experience []Experience   `json:"experience"`
	Projects   []Project      `json:"projects"`
	Skills     SkillSet       `json:"skills"`
	Matching   *MatchingState `json:"matching,omitempty"`
}

// Profile holds the candidate's personal and contact information
type Profile struct {
	Name         string        `json:"name"`
	Initials     string        `json:"initials,omitempty"`
	AvatarURL    string        `json:"avatar_url,omitempty"`
	Contact      Contact       `json:"contact"`
	Location     Location      `json:"location"`
	Links        Links         `json:"links,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}

// Contact holds candidate contact details
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Location holds candidate location and mobility preferences
type Location struct {
	City             string   `json:"city,omitempty"`
	Country          string   `json:"country,omitempty"`
	RemoteFriendly   bool     `json:"remote_friendly,omitempty"`
	PreferredRegions []string `json:"preferred_regions,omitempty"`
}

// Links holds candidate profile URLs
type Links struct {
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Resume    string `json:"resume,omitempty"`
}

// Availability describes when and how much the candidate can work
type Availability struct {
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	HoursPerWeek int    `json:"hours_per_week,omitempty"`
}

// Education is one education record; only the first entry's Degree feeds
// the education sub-score.
type Education struct {
	Institution        string   `json:"institution"`
	Degree             string   `json:"degree"`
	GraduationDate     string   `json:"graduation_date,omitempty"`
	GPA                float64  `json:"gpa,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
}

// Experience is one position record; only the first entry's DurationMonths
// feeds the experience sub-score.
type Experience struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Duration       string   `json:"duration,omitempty"`
	DurationMonths int      `json:"duration_months"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	Description    string   `json:"description,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

// Project is one project record; all entries feed the projects sub-score
// through project count and distinct-technology count.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// SkillSet groups candidate skills
type SkillSet struct {
	CoreSkills []CoreSkill `json:"core_skills"`
	SoftSkills []SoftSkill `json:"soft_skills,omitempty"`
}

// CoreSkill is one self-reported technical skill
type CoreSkill struct {
	Name     string   `json:"name"`
	SelfRank int      `json:"self_rank,omitempty"`
	Level    int      `json:"level,omitempty"` // 0-5
	Evidence []string `json:"evidence,omitempty"`
}

// SoftSkill is one self-reported soft skill
type SoftSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

// MatchingState is the mutable sub-record the matching engine writes back
// onto a candidate after each match computation. JDID records which JD the
// cached questions and breakdown were computed against; cached values are
// only reused while it matches the current JD. Strengths and Gaps are
// curated externally and take precedence over the derived areas.
type MatchingState struct {
	CoreSkillMatchPct    int        `json:"core_skill_match_pct"`
	JDID                 string     `json:"jd_id,omitempty"`
	AISuggestedQuestions []string   `json:"ai_suggested_questions,omitempty"`
	LastUpdated          time.Time  `json:"last_updated"`
	Breakdown            *Breakdown `json:"breakdown,omitempty"`
	StrengthAreas        []string   `json:"strengthAreas,omitempty"`
	ConcernAreas         []string   `json:"concernAreas,omitempty"`
	Strengths            []string   `json:"strengths,omitempty"`
	Gaps                 []string   `json:"gaps,omitempty"`
}

// CuratedStrengths returns externally curated strengths, nil-safe
func (m *MatchingState) CuratedStrengths() []string {
	if m == nil {
		return nil
	}
	return m.Strengths
}

// CuratedGaps returns externally curated gaps, nil-safe
func (m *MatchingState) CuratedGaps() []string {
	if m == nil {
		return nil
	}
	return m.Gaps
}

// CoreSkillNames returns the names of the candidate's core skills in order
func (c *Candidate) CoreSkillNames() []string {
	names := make([]string, 0, len(c.Skills.CoreSkills))
	for _, s := range c.Skills.CoreSkills {
		names = append(names, s.Name)
	}
	return names
}

// FirstExperienceMonths returns the duration of the first (most recent)
// position, or 0 when the candidate has no experience entries.
func (c *Candidate) FirstExperienceMonths() int {
	if len(c.Experience) == 0 {
		return 0
	}
	return c.Experience[0].DurationMonths
}

// FirstDegree returns the degree string of the first education entry,
// or "" when the candidate has none.
func (c *Candidate) FirstDegree() string {
	if len(c.Education) == 0 {
		return ""
	}
	return c.Education[0].Degree
}
