package models

import (
	"encoding/json"
	"time"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// Gemini occasionally returns a bare string where the prompt asked for a list.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// ExperienceRequirement describes the years of experience a JD asks for.
// Min of 0 means the JD does not constrain experience.
type ExperienceRequirement struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Salary represents a salary range extracted from a JD
type Salary struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// JobDescription is the structured form of a parsed job description.
// Exactly one JD is current at a time; the scoring engine treats a nil JD
// as a precondition failure.
type JobDescription struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Company          string                 `json:"company,omitempty"`
	Location         string                 `json:"location,omitempty"`
	WorkType         string                 `json:"workType,omitempty"` // full-time, part-time, contract, intern
	Experience       *ExperienceRequirement `json:"experience,omitempty"`
	Education        string                 `json:"education,omitempty"`
	Skills           []string               `json:"skills,omitempty"`
	SoftSkills       FlexibleStringSlice    `json:"softSkills,omitempty"`
	Responsibilities FlexibleStringSlice    `json:"responsibilities,omitempty"`
	Requirements     FlexibleStringSlice    `json:"requirements,omitempty"`
	Salary           *Salary                `json:"salary,omitempty"`
	Benefits         FlexibleStringSlice    `json:"benefits,omitempty"`
	Description      string                 `json:"description,omitempty"`
	OriginalText     string                 `json:"originalText,omitempty"`
	ParsedAt         time.Time              `json:"parsedAt"`
}
