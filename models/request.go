package models

import "time"

// ErrorResponse represents an API error response
// @Description Standard error response with a stable machine-readable code
type ErrorResponse struct {
	Error string `json:"error" example:"Candidate does not exist"`
	Code  string `json:"code" example:"CANDIDATE_NOT_FOUND"`
}

// SuccessResponse is the standard success envelope
// @Description Standard success envelope
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Match analysis complete"`
	Data    interface{} `json:"data,omitempty"`
}

// ParseJDRequest represents a JD parse request
// @Description Raw job description text to parse
type ParseJDRequest struct {
	JDText string `json:"jdText" binding:"required" example:"We are hiring a Senior Frontend Developer..."`
}

// JDStatus reports whether a JD is currently loaded
type JDStatus struct {
	HasJD    bool       `json:"hasJD"`
	ParsedAt *time.Time `json:"parsedAt,omitempty"`
	Title    string     `json:"title,omitempty"`
	Company  string     `json:"company,omitempty"`
}

// CandidateSummary is the trimmed candidate projection for list views
type CandidateSummary struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Initials   string      `json:"initials,omitempty"`
	Title      string      `json:"title"`
	Experience string      `json:"experience"`
	Location   string      `json:"location,omitempty"`
	TopSkills  []CoreSkill `json:"topSkills"`
	MatchPct   int         `json:"match_pct"`
}

// SkillCount is one entry of the skill-frequency overview
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// CandidateStats is the candidate pool overview
type CandidateStats struct {
	Total           int            `json:"total"`
	AvgExperience   float64        `json:"avgExperience"` // years, one decimal
	TopSkills       []SkillCount   `json:"topSkills"`
	Locations       map[string]int `json:"locations"`
	EducationLevels map[string]int `json:"educationLevels"`
}

// HealthResponse represents the health check response
// @Description Server health status including collaborator probes
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Data      StoreStatus       `json:"data"`
}

// StoreStatus reports what the in-memory store currently holds
type StoreStatus struct {
	HasJD           bool      `json:"hasJD"`
	CandidatesCount int       `json:"candidatesCount"`
	LastUpdated     time.Time `json:"lastUpdated"`
}
