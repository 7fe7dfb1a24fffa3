package models

import "time"

// Breakdown holds the four per-dimension sub-scores, each 0-100
type Breakdown struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Projects   int `json:"projects"`
}

// MatchDetails lists the skill-level evidence behind a match score
type MatchDetails struct {
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	StrengthAreas []string `json:"strengthAreas"`
	ConcernAreas  []string `json:"concernAreas"`
}

// MatchResult is the output of one candidate/JD match computation
type MatchResult struct {
	CandidateID        string       `json:"candidateId"`
	CandidateName      string       `json:"candidateName"`
	MatchScore         int          `json:"matchScore"`
	Breakdown          Breakdown    `json:"breakdown"`
	InterviewQuestions []string     `json:"interviewQuestions"`
	MatchDetails       MatchDetails `json:"matchDetails"`
	GeneratedAt        time.Time    `json:"generatedAt"`
}

// BatchSummary accompanies a batch match response
type BatchSummary struct {
	TotalCandidates int          `json:"totalCandidates"`
	AverageScore    int          `json:"averageScore"`
	TopMatch        *MatchResult `json:"topMatch,omitempty"`
	Processed       time.Time    `json:"processed"`
}

// TopMatch is the trimmed projection returned by the ranking endpoint
type TopMatch struct {
	CandidateID   string   `json:"candidateId"`
	CandidateName string   `json:"candidateName"`
	MatchScore    int      `json:"matchScore"`
	KeyStrengths  []string `json:"keyStrengths"`
	TopSkills     []string `json:"topSkills"`
}

// ComparisonSide is one candidate's half of a two-way comparison
type ComparisonSide struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MatchScore int       `json:"matchScore"`
	Breakdown  Breakdown `json:"breakdown"`
}

// ComparisonAnalysis summarizes the difference between two candidates
type ComparisonAnalysis struct {
	ScoreDifference   int       `json:"scoreDifference"`
	StrongerCandidate string    `json:"strongerCandidate"`
	Comparison        Breakdown `json:"comparison"` // signed per-dimension deltas
}

// Comparison is the full two-candidate comparison response
type Comparison struct {
	Candidate1 ComparisonSide     `json:"candidate1"`
	Candidate2 ComparisonSide     `json:"candidate2"`
	Analysis   ComparisonAnalysis `json:"analysis"`
}

// TierDistribution counts match results per score tier
type TierDistribution struct {
	Excellent int `json:"excellent"` // >= 90
	Good      int `json:"good"`      // [80, 90)
	Fair      int `json:"fair"`      // [70, 80)
	Poor      int `json:"poor"`      // < 70
}

// AreaCount is one frequency-counted strength or concern area
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// MatchInsights aggregates a batch of match results for the insights endpoint
type MatchInsights struct {
	TotalCandidates  int              `json:"totalCandidates"`
	AverageMatch     int              `json:"averageMatch"`
	Distribution     TierDistribution `json:"distribution"`
	CommonStrengths  []AreaCount      `json:"commonStrengths"`
	CommonWeaknesses []AreaCount      `json:"commonWeaknesses"`
	Recommendations  []string         `json:"recommendations"`
}
