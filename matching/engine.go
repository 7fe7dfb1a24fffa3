package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/candidate-compare/backend/gemini"
	"github.com/candidate-compare/backend/models"
)

// Precondition errors, surfaced to callers with stable HTTP mappings
var (
	ErrNoJD              = errors.New("no JD loaded, parse a JD first")
	ErrCandidateNotFound = errors.New("candidate does not exist")
)

// Store is the candidate/JD storage the engine reads and writes through
type Store interface {
	GetJD() *models.JobDescription
	GetCandidates() []models.Candidate
	GetCandidateByID(id string) (*models.Candidate, bool)
	UpdateCandidate(id string, candidate models.Candidate) error
}

// QuestionGenerator is the external AI collaborator. Its failures are
// recoverable: the engine substitutes fallback questions and never
// propagates the error.
type QuestionGenerator interface {
	GenerateInterviewQuestions(ctx context.Context, jd *models.JobDescription, candidate *models.Candidate) (*gemini.QuestionsResponse, error)
}

// Engine computes candidate/JD match scores. It is an explicit object
// rather than a package-level singleton so tests can isolate state.
type Engine struct {
	store     Store
	ai        QuestionGenerator
	logger    *zap.Logger
	aiTimeout time.Duration
	jitter    Jitter
	now       func() time.Time
}

// NewEngine creates a matching engine over the given store and AI client
func NewEngine(store Store, ai QuestionGenerator, logger *zap.Logger, aiTimeout time.Duration) *Engine {
	return &Engine{
		store:     store,
		ai:        ai,
		logger:    logger,
		aiTimeout: aiTimeout,
		jitter:    randJitter,
		now:       time.Now,
	}
}

// fallbackQuestions returns the generic interview questions used when the
// AI collaborator is unavailable.
func fallbackQuestions() []string {
	return []string{
		"Tell me about your experience with the key technologies mentioned in this role.",
		"How do you approach learning new technologies that you haven't worked with before?",
		"Describe a challenging project you've worked on and how you overcame obstacles.",
		"What interests you most about this position and our company?",
	}
}

// CalculateMatch scores one candidate against the current JD, generates or
// reuses interview questions, writes the match state back onto the stored
// candidate record, and returns the assembled result.
func (e *Engine) CalculateMatch(ctx context.Context, candidateID string) (*models.MatchResult, error) {
	candidate, ok := e.store.GetCandidateByID(candidateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
	}

	jd := e.store.GetJD()
	if jd == nil {
		return nil, ErrNoJD
	}

	skillNames := candidate.CoreSkillNames()

	breakdown := models.Breakdown{
		Skills:     e.skillsScore(skillNames, jd.Skills),
		Experience: e.experienceScore(candidate.FirstExperienceMonths(), jd.Experience),
		Education:  e.educationScore(candidate.FirstDegree(), jd.Education),
		Projects:   e.projectsScore(candidate.Projects, jd.Requirements),
	}
	overall := compositeScore(breakdown)

	questions := e.interviewQuestions(ctx, jd, candidate)

	strengthAreas := candidate.Matching.CuratedStrengths()
	if len(strengthAreas) == 0 {
		strengthAreas = identifyStrengthAreas(candidate, jd)
	}
	concernAreas := candidate.Matching.CuratedGaps()
	if len(concernAreas) == 0 {
		concernAreas = identifyConcernAreas(candidate, jd)
	}

	now := e.now().UTC()
	result := &models.MatchResult{
		CandidateID:        candidate.ID,
		CandidateName:      candidate.Profile.Name,
		MatchScore:         overall,
		Breakdown:          breakdown,
		InterviewQuestions: questions,
		MatchDetails: models.MatchDetails{
			MatchedSkills: findMatchedSkills(skillNames, jd.Skills),
			MissingSkills: findMissingSkills(skillNames, jd.Skills),
			StrengthAreas: strengthAreas,
			ConcernAreas:  concernAreas,
		},
		GeneratedAt: now,
	}

	// Write the match state back onto the candidate record. Curated
	// strengths/gaps survive the replace so they keep winning on reuse.
	state := &models.MatchingState{
		CoreSkillMatchPct:    overall,
		JDID:                 jd.ID,
		AISuggestedQuestions: questions,
		LastUpdated:          now,
		Breakdown:            &breakdown,
		StrengthAreas:        strengthAreas,
		ConcernAreas:         concernAreas,
	}
	if prev := candidate.Matching; prev != nil {
		state.Strengths = prev.Strengths
		state.Gaps = prev.Gaps
	}
	candidate.Matching = state

	if err := e.store.UpdateCandidate(candidate.ID, *candidate); err != nil {
		// Last-writer-wins store; losing the writeback is not fatal to the call
		e.logger.Warn("failed to persist match state",
			zap.String("candidate", candidate.ID), zap.Error(err))
	}

	return result, nil
}

// interviewQuestions reuses cached questions when they were generated
// against the current JD; otherwise it calls the AI collaborator, falling
// back to the generic set on any failure.
func (e *Engine) interviewQuestions(ctx context.Context, jd *models.JobDescription, candidate *models.Candidate) []string {
	if m := candidate.Matching; m != nil && m.JDID == jd.ID && len(m.AISuggestedQuestions) > 0 {
		return m.AISuggestedQuestions
	}

	qctx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	resp, err := e.ai.GenerateInterviewQuestions(qctx, jd, candidate)
	if err != nil {
		e.logger.Warn("AI question generation failed, using fallback questions",
			zap.String("candidate", candidate.ID), zap.Error(err))
		return fallbackQuestions()
	}
	return resp.Questions
}

// identifyStrengthAreas derives human-readable strengths from the match
func identifyStrengthAreas(candidate *models.Candidate, jd *models.JobDescription) []string {
	strengths := []string{}

	matched := findMatchedSkills(candidate.CoreSkillNames(), jd.Skills)
	if len(matched) > 0 {
		strengths = append(strengths, "Skills match: "+strings.Join(matched, ", "))
	}

	candidateYears := candidate.FirstExperienceMonths() / 12
	if jd.Experience != nil && float64(candidateYears) >= jd.Experience.Min {
		strengths = append(strengths, fmt.Sprintf("Sufficient work experience: %d years", candidateYears))
	}

	if len(candidate.Projects) > 2 {
		strengths = append(strengths, fmt.Sprintf("Rich project experience: %d projects", len(candidate.Projects)))
	}

	return strengths
}

// identifyConcernAreas derives human-readable concerns from the match
func identifyConcernAreas(candidate *models.Candidate, jd *models.JobDescription) []string {
	concerns := []string{}

	missing := findMissingSkills(candidate.CoreSkillNames(), jd.Skills)
	if len(missing) > 0 {
		concerns = append(concerns, "Skills to strengthen: "+strings.Join(missing, ", "))
	}

	candidateYears := candidate.FirstExperienceMonths() / 12
	if jd.Experience != nil && float64(candidateYears) < jd.Experience.Min {
		concerns = append(concerns, fmt.Sprintf("Insufficient work experience: %g years required, %d years current",
			jd.Experience.Min, candidateYears))
	}

	return concerns
}
