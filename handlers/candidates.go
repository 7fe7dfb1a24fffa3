package handlers

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/data"
	"github.com/candidate-compare/backend/models"
	"github.com/candidate-compare/backend/storage"
)

// CandidateHandler serves the candidate pool endpoints
type CandidateHandler struct {
	store  *storage.MemoryStore
	logger *zap.Logger
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(store *storage.MemoryStore, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{store: store, logger: logger}
}

// ImportSampleCandidates replaces the candidate pool with the built-in set
// @Summary Import sample candidates
// @Description Replace the candidate pool with the built-in sample set
// @Tags Candidates
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /api/candidates/import [post]
func (h *CandidateHandler) ImportSampleCandidates(c *gin.Context) {
	candidates := data.SampleCandidates()
	h.store.SetCandidates(candidates)
	h.logger.Info("sample candidates imported", zap.Int("count", len(candidates)))

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Imported %d candidates", len(candidates)),
		Data:    gin.H{"count": len(candidates)},
	})
}

// ListCandidates returns the candidate pool, full or as summaries
// @Summary List candidates
// @Description List all candidates. With summary=true returns a trimmed projection per candidate.
// @Tags Candidates
// @Produce json
// @Param summary query bool false "Return trimmed summaries instead of full records"
// @Success 200 {object} models.SuccessResponse
// @Router /api/candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	candidates := h.store.GetCandidates()

	if c.Query("summary") == "true" {
		summaries := make([]models.CandidateSummary, 0, len(candidates))
		for i := range candidates {
			summaries = append(summaries, summarize(&candidates[i]))
		}
		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data:    gin.H{"candidates": summaries, "total": len(summaries)},
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    gin.H{"candidates": candidates, "total": len(candidates)},
	})
}

// GetCandidate returns one candidate by id
// @Summary Get a candidate
// @Tags Candidates
// @Produce json
// @Param candidateId path string true "Candidate ID"
// @Success 200 {object} models.SuccessResponse{data=models.Candidate}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/candidates/{candidateId} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, ok := h.store.GetCandidateByID(c.Param("candidateId"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Candidate does not exist",
			Code:  "CANDIDATE_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    candidate,
	})
}

// ClearCandidates drops the whole candidate pool
// @Summary Delete all candidates
// @Tags Candidates
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /api/candidates [delete]
func (h *CandidateHandler) ClearCandidates(c *gin.Context) {
	h.store.SetCandidates(nil)
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "All candidates removed",
	})
}

// CandidateStats aggregates the candidate pool into an overview
// @Summary Get candidate pool statistics
// @Description Aggregate counts, average experience, top skills, locations, and education levels
// @Tags Candidates
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.CandidateStats}
// @Router /api/candidates/stats/overview [get]
func (h *CandidateHandler) CandidateStats(c *gin.Context) {
	candidates := h.store.GetCandidates()

	stats := models.CandidateStats{
		Total:           len(candidates),
		TopSkills:       []models.SkillCount{},
		Locations:       map[string]int{},
		EducationLevels: map[string]int{},
	}

	if len(candidates) > 0 {
		totalMonths := 0
		skillCounts := map[string]int{}
		for i := range candidates {
			cand := &candidates[i]
			totalMonths += cand.FirstExperienceMonths()
			for _, skill := range cand.Skills.CoreSkills {
				skillCounts[skill.Name]++
			}
			if city := cand.Profile.Location.City; city != "" {
				stats.Locations[city]++
			}
			if degree := cand.FirstDegree(); degree != "" {
				stats.EducationLevels[degree]++
			}
		}

		years := float64(totalMonths) / 12 / float64(len(candidates))
		stats.AvgExperience = math.Round(years*10) / 10
		stats.TopSkills = topSkills(skillCounts, 5)
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    stats,
	})
}

// summarize builds the trimmed list projection for one candidate
func summarize(candidate *models.Candidate) models.CandidateSummary {
	summary := models.CandidateSummary{
		ID:         candidate.ID,
		Name:       candidate.Profile.Name,
		Initials:   candidate.Profile.Initials,
		Experience: "No experience",
		TopSkills:  candidate.Skills.CoreSkills,
	}

	if len(candidate.Experience) > 0 {
		summary.Title = candidate.Experience[0].Title
		summary.Experience = candidate.Experience[0].Duration
	} else if len(candidate.Education) > 0 {
		summary.Title = candidate.Education[0].Degree
	}

	loc := candidate.Profile.Location
	if loc.City != "" && loc.Country != "" {
		summary.Location = loc.City + ", " + loc.Country
	} else {
		summary.Location = loc.City + loc.Country
	}

	if len(summary.TopSkills) > 3 {
		summary.TopSkills = summary.TopSkills[:3]
	}
	if candidate.Matching != nil {
		summary.MatchPct = candidate.Matching.CoreSkillMatchPct
	}

	return summary
}

// topSkills returns the n most common skills, alphabetical on tied counts
func topSkills(counts map[string]int, n int) []models.SkillCount {
	skills := make([]models.SkillCount, 0, len(counts))
	for skill, count := range counts {
		skills = append(skills, models.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Count != skills[j].Count {
			return skills[i].Count > skills[j].Count
		}
		return strings.ToLower(skills[i].Skill) < strings.ToLower(skills[j].Skill)
	})
	if len(skills) > n {
		skills = skills[:n]
	}
	return skills
}
