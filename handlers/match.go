package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/matching"
	"github.com/candidate-compare/backend/models"
)

// MatchHandler serves the match analysis endpoints
type MatchHandler struct {
	engine *matching.Engine
	logger *zap.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(engine *matching.Engine, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{engine: engine, logger: logger}
}

// CalculateMatch scores one candidate against the current JD
// @Summary Calculate a single candidate match
// @Description Score a candidate against the currently loaded JD and generate interview questions
// @Tags Matching
// @Produce json
// @Param candidateId path string true "Candidate ID"
// @Success 200 {object} models.SuccessResponse{data=models.MatchResult}
// @Failure 400 {object} models.ErrorResponse "No JD loaded"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/match/{candidateId} [post]
func (h *MatchHandler) CalculateMatch(c *gin.Context) {
	candidateID := c.Param("candidateId")

	result, err := h.engine.CalculateMatch(c.Request.Context(), candidateID)
	if err != nil {
		h.respondMatchError(c, err, "Match analysis failed", "MATCH_ANALYSIS_FAILED")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Match analysis complete",
		Data:    result,
	})
}

// BatchMatch scores every stored candidate against the current JD
// @Summary Batch match all candidates
// @Description Score all candidates against the current JD; results sorted by match score
// @Tags Matching
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "No JD or no candidates"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/match/batch/all [get]
func (h *MatchHandler) BatchMatch(c *gin.Context) {
	results, err := h.batchResults(c)
	if err != nil {
		return
	}

	summary := models.BatchSummary{
		TotalCandidates: len(results),
		AverageScore:    averageScore(results),
		Processed:       results[0].GeneratedAt,
	}
	top := results[0]
	summary.TopMatch = &top

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Batch match analysis complete",
		Data: gin.H{
			"results": results,
			"summary": summary,
		},
	})
}

// TopMatches returns the highest-scoring candidates in a trimmed projection
// @Summary Get top candidate matches
// @Description Rank all candidates and return the top N (default 5, max 10)
// @Tags Matching
// @Produce json
// @Param limit query int false "Number of matches to return" default(5)
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "No JD or no candidates"
// @Router /api/match/ranking/top [get]
func (h *MatchHandler) TopMatches(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 10 {
		limit = 10
	}

	results, err := h.batchResults(c)
	if err != nil {
		return
	}
	if limit > len(results) {
		limit = len(results)
	}

	top := make([]models.TopMatch, 0, limit)
	for _, result := range results[:limit] {
		top = append(top, models.TopMatch{
			CandidateID:   result.CandidateID,
			CandidateName: result.CandidateName,
			MatchScore:    result.MatchScore,
			KeyStrengths:  firstN(result.MatchDetails.StrengthAreas, 2),
			TopSkills:     firstN(result.MatchDetails.MatchedSkills, 3),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Top matches retrieved",
		Data: gin.H{
			"topMatches": top,
			"total":      len(results),
		},
	})
}

// CompareCandidates scores two candidates and diffs their breakdowns
// @Summary Compare two candidates
// @Description Score two candidates against the current JD and compare them dimension by dimension
// @Tags Matching
// @Produce json
// @Param candidateId1 path string true "First candidate ID"
// @Param candidateId2 path string true "Second candidate ID"
// @Success 200 {object} models.SuccessResponse{data=models.Comparison}
// @Failure 400 {object} models.ErrorResponse "No JD loaded"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/match/comparison/{candidateId1}/{candidateId2} [get]
func (h *MatchHandler) CompareCandidates(c *gin.Context) {
	first, err := h.engine.CalculateMatch(c.Request.Context(), c.Param("candidateId1"))
	if err != nil {
		h.respondMatchError(c, err, "Comparison failed", "COMPARISON_FAILED")
		return
	}
	second, err := h.engine.CalculateMatch(c.Request.Context(), c.Param("candidateId2"))
	if err != nil {
		h.respondMatchError(c, err, "Comparison failed", "COMPARISON_FAILED")
		return
	}

	stronger := first.CandidateName
	if second.MatchScore > first.MatchScore {
		stronger = second.CandidateName
	}

	comparison := models.Comparison{
		Candidate1: comparisonSide(first),
		Candidate2: comparisonSide(second),
		Analysis: models.ComparisonAnalysis{
			ScoreDifference:   abs(first.MatchScore - second.MatchScore),
			StrongerCandidate: stronger,
			Comparison: models.Breakdown{
				Skills:     first.Breakdown.Skills - second.Breakdown.Skills,
				Experience: first.Breakdown.Experience - second.Breakdown.Experience,
				Education:  first.Breakdown.Education - second.Breakdown.Education,
				Projects:   first.Breakdown.Projects - second.Breakdown.Projects,
			},
		},
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Comparison complete",
		Data:    comparison,
	})
}

// MatchInsights aggregates the whole pool into hiring insights
// @Summary Get match insights
// @Description Aggregate all candidate matches into score tiers, common areas, and recommendations
// @Tags Matching
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.MatchInsights}
// @Failure 400 {object} models.ErrorResponse "No JD or no candidates"
// @Router /api/match/insights [get]
func (h *MatchHandler) MatchInsights(c *gin.Context) {
	results, err := h.engine.BatchMatchCandidates(c.Request.Context())
	if err != nil {
		h.respondMatchError(c, err, "Insights generation failed", "INSIGHTS_FAILED")
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Not enough match data to build insights",
			Code:  "INSUFFICIENT_DATA",
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Match insights generated",
		Data:    matching.BuildInsights(results),
	})
}

// batchResults runs the batch match and maps the shared precondition errors.
// A nil error with a written response never happens: on error the response
// has been sent and the caller must return.
func (h *MatchHandler) batchResults(c *gin.Context) ([]models.MatchResult, error) {
	results, err := h.engine.BatchMatchCandidates(c.Request.Context())
	if err != nil {
		h.respondMatchError(c, err, "Batch match failed", "BATCH_MATCH_FAILED")
		return nil, err
	}
	if len(results) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No candidates available, import candidates first",
			Code:  "NO_CANDIDATES",
		})
		return nil, errors.New("no candidates")
	}
	return results, nil
}

// respondMatchError maps engine errors onto the stable error codes
func (h *MatchHandler) respondMatchError(c *gin.Context, err error, fallbackMsg, fallbackCode string) {
	switch {
	case errors.Is(err, matching.ErrNoJD):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Please parse a JD first",
			Code:  "NO_JD_DATA",
		})
	case errors.Is(err, matching.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Candidate does not exist",
			Code:  "CANDIDATE_NOT_FOUND",
		})
	default:
		h.logger.Error("match request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fallbackMsg,
			Code:  fallbackCode,
		})
	}
}

func comparisonSide(result *models.MatchResult) models.ComparisonSide {
	return models.ComparisonSide{
		ID:         result.CandidateID,
		Name:       result.CandidateName,
		MatchScore: result.MatchScore,
		Breakdown:  result.Breakdown,
	}
}

func averageScore(results []models.MatchResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, result := range results {
		sum += result.MatchScore
	}
	return (sum + len(results)/2) / len(results)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
