package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candidate-compare/backend/data"
)

func seedMatchState(app *testApp) {
	app.store.SetDemoJD()
	app.store.SetCandidates(data.SampleCandidates())
}

func TestCalculateMatchNoJD(t *testing.T) {
	app := newTestApp()
	app.store.SetCandidates(data.SampleCandidates())

	rec := app.do(t, http.MethodPost, "/api/match/cand_001", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_JD_DATA", decodeBody(t, rec)["code"])
}

func TestCalculateMatchUnknownCandidate(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodPost, "/api/match/cand_404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestCalculateMatchSuccess(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodPost, "/api/match/cand_001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	result := body["data"].(map[string]any)
	assert.Equal(t, "cand_001", result["candidateId"])
	assert.Equal(t, "Sarah Chen", result["candidateName"])
	assert.Greater(t, result["matchScore"].(float64), 0.0)
	assert.Len(t, result["interviewQuestions"], 3)
}

func TestBatchMatchNoCandidates(t *testing.T) {
	app := newTestApp()
	app.store.SetDemoJD()

	rec := app.do(t, http.MethodGet, "/api/match/batch/all", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_CANDIDATES", decodeBody(t, rec)["code"])
}

func TestBatchMatchSuccess(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/batch/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	results := payload["results"].([]any)
	require.Len(t, results, 5)

	// sorted descending by score
	prev := 101.0
	for _, raw := range results {
		score := raw.(map[string]any)["matchScore"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}

	summary := payload["summary"].(map[string]any)
	assert.Equal(t, float64(5), summary["totalCandidates"])
	assert.Greater(t, summary["averageScore"].(float64), 0.0)
	top := summary["topMatch"].(map[string]any)
	assert.Equal(t, results[0].(map[string]any)["candidateId"], top["candidateId"])
}

func TestTopMatchesLimitClamp(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/ranking/top?limit=20", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	matches := payload["topMatches"].([]any)
	// clamp is 10; only 5 candidates exist
	assert.Len(t, matches, 5)
	assert.Equal(t, float64(5), payload["total"])

	first := matches[0].(map[string]any)
	assert.NotEmpty(t, first["candidateId"])
	topSkills := first["topSkills"].([]any)
	assert.LessOrEqual(t, len(topSkills), 3)
}

func TestTopMatchesDefaultLimit(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/ranking/top?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, payload["topMatches"].([]any), 2)
}

func TestCompareCandidates(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/comparison/cand_001/cand_005", "")
	require.Equal(t, http.StatusOK, rec.Code)

	comparison := decodeBody(t, rec)["data"].(map[string]any)
	first := comparison["candidate1"].(map[string]any)
	second := comparison["candidate2"].(map[string]any)
	assert.Equal(t, "cand_001", first["id"])
	assert.Equal(t, "cand_005", second["id"])

	analysis := comparison["analysis"].(map[string]any)
	diff := analysis["scoreDifference"].(float64)
	assert.GreaterOrEqual(t, diff, 0.0)
	assert.NotEmpty(t, analysis["strongerCandidate"])
}

func TestCompareCandidatesUnknown(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/comparison/cand_001/cand_404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestMatchInsightsNoData(t *testing.T) {
	app := newTestApp()
	app.store.SetDemoJD()

	rec := app.do(t, http.MethodGet, "/api/match/insights", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INSUFFICIENT_DATA", decodeBody(t, rec)["code"])
}

func TestMatchInsightsSuccess(t *testing.T) {
	app := newTestApp()
	seedMatchState(app)

	rec := app.do(t, http.MethodGet, "/api/match/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)

	insights := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(5), insights["totalCandidates"])
	assert.Greater(t, insights["averageMatch"].(float64), 0.0)
	assert.NotNil(t, insights["distribution"])
}
