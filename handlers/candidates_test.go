package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSampleCandidates(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodPost, "/api/candidates/import", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(5), payload["count"])
	assert.Len(t, app.store.GetCandidates(), 5)
}

func TestListCandidates(t *testing.T) {
	app := newTestApp()
	app.do(t, http.MethodPost, "/api/candidates/import", "")

	rec := app.do(t, http.MethodGet, "/api/candidates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(5), payload["total"])
	candidates := payload["candidates"].([]any)
	first := candidates[0].(map[string]any)
	// full records carry the nested profile
	assert.NotNil(t, first["profile"])
}

func TestListCandidateSummaries(t *testing.T) {
	app := newTestApp()
	app.do(t, http.MethodPost, "/api/candidates/import", "")

	rec := app.do(t, http.MethodGet, "/api/candidates?summary=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	summaries := payload["candidates"].([]any)
	require.Len(t, summaries, 5)

	first := summaries[0].(map[string]any)
	assert.Equal(t, "cand_001", first["id"])
	assert.Equal(t, "Sarah Chen", first["name"])
	assert.Equal(t, "Frontend Developer Intern", first["title"])
	assert.Equal(t, "Auckland, NZ", first["location"])
	assert.LessOrEqual(t, len(first["topSkills"].([]any)), 3)

	// no experience entries falls back to the degree and a placeholder
	fourth := summaries[3].(map[string]any)
	assert.Equal(t, "Diploma in Web Development", fourth["title"])
	assert.Equal(t, "No experience", fourth["experience"])
}

func TestGetCandidate(t *testing.T) {
	app := newTestApp()
	app.do(t, http.MethodPost, "/api/candidates/import", "")

	rec := app.do(t, http.MethodGet, "/api/candidates/cand_003", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "cand_003", payload["id"])

	rec = app.do(t, http.MethodGet, "/api/candidates/cand_404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestClearCandidates(t *testing.T) {
	app := newTestApp()
	app.do(t, http.MethodPost, "/api/candidates/import", "")

	rec := app.do(t, http.MethodDelete, "/api/candidates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, app.store.GetCandidates())
}

func TestCandidateStatsEmptyPool(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodGet, "/api/candidates/stats/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(0), payload["total"])
	assert.Empty(t, payload["topSkills"])
}

func TestCandidateStats(t *testing.T) {
	app := newTestApp()
	app.do(t, http.MethodPost, "/api/candidates/import", "")

	rec := app.do(t, http.MethodGet, "/api/candidates/stats/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(5), payload["total"])

	// (3+18+48+0+66) months / 12 / 5 = 2.25 years, rounded to one decimal
	assert.Equal(t, 2.3, payload["avgExperience"])

	topSkills := payload["topSkills"].([]any)
	require.Len(t, topSkills, 5)
	first := topSkills[0].(map[string]any)
	// CSS, JavaScript, React, and TypeScript all appear 3 times; CSS sorts first
	assert.Equal(t, "CSS", first["skill"])
	assert.Equal(t, float64(3), first["count"])

	locations := payload["locations"].(map[string]any)
	assert.Equal(t, float64(3), locations["Auckland"])
	assert.Equal(t, float64(1), locations["Wellington"])
	assert.Equal(t, float64(1), locations["Christchurch"])

	levels := payload["educationLevels"].(map[string]any)
	assert.Equal(t, float64(1), levels["Master of Computer Science"])
}
