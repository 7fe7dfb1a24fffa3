package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candidate-compare/backend/models"
)

func TestSetAndGetJDCopies(t *testing.T) {
	store := NewMemoryStore()
	jd := &models.JobDescription{ID: "jd_1", Title: "Backend Developer"}

	store.SetJD(jd)
	jd.Title = "mutated"

	got := store.GetJD()
	require.NotNil(t, got)
	assert.Equal(t, "Backend Developer", got.Title)

	// reads are copies too
	got.Title = "mutated again"
	assert.Equal(t, "Backend Developer", store.GetJD().Title)
}

func TestSetJDNilClears(t *testing.T) {
	store := NewMemoryStore()
	store.SetJD(&models.JobDescription{ID: "jd_1"})

	store.SetJD(nil)
	assert.Nil(t, store.GetJD())
}

func TestClearJD(t *testing.T) {
	store := NewMemoryStore()
	store.SetJD(&models.JobDescription{ID: "jd_1"})

	store.ClearJD()
	assert.Nil(t, store.GetJD())
}

func TestCandidateLookup(t *testing.T) {
	store := NewMemoryStore()
	store.SetCandidates([]models.Candidate{
		{ID: "cand_001", Profile: models.Profile{Name: "A"}},
		{ID: "cand_002", Profile: models.Profile{Name: "B"}},
	})

	got, ok := store.GetCandidateByID("cand_002")
	require.True(t, ok)
	assert.Equal(t, "B", got.Profile.Name)

	_, ok = store.GetCandidateByID("cand_404")
	assert.False(t, ok)
}

func TestUpdateCandidate(t *testing.T) {
	store := NewMemoryStore()
	store.SetCandidates([]models.Candidate{{ID: "cand_001"}})

	updated := models.Candidate{
		ID:       "would-be-overwritten",
		Profile:  models.Profile{Name: "Renamed"},
		Matching: &models.MatchingState{CoreSkillMatchPct: 88},
	}
	require.NoError(t, store.UpdateCandidate("cand_001", updated))

	got, ok := store.GetCandidateByID("cand_001")
	require.True(t, ok)
	// the path id wins over whatever the record carries
	assert.Equal(t, "cand_001", got.ID)
	assert.Equal(t, "Renamed", got.Profile.Name)
	assert.Equal(t, 88, got.Matching.CoreSkillMatchPct)

	assert.Error(t, store.UpdateCandidate("cand_404", updated))
}

func TestClearAndStatus(t *testing.T) {
	store := NewMemoryStore()
	store.SetJD(&models.JobDescription{ID: "jd_1"})
	store.SetCandidates([]models.Candidate{{ID: "cand_001"}})

	status := store.Status()
	assert.True(t, status.HasJD)
	assert.Equal(t, 1, status.CandidatesCount)

	store.Clear()
	status = store.Status()
	assert.False(t, status.HasJD)
	assert.Zero(t, status.CandidatesCount)
}

func TestSetDemoJD(t *testing.T) {
	store := NewMemoryStore()
	store.SetDemoJD()

	jd := store.GetJD()
	require.NotNil(t, jd)
	assert.Equal(t, "jd_demo", jd.ID)
	assert.Equal(t, "Senior Frontend Developer", jd.Title)
	require.NotNil(t, jd.Experience)
	assert.Equal(t, 3.0, jd.Experience.Min)
	assert.NotEmpty(t, jd.Skills)
	assert.NotEmpty(t, jd.Requirements)
}
