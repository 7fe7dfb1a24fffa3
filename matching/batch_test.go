package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candidate-compare/backend/models"
)

func TestBatchMatchNoJD(t *testing.T) {
	store := &fakeStore{candidates: []models.Candidate{testCandidate("cand_001")}}
	e := newEngineWith(store, &fakeAI{questions: []string{"q"}})

	_, err := e.BatchMatchCandidates(context.Background())
	assert.ErrorIs(t, err, ErrNoJD)
}

func TestBatchMatchEmptyPool(t *testing.T) {
	store := &fakeStore{jd: testJD()}
	e := newEngineWith(store, &fakeAI{questions: []string{"q"}})

	results, err := e.BatchMatchCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchMatchDropsFailedCandidate(t *testing.T) {
	store := &fakeStore{
		jd: testJD(),
		candidates: []models.Candidate{
			testCandidate("cand_001"),
			testCandidate("cand_002"),
			testCandidate("cand_003"),
			testCandidate("cand_004"),
		},
		// listed in the pool but gone on point lookup, as if removed mid-batch
		hidden: map[string]bool{"cand_003": true},
	}
	e := newEngineWith(store, &fakeAI{questions: []string{"q"}})

	results, err := e.BatchMatchCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, result := range results {
		assert.NotEqual(t, "cand_003", result.CandidateID)
	}
}

func TestBatchMatchSortsByScoreThenID(t *testing.T) {
	strong := testCandidate("cand_b")
	weak := testCandidate("cand_a")
	weak.Skills = models.SkillSet{CoreSkills: []models.CoreSkill{{Name: "Cobol"}}}
	weak.Projects = nil

	// identical records score identically, so ids break the tie
	tied1 := testCandidate("cand_z")
	tied2 := testCandidate("cand_y")

	store := &fakeStore{
		jd:         testJD(),
		candidates: []models.Candidate{weak, tied1, strong, tied2},
	}
	e := newEngineWith(store, &fakeAI{questions: []string{"q"}})

	results, err := e.BatchMatchCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		assert.True(t, prev.MatchScore > cur.MatchScore ||
			(prev.MatchScore == cur.MatchScore && prev.CandidateID < cur.CandidateID),
			"results not ordered at index %d", i)
	}
	assert.Equal(t, "cand_a", results[len(results)-1].CandidateID)
}
