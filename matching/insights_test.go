package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/candidate-compare/backend/models"
)

func resultWith(score int, strengths, concerns []string) models.MatchResult {
	return models.MatchResult{
		MatchScore: score,
		MatchDetails: models.MatchDetails{
			StrengthAreas: strengths,
			ConcernAreas:  concerns,
		},
	}
}

func TestBuildInsightsEmpty(t *testing.T) {
	insights := BuildInsights(nil)

	assert.Zero(t, insights.TotalCandidates)
	assert.Zero(t, insights.AverageMatch)
	assert.Empty(t, insights.CommonStrengths)
	assert.Empty(t, insights.CommonWeaknesses)
	assert.Empty(t, insights.Recommendations)
}

func TestBuildInsightsTiersAndAverage(t *testing.T) {
	results := []models.MatchResult{
		resultWith(95, nil, nil),
		resultWith(90, nil, nil),
		resultWith(85, nil, nil),
		resultWith(72, nil, nil),
		resultWith(40, nil, nil),
	}

	insights := BuildInsights(results)

	assert.Equal(t, 5, insights.TotalCandidates)
	assert.Equal(t, models.TierDistribution{Excellent: 2, Good: 1, Fair: 1, Poor: 1}, insights.Distribution)
	// (95+90+85+72+40)/5 = 76.4, rounds to 76
	assert.Equal(t, 76, insights.AverageMatch)
}

func TestBuildInsightsTopAreas(t *testing.T) {
	results := []models.MatchResult{
		resultWith(80, []string{"Skills match: React", "Rich project experience"}, []string{"Skills to strengthen: CSS"}),
		resultWith(75, []string{"Skills match: React"}, []string{"Skills to strengthen: CSS", "Insufficient work experience"}),
		resultWith(70, []string{"Skills match: React", "Sufficient work experience", "Strong communication"}, nil),
		resultWith(65, []string{"Another strength"}, nil),
	}

	insights := BuildInsights(results)

	// top 3 by count, alphabetical on ties
	assert.Equal(t, []models.AreaCount{
		{Area: "Skills match: React", Count: 3},
		{Area: "Another strength", Count: 1},
		{Area: "Rich project experience", Count: 1},
	}, insights.CommonStrengths)

	assert.Equal(t, []models.AreaCount{
		{Area: "Skills to strengthen: CSS", Count: 2},
		{Area: "Insufficient work experience", Count: 1},
	}, insights.CommonWeaknesses)
}

func TestBuildInsightsRecommendations(t *testing.T) {
	excellent := BuildInsights([]models.MatchResult{resultWith(92, nil, nil)})
	assert.Contains(t, excellent.Recommendations[0], "excellent")

	low := BuildInsights([]models.MatchResult{resultWith(50, nil, nil), resultWith(55, nil, nil)})
	assert.Len(t, low.Recommendations, 1)
	assert.Contains(t, low.Recommendations[0], "relaxing some requirements")

	good := BuildInsights([]models.MatchResult{resultWith(85, nil, nil)})
	assert.Contains(t, good.Recommendations[0], "good match")
}
