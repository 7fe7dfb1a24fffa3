package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/candidate-compare/backend/models"
)

// BuildInsights aggregates a batch of match results into tier counts,
// common strength/weakness areas, and templated recommendations.
func BuildInsights(results []models.MatchResult) models.MatchInsights {
	insights := models.MatchInsights{
		TotalCandidates:  len(results),
		CommonStrengths:  []models.AreaCount{},
		CommonWeaknesses: []models.AreaCount{},
		Recommendations:  []string{},
	}
	if len(results) == 0 {
		return insights
	}

	sum := 0
	for _, result := range results {
		sum += result.MatchScore
		switch {
		case result.MatchScore >= 90:
			insights.Distribution.Excellent++
		case result.MatchScore >= 80:
			insights.Distribution.Good++
		case result.MatchScore >= 70:
			insights.Distribution.Fair++
		default:
			insights.Distribution.Poor++
		}
	}
	average := float64(sum) / float64(len(results))
	insights.AverageMatch = int(math.Round(average))

	insights.CommonStrengths = topAreas(results, func(r models.MatchResult) []string {
		return r.MatchDetails.StrengthAreas
	})
	insights.CommonWeaknesses = topAreas(results, func(r models.MatchResult) []string {
		return r.MatchDetails.ConcernAreas
	})
	insights.Recommendations = recommendations(insights.Distribution, average)

	return insights
}

// topAreas frequency-counts every area string across the batch and returns
// the top 3, most frequent first, alphabetical on ties so output is stable.
func topAreas(results []models.MatchResult, pick func(models.MatchResult) []string) []models.AreaCount {
	counts := map[string]int{}
	for _, result := range results {
		for _, area := range pick(result) {
			counts[area]++
		}
	}

	areas := make([]models.AreaCount, 0, len(counts))
	for area, count := range counts {
		areas = append(areas, models.AreaCount{Area: area, Count: count})
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		return areas[i].Area < areas[j].Area
	})

	if len(areas) > 3 {
		areas = areas[:3]
	}
	return areas
}

// recommendations renders threshold-triggered hiring suggestions
func recommendations(tiers models.TierDistribution, average float64) []string {
	recs := []string{}

	if tiers.Excellent > 0 {
		recs = append(recs, fmt.Sprintf("Found %d excellent candidates, prioritize scheduling interviews", tiers.Excellent))
	}
	if tiers.Good > 0 {
		recs = append(recs, fmt.Sprintf("%d candidates are a good match and can serve as backups", tiers.Good))
	}
	if average < 70 {
		recs = append(recs, "Overall match is low, consider relaxing some requirements or widening the search")
	}

	return recs
}
