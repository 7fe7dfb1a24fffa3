package matching

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/candidate-compare/backend/models"
)

// batchSize bounds the number of in-flight aggregator calls, and with them
// the number of simultaneous outbound AI requests. Fixed, non-adaptive:
// unbounded fan-out overwhelms the AI collaborator, strictly sequential
// processing is too slow for a realistic pool.
const batchSize = 3

// BatchMatchCandidates runs CalculateMatch over every stored candidate in
// groups of batchSize: parallel dispatch within a group, sequential across
// groups. A single candidate's failure is logged and that candidate dropped;
// the batch itself only fails when no JD is loaded. Results are sorted
// descending by match score, candidate id ascending on ties.
func (e *Engine) BatchMatchCandidates(ctx context.Context) ([]models.MatchResult, error) {
	if e.store.GetJD() == nil {
		return nil, ErrNoJD
	}

	candidates := e.store.GetCandidates()
	results := make([]models.MatchResult, 0, len(candidates))

	for start := 0; start < len(candidates); start += batchSize {
		group := candidates[start:min(start+batchSize, len(candidates))]

		resultsChan := make(chan models.MatchResult, len(group))
		var wg sync.WaitGroup

		for _, candidate := range group {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()

				result, err := e.CalculateMatch(ctx, id)
				if err != nil {
					e.logger.Warn("candidate match failed, dropping from batch",
						zap.String("candidate", id), zap.Error(err))
					return
				}
				resultsChan <- *result
			}(candidate.ID)
		}

		wg.Wait()
		close(resultsChan)

		for result := range resultsChan {
			results = append(results, result)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	return results, nil
}
