package engine

import (
	"math"

	"resumelens/internal/types"
)

// aggregate folds the sub-scores into the overall score. Failed dimensions
// are excluded and the remaining weights renormalized, so one crashed
// analyzer dims its dimension rather than dragging the total toward zero.
func (e *Engine) aggregate(subScores []types.SubScore) (int, types.Band) {
	totalWeight := 0.0
	weightedSum := 0.0

	for _, sub := range subScores {
		if sub.Failed {
			continue
		}
		weight := e.cfg.Weight(sub.Dimension)
		totalWeight += weight
		weightedSum += weight * float64(sub.Value)
	}

	if totalWeight == 0 {
		return 0, types.BandCritical
	}

	score := int(math.Round(weightedSum / totalWeight))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, e.cfg.Band(score)
}
