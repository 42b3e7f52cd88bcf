package engine

import (
	"sort"

	"resumelens/internal/types"
)

// lowScoreNudge closes a critical recommendation list with direction on
// where to start
const lowScoreNudge = "Start with the critical items: they block automated parsing and cost the most points."

// recommendations flattens finding recommendations into the presented list.
// Duplicates within a dimension and category collapse to one entry, worse
// findings come first, and ties break on dimension priority so the list is
// stable run to run.
func (e *Engine) recommendations(subScores []types.SubScore, overallBand types.Band) []string {
	priority := make(map[types.Dimension]int, len(types.Dimensions))
	for i, dim := range types.Dimensions {
		priority[dim] = i
	}

	type candidate struct {
		finding types.Finding
		rank    int
	}

	seen := make(map[string]bool)
	var candidates []candidate
	for _, sub := range subScores {
		for _, finding := range sub.Findings {
			if finding.Recommendation == "" || finding.Severity == types.SeverityGood {
				continue
			}
			key := string(finding.Dimension) + "/" + finding.Category
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, candidate{
				finding: finding,
				rank:    priority[finding.Dimension],
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := candidates[i].finding.Severity.Rank(), candidates[j].finding.Severity.Rank()
		if si != sj {
			return si > sj
		}
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank < candidates[j].rank
		}
		return candidates[i].finding.Category < candidates[j].finding.Category
	})

	limit := e.cfg.Recommendations.MaxItems
	nudge := overallBand == types.BandCritical
	if nudge {
		limit--
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recommendations := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		recommendations = append(recommendations, c.finding.Recommendation)
	}
	if nudge {
		recommendations = append(recommendations, lowScoreNudge)
	}
	return recommendations
}
