package stats

import (
	"sort"

	"github.com/cypher-zh/cypher/internal/model"
)

// SelectWeakTones selects the lowest-accuracy tones from aggregates.
// Tones with no recorded answers are treated as fully known.
func SelectWeakTones(aggs []model.ToneAggregate, top int) map[int]struct{} {
	weakSet := map[int]struct{}{}
	if len(aggs) == 0 {
		return weakSet
	}
	candidates := make([]model.ToneAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Tone < candidates[j].Tone
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		candidate := candidates[i]
		// A tone the learner has never missed is not weak.
		if candidate.Incorrect == 0 {
			continue
		}
		weakSet[candidate.Tone] = struct{}{}
	}
	return weakSet
}

func accuracy(agg model.ToneAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
