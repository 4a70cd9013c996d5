package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// Recall computes the fraction of a list's relevant items that appear
// within the examined prefix of the score-sorted order:
//
//	Recall@n = (# relevant items at rank <= n) / (# relevant items in the list)
//
// where n is the topn cutoff clamped to the number of valid items. A list
// with no relevant item yields 0. Relevance is binary: any label > 0
// counts, graded magnitudes are ignored.
//
// The per-list output weight is the average per-item weight of the relevant
// items over the whole list, regardless of topn.
type Recall struct {
	topn int
}

// NewRecall creates a Recall metric. topn must be a positive cutoff or
// NoTruncation.
func NewRecall(topn int) *Recall {
	return &Recall{topn: topn}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, 1] value and weight
// matrices.
func (m *Recall) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := validateTopN(m.topn); err != nil {
		return nil, nil, err
	}
	return computeListwise("Recall", labels, scores, weights, m.computeList)
}

func (m *Recall) computeList(labels, scores, weights []float64) (float64, float64) {
	totalRelevant := countRelevant(labels)
	if totalRelevant == 0 {
		return 0, 0
	}

	order, numValid := rankByScores(labels, scores)
	hits := 0
	for r := 1; r <= limit(m.topn, numValid); r++ {
		if isRelevant(labels[order[r-1]]) {
			hits++
		}
	}

	return float64(hits) / float64(totalRelevant), meanRelevantWeight(labels, weights)
}
