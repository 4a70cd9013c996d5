package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// Precision computes the fraction of examined positions that hold a
// relevant item:
//
//	Precision@n = (# relevant items at rank <= n) / n
//
// where n is the topn cutoff clamped to the number of valid items, so the
// denominator is the prefix size actually examined, never the count of
// relevant items. Relevance is binary: any label > 0 counts.
//
// The per-list output weight is the average per-item weight of the relevant
// items over the whole list, regardless of topn, or 0 when the list has no
// relevant item.
type Precision struct {
	topn int
}

// NewPrecision creates a Precision metric. topn must be a positive cutoff
// or NoTruncation.
func NewPrecision(topn int) *Precision {
	return &Precision{topn: topn}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, 1] value and weight
// matrices.
func (m *Precision) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := validateTopN(m.topn); err != nil {
		return nil, nil, err
	}
	return computeListwise("Precision", labels, scores, weights, m.computeList)
}

func (m *Precision) computeList(labels, scores, weights []float64) (float64, float64) {
	order, numValid := rankByScores(labels, scores)

	examined := limit(m.topn, numValid)
	if examined == 0 {
		return 0, 0
	}

	hits := 0
	for r := 1; r <= examined; r++ {
		if isRelevant(labels[order[r-1]]) {
			hits++
		}
	}

	return float64(hits) / float64(examined), meanRelevantWeight(labels, weights)
}
