package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// MRR computes the Mean Reciprocal Rank of each list in a batch.
//
// The reciprocal rank of a list is 1/r where r is the 1-based rank of the
// first relevant item (label > 0) in the score-sorted order, or 0 when no
// relevant item appears within the first topn positions. MRR values range
// from 0 to 1, where 1 means the top-ranked item is relevant.
//
// The per-list output weight is the average per-item weight of the relevant
// items over the whole list, regardless of topn, or 0 when the list has no
// relevant item.
//
// Example:
//
//	labels := mat.NewDense(1, 3, []float64{0, 0, 1})
//	scores := mat.NewDense(1, 3, []float64{1, 3, 2})
//	values, weights, err := metrics.NewMRR(metrics.NoTruncation).Compute(labels, scores, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// values = [[0.5]]: the relevant item lands at rank 2.
type MRR struct {
	topn int
}

// NewMRR creates an MRR metric. topn must be a positive cutoff or
// NoTruncation.
func NewMRR(topn int) *MRR {
	return &MRR{topn: topn}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, 1] value and weight
// matrices.
func (m *MRR) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := validateTopN(m.topn); err != nil {
		return nil, nil, err
	}
	return computeListwise("MRR", labels, scores, weights, m.computeList)
}

func (m *MRR) computeList(labels, scores, weights []float64) (float64, float64) {
	order, numValid := rankByScores(labels, scores)

	value := 0.0
	for r := 1; r <= limit(m.topn, numValid); r++ {
		if isRelevant(labels[order[r-1]]) {
			value = 1 / float64(r)
			break
		}
	}

	return value, meanRelevantWeight(labels, weights)
}
