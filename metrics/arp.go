package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// ARP computes Average Relevance Position material for each list in a
// batch. Unlike the scalar metrics it emits per-item vectors: for every
// sorted position k of a list, the value is the rank k itself (1-based,
// padded slots included at the tail) and the weight is label * weight of
// the item occupying that position when it is relevant, else 0.
//
// The two vectors are meant for a downstream weighted-mean reduction: the
// weighted average of the value row by the weight row is the list's average
// position of relevance. Because rows follow each list's own score-sorted
// order, positions are not slot-comparable across lists.
type ARP struct{}

// NewARP creates an ARP metric. ARP has no truncation knob; every position
// of the list is emitted.
func NewARP() *ARP {
	return &ARP{}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, listSize] value and
// weight matrices aligned to each list's score-sorted order.
func (m *ARP) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	return computeItemwise("ARP", labels, scores, weights, m.computeList)
}

func (m *ARP) computeList(labels, scores, weights []float64, vals, wts []float64) {
	order, _ := rankByScores(labels, scores)

	for k, idx := range order {
		vals[k] = float64(k + 1)
		if isRelevant(labels[idx]) {
			wts[k] = labels[idx] * weights[idx]
		} else {
			wts[k] = 0
		}
	}
}
