package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// NDCG computes the Normalized Discounted Cumulative Gain of each list in a
// batch.
//
// NDCG measures ranking quality with graded relevance: each examined
// position contributes gain(label) * discount(rank), and the sum is
// normalized by the same sum over the ideal ordering (items sorted by
// descending true label):
//
//	NDCG@n = DCG@n / IDCG@n
//	DCG@n  = Σ_{r=1..n} gain(label at rank r) * discount(r)
//
// Ranks are assigned over valid items only, so padded slots neither
// contribute gain nor consume a rank. When the ideal DCG is 0 (no item has
// positive gain) the value is 0. NDCG values range from 0 to 1, where 1
// means the predicted order is gain-optimal.
//
// The per-list output weight is the gain-weighted average of per-item
// weights over the items with positive gain in the whole list,
// Σ gain·weight / Σ gain, regardless of topn, or 0 when no item has
// positive gain.
//
// Example:
//
//	labels := mat.NewDense(1, 3, []float64{0, 1, 0})
//	scores := mat.NewDense(1, 3, []float64{3, 2, 1})
//	ndcg := metrics.NewNDCG(metrics.NoTruncation, nil, nil)
//	values, _, err := ndcg.Compute(labels, scores, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// values = [[(1/log2(3)) / (1/log2(2))]]
type NDCG struct {
	topn     int
	gain     GainFunc
	discount RankDiscountFunc
}

// NewNDCG creates an NDCG metric. topn must be a positive cutoff or
// NoTruncation. A nil gain falls back to DefaultGain and a nil discount to
// DefaultRankDiscount. The gain must be monotonically non-decreasing for
// labels >= 0 and the discount monotonically non-increasing for ranks >= 1.
func NewNDCG(topn int, gain GainFunc, discount RankDiscountFunc) *NDCG {
	if gain == nil {
		gain = DefaultGain
	}
	if discount == nil {
		discount = DefaultRankDiscount
	}
	return &NDCG{topn: topn, gain: gain, discount: discount}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, 1] value and weight
// matrices.
func (m *NDCG) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := validateTopN(m.topn); err != nil {
		return nil, nil, err
	}
	return computeListwise("NDCG", labels, scores, weights, m.computeList)
}

func (m *NDCG) computeList(labels, scores, weights []float64) (float64, float64) {
	order, numValid := rankByScores(labels, scores)
	ideal, _ := idealOrder(labels)
	n := limit(m.topn, numValid)

	dcg := m.dcg(labels, order, n)
	idcg := m.dcg(labels, ideal, n)

	value := 0.0
	if idcg > 0 {
		value = dcg / idcg
	}

	// Weight: gain-weighted mean over the whole list. With a custom gain a
	// zero label can still carry positive gain and therefore weight.
	var weightedGain, totalGain float64
	for i, label := range labels {
		if !isValid(label) {
			continue
		}
		g := m.gain(label)
		if g > 0 {
			weightedGain += g * weights[i]
			totalGain += g
		}
	}

	weight := 0.0
	if totalGain > 0 {
		weight = weightedGain / totalGain
	}

	return value, weight
}

// dcg sums gain * discount over the first n positions of the given
// permutation. Only valid items occupy those positions, so ranks run
// 1..n over valid items in order.
func (m *NDCG) dcg(labels []float64, order []int, n int) float64 {
	sum := 0.0
	for r := 1; r <= n; r++ {
		sum += m.gain(labels[order[r-1]]) * m.discount(float64(r))
	}
	return sum
}
