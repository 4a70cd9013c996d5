package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// MeanAveragePrecision computes the Average Precision of each list in a
// batch, the quantity whose batch mean is the classic MAP measure.
//
// For every relevant item at sorted rank r within the examined prefix, the
// running precision (# relevant at rank <= r) / r is accumulated; the sum
// is divided by the total number of relevant items in the whole list, not
// just those inside the prefix:
//
//	AP@n = Σ_{r <= n, item at r relevant} (hits at <= r) / r  /  (# relevant in list)
//
// A list with no relevant item yields 0. Relevance is binary: any label > 0
// counts, graded magnitudes collapse to "relevant".
//
// The per-list output weight is the average per-item weight of the relevant
// items over the whole list, regardless of topn.
//
// Example:
//
//	labels := mat.NewDense(1, 3, []float64{1, 0, 1})
//	scores := mat.NewDense(1, 3, []float64{3, 2, 1})
//	values, _, err := metrics.NewMeanAveragePrecision(metrics.NoTruncation).Compute(labels, scores, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// values = [[(1/1 + 2/3) / 2]]
type MeanAveragePrecision struct {
	topn int
}

// NewMeanAveragePrecision creates a MAP metric. topn must be a positive
// cutoff or NoTruncation.
func NewMeanAveragePrecision(topn int) *MeanAveragePrecision {
	return &MeanAveragePrecision{topn: topn}
}

// Compute evaluates the metric over a [batch, listSize] input. weights may
// be nil for uniform weighting. It returns [batch, 1] value and weight
// matrices.
func (m *MeanAveragePrecision) Compute(labels, scores, weights mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := validateTopN(m.topn); err != nil {
		return nil, nil, err
	}
	return computeListwise("MeanAveragePrecision", labels, scores, weights, m.computeList)
}

func (m *MeanAveragePrecision) computeList(labels, scores, weights []float64) (float64, float64) {
	totalRelevant := countRelevant(labels)
	if totalRelevant == 0 {
		return 0, 0
	}

	order, numValid := rankByScores(labels, scores)

	sumPrecisions := 0.0
	hits := 0
	for r := 1; r <= limit(m.topn, numValid); r++ {
		if isRelevant(labels[order[r-1]]) {
			hits++
			sumPrecisions += float64(hits) / float64(r)
		}
	}

	return sumPrecisions / float64(totalRelevant), meanRelevantWeight(labels, weights)
}
