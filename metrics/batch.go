package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/TopHK/ranking/core/parallel"
	"github.com/TopHK/ranking/pkg/errors"
)

// batchParallelThreshold is the batch size above which lists are evaluated
// across CPU cores. Lists are independent, so the fan-out needs no locking;
// each goroutine writes disjoint output rows.
const batchParallelThreshold = 64

// listFunc computes one scalar metric over a single list. The three slices
// are parallel views of one batch row and must not be mutated.
type listFunc func(labels, scores, weights []float64) (value, weight float64)

// itemFunc computes one per-item metric over a single list, writing a value
// and a weight for every sorted position into vals and wts (both of length
// listSize).
type itemFunc func(labels, scores, weights []float64, vals, wts []float64)

// validateInputs checks the shared input contract: labels and scores must
// be non-nil, non-empty, and of identical shape; weights, when given, must
// match that shape as well.
func validateInputs(op string, labels, scores, weights mat.Matrix) (batch, listSize int, err error) {
	if labels == nil || scores == nil {
		return 0, 0, errors.NewValueError(op, "input matrices cannot be nil")
	}

	batch, listSize = labels.Dims()
	if batch == 0 || listSize == 0 {
		return 0, 0, errors.NewValueError(op, "input matrices cannot be empty")
	}

	sr, sc := scores.Dims()
	if sr != batch {
		return 0, 0, errors.NewDimensionError(op, batch, sr, 0)
	}
	if sc != listSize {
		return 0, 0, errors.NewDimensionError(op, listSize, sc, 1)
	}

	if weights != nil {
		wr, wc := weights.Dims()
		if wr != batch {
			return 0, 0, errors.NewDimensionError(op, batch, wr, 0)
		}
		if wc != listSize {
			return 0, 0, errors.NewDimensionError(op, listSize, wc, 1)
		}
	}

	return batch, listSize, nil
}

// validateTopN rejects cutoffs that would make the examined prefix
// ill-defined. Valid values are positive integers or NoTruncation.
func validateTopN(topn int) error {
	if topn == NoTruncation || topn > 0 {
		return nil
	}
	return errors.NewValidationError(
		"topn",
		fmt.Sprintf("must be positive or %d (for no truncation), got %d", NoTruncation, topn),
		topn,
	)
}

// uniformWeights is the substitute row when the caller passes nil weights.
// It is shared read-only across goroutines.
func uniformWeights(listSize int) []float64 {
	ones := make([]float64, listSize)
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

// computeListwise maps a scalar per-list engine over the batch dimension,
// returning [batch, 1] value and weight matrices.
func computeListwise(op string, labels, scores, weights mat.Matrix, fn listFunc) (*mat.Dense, *mat.Dense, error) {
	batch, listSize, err := validateInputs(op, labels, scores, weights)
	if err != nil {
		return nil, nil, err
	}

	values := mat.NewDense(batch, 1, nil)
	outWeights := mat.NewDense(batch, 1, nil)
	ones := uniformWeights(listSize)

	parallel.ParallelizeWithThreshold(batch, batchParallelThreshold, func(start, end int) {
		labelRow := make([]float64, listSize)
		scoreRow := make([]float64, listSize)
		weightRow := make([]float64, listSize)
		for i := start; i < end; i++ {
			mat.Row(labelRow, i, labels)
			mat.Row(scoreRow, i, scores)
			w := ones
			if weights != nil {
				mat.Row(weightRow, i, weights)
				w = weightRow
			}

			value, weight := fn(labelRow, scoreRow, w)
			values.Set(i, 0, value)
			outWeights.Set(i, 0, weight)
		}
	})

	return values, outWeights, nil
}

// computeItemwise maps a per-item engine over the batch dimension,
// returning [batch, listSize] value and weight matrices aligned to each
// list's own score-sorted order.
func computeItemwise(op string, labels, scores, weights mat.Matrix, fn itemFunc) (*mat.Dense, *mat.Dense, error) {
	batch, listSize, err := validateInputs(op, labels, scores, weights)
	if err != nil {
		return nil, nil, err
	}

	values := mat.NewDense(batch, listSize, nil)
	outWeights := mat.NewDense(batch, listSize, nil)
	ones := uniformWeights(listSize)

	parallel.ParallelizeWithThreshold(batch, batchParallelThreshold, func(start, end int) {
		labelRow := make([]float64, listSize)
		scoreRow := make([]float64, listSize)
		weightRow := make([]float64, listSize)
		vals := make([]float64, listSize)
		wts := make([]float64, listSize)
		for i := start; i < end; i++ {
			mat.Row(labelRow, i, labels)
			mat.Row(scoreRow, i, scores)
			w := ones
			if weights != nil {
				mat.Row(weightRow, i, weights)
				w = weightRow
			}

			fn(labelRow, scoreRow, w, vals, wts)
			values.SetRow(i, vals)
			outWeights.SetRow(i, wts)
		}
	})

	return values, outWeights, nil
}
