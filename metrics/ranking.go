// Package metrics provides listwise ranking evaluation metrics (MRR, ARP,
// Recall, Precision, MAP, NDCG) over batches of scored, labeled item lists.
//
// Inputs are [batch, listSize] matrices of relevance labels and predicted
// scores, plus optional per-item weights. Each metric returns a pair of
// matrices (values, weights) intended for a downstream weighted-mean
// reduction across the batch. A label equal to PaddingLabel marks a padded
// slot that is excluded from every count, sum, and denominator.
package metrics

import (
	"math"
	"sort"
)

// PaddingLabel is the sentinel label marking a padded (invalid) item slot.
// Padded slots never contribute to any metric and always sort after every
// valid item.
const PaddingLabel = -1.0

// NoTruncation disables the topn cutoff: every sorted position of a list is
// examined when computing a metric's value.
const NoTruncation = -1

// GainFunc maps a relevance label to the gain used in NDCG's cumulative
// sum. It must be monotonically non-decreasing for labels >= 0 so that the
// ideal ordering by descending label is also the ordering by descending
// gain.
type GainFunc func(label float64) float64

// RankDiscountFunc maps a 1-based rank to a multiplicative discount. It
// must be monotonically non-increasing for ranks >= 1.
type RankDiscountFunc func(rank float64) float64

// DefaultGain is the standard exponential gain 2^label - 1, so a label of 0
// yields no gain.
func DefaultGain(label float64) float64 {
	return math.Exp2(label) - 1
}

// IdentityGain uses the label itself as the gain.
func IdentityGain(label float64) float64 {
	return label
}

// DefaultRankDiscount is the standard logarithmic discount 1 / log2(1+rank).
func DefaultRankDiscount(rank float64) float64 {
	return 1 / math.Log2(1+rank)
}

func isValid(label float64) bool {
	return label != PaddingLabel
}

func isRelevant(label float64) bool {
	return label > 0
}

// rankByScores returns the permutation of slot indices that sorts one list
// for evaluation: valid items first by descending score, then padded items.
// Ties break by ascending slot index, and padded items keep slot order, so
// the permutation is a total order independent of scheduling and of the
// (ignored) scores of padded slots. numValid is the count of non-padded
// slots; order[:numValid] are exactly the valid items.
func rankByScores(labels, scores []float64) (order []int, numValid int) {
	n := len(labels)
	order = make([]int, n)
	for i := range order {
		order[i] = i
		if isValid(labels[i]) {
			numValid++
		}
	}

	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		vi, vj := isValid(labels[i]), isValid(labels[j])
		if vi != vj {
			return vi
		}
		if vi && scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		return i < j
	})

	return order, numValid
}

// idealOrder returns the permutation that sorts one list by descending true
// label, the ordering a perfect ranker would produce. Padded items are
// placed last and label ties break by ascending slot index.
func idealOrder(labels []float64) (order []int, numValid int) {
	n := len(labels)
	order = make([]int, n)
	for i := range order {
		order[i] = i
		if isValid(labels[i]) {
			numValid++
		}
	}

	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		vi, vj := isValid(labels[i]), isValid(labels[j])
		if vi != vj {
			return vi
		}
		if vi && labels[i] != labels[j] {
			return labels[i] > labels[j]
		}
		return i < j
	})

	return order, numValid
}

// countRelevant counts the items with label > 0. Padded slots can never be
// relevant since PaddingLabel is negative.
func countRelevant(labels []float64) int {
	count := 0
	for _, label := range labels {
		if isRelevant(label) {
			count++
		}
	}
	return count
}

// meanRelevantWeight returns the average per-item weight over the relevant
// items of the whole list, or 0 when the list has no relevant item. This is
// the output weight shared by MRR, Recall, Precision, and MAP; it is
// independent of any topn cutoff.
func meanRelevantWeight(labels, weights []float64) float64 {
	var sum float64
	count := 0
	for i, label := range labels {
		if isRelevant(label) {
			sum += weights[i]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// limit resolves the number of sorted positions to examine: the topn cutoff
// clamped to the number of valid items, or all valid items under
// NoTruncation.
func limit(topn, numValid int) int {
	if topn == NoTruncation || topn > numValid {
		return numValid
	}
	return topn
}
