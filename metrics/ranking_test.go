package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// checkMatrix compares a result matrix against an expected grid within a
// small tolerance.
func checkMatrix(t *testing.T, name string, got *mat.Dense, want [][]float64) {
	t.Helper()

	r, c := got.Dims()
	if r != len(want) || c != len(want[0]) {
		t.Fatalf("%s: dims = (%d, %d), want (%d, %d)", name, r, c, len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			if math.Abs(got.At(i, j)-want[i][j]) > 1e-9 {
				t.Errorf("%s[%d][%d] = %v, want %v", name, i, j, got.At(i, j), want[i][j])
			}
		}
	}
}

func TestRankByScores(t *testing.T) {
	tests := []struct {
		name         string
		labels       []float64
		scores       []float64
		wantOrder    []int
		wantNumValid int
	}{
		{
			name:         "Descending by score",
			labels:       []float64{0, 0, 1},
			scores:       []float64{1, 3, 2},
			wantOrder:    []int{1, 2, 0},
			wantNumValid: 3,
		},
		{
			name:         "Equal scores break by slot index",
			labels:       []float64{1, 0, 2, 0},
			scores:       []float64{2, 2, 2, 2},
			wantOrder:    []int{0, 1, 2, 3},
			wantNumValid: 4,
		},
		{
			name:         "Padded items placed last regardless of score",
			labels:       []float64{1, -1, 1, -1, 0},
			scores:       []float64{1, 5, 4, 3, 2},
			wantOrder:    []int{2, 4, 0, 1, 3},
			wantNumValid: 3,
		},
		{
			name:         "All padded keeps slot order",
			labels:       []float64{-1, -1, -1},
			scores:       []float64{3, 1, 2},
			wantOrder:    []int{0, 1, 2},
			wantNumValid: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, numValid := rankByScores(tt.labels, tt.scores)

			if numValid != tt.wantNumValid {
				t.Errorf("numValid = %d, want %d", numValid, tt.wantNumValid)
			}
			for i := range tt.wantOrder {
				if order[i] != tt.wantOrder[i] {
					t.Errorf("order = %v, want %v", order, tt.wantOrder)
					break
				}
			}
		})
	}
}

func TestRankByScoresDoesNotMutateInputs(t *testing.T) {
	labels := []float64{0, 1, -1}
	scores := []float64{1, 3, 2}

	rankByScores(labels, scores)

	if labels[0] != 0 || labels[1] != 1 || labels[2] != -1 {
		t.Errorf("labels mutated: %v", labels)
	}
	if scores[0] != 1 || scores[1] != 3 || scores[2] != 2 {
		t.Errorf("scores mutated: %v", scores)
	}
}

func TestIdealOrder(t *testing.T) {
	tests := []struct {
		name      string
		labels    []float64
		wantOrder []int
	}{
		{
			name:      "Descending by label",
			labels:    []float64{0, 3, 1, 0},
			wantOrder: []int{1, 2, 0, 3},
		},
		{
			name:      "Equal labels break by slot index",
			labels:    []float64{2, 2, 0, 2},
			wantOrder: []int{0, 1, 3, 2},
		},
		{
			name:      "Padded items placed last",
			labels:    []float64{2, -1, 1, 0},
			wantOrder: []int{0, 2, 3, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, _ := idealOrder(tt.labels)
			for i := range tt.wantOrder {
				if order[i] != tt.wantOrder[i] {
					t.Errorf("order = %v, want %v", order, tt.wantOrder)
					break
				}
			}
		})
	}
}

func TestDefaultGain(t *testing.T) {
	tests := []struct {
		label float64
		want  float64
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
	}

	for _, tt := range tests {
		if got := DefaultGain(tt.label); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DefaultGain(%v) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestDefaultRankDiscount(t *testing.T) {
	tests := []struct {
		rank float64
		want float64
	}{
		{1, 1},
		{3, 1 / math.Log2(4)},
		{7, 1 / math.Log2(8)},
	}

	for _, tt := range tests {
		if got := DefaultRankDiscount(tt.rank); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DefaultRankDiscount(%v) = %v, want %v", tt.rank, got, tt.want)
		}
	}
}

func TestMeanRelevantWeight(t *testing.T) {
	tests := []struct {
		name    string
		labels  []float64
		weights []float64
		want    float64
	}{
		{
			name:    "Average over relevant items only",
			labels:  []float64{1, 0, 2},
			weights: []float64{13, 7, 29},
			want:    (13. + 29.) / 2.,
		},
		{
			name:    "Zero when no relevant items",
			labels:  []float64{0, 0, 0},
			weights: []float64{2, 5, 1},
			want:    0,
		},
		{
			name:    "Padded items never count",
			labels:  []float64{1, -1, -1},
			weights: []float64{4, 100, 100},
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meanRelevantWeight(tt.labels, tt.weights); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("meanRelevantWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		topn     int
		numValid int
		want     int
	}{
		{NoTruncation, 5, 5},
		{3, 5, 3},
		{8, 5, 5},
		{1, 0, 0},
	}

	for _, tt := range tests {
		if got := limit(tt.topn, tt.numValid); got != tt.want {
			t.Errorf("limit(%d, %d) = %d, want %d", tt.topn, tt.numValid, got, tt.want)
		}
	}
}
