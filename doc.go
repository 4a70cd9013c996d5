// Package ranking provides listwise ranking evaluation metrics for Go,
// designed for offline model evaluation of learning-to-rank systems.
//
// The library computes standard information-retrieval quality metrics
// (MRR, ARP, Recall, Precision, MAP, NDCG) over batches of scored and
// labeled item lists, with padding-aware semantics for rank truncation,
// graded relevance, and per-item weights.
//
// # Features
//
// - Batched Evaluation: one call evaluates every list in a [batch, listSize] input
// - Pluggable Gain/Discount: NDCG accepts custom gain and rank-discount functions
// - Padding Aware: sentinel-labeled slots are excluded from every sum and count
// - CPU Parallel: lists are independent, large batches fan out across cores
// - Robust Error Handling: structured, stack-traced input validation errors
//
// # Quick Start
//
// Evaluate MRR over a two-list batch:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/TopHK/ranking/metrics"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    labels := mat.NewDense(2, 3, []float64{
//	        0, 0, 1,
//	        0, 1, 1,
//	    })
//	    scores := mat.NewDense(2, 3, []float64{
//	        1, 3, 2,
//	        1, 2, 3,
//	    })
//
//	    mrr := metrics.NewMRR(metrics.NoTruncation)
//	    values, weights, err := mrr.Compute(labels, scores, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("MRR values:", mat.Formatted(values))
//	    fmt.Println("MRR weights:", mat.Formatted(weights))
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - metrics: the ranking metric engines and batch driver
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: JSON structured logging setup
//   - core/parallel: parallel processing utilities
//
// # Semantics
//
// Metric outputs are (value, weight) pairs so a caller can reduce a batch
// with a weighted mean. Scalar metrics return [batch, 1] matrices; ARP
// returns per-item [batch, listSize] vectors aligned to each list's own
// score-sorted order. Weights for the binary-relevance metrics are the
// average per-item weight of the relevant items in the whole list and are
// deliberately independent of the topn cutoff.
package ranking
