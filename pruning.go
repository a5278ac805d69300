// File: pruning.go
// Role: Redundancy pruning — the main control on feature-set growth and
// therefore on runtime and embedding quality. Candidate columns are walked
// in order and discarded when they are too similar to a column already in
// play: the previous layer's columns first (already-accepted features are
// comparators only, never re-added), then the candidates kept so far.
package deepgl

import (
	"math"

	"github.com/katalvlaran/deepgl/matrix"
	"gonum.org/v1/gonum/stat"
)

// columnSimilarity scores two equally-sized columns in [0, 1] as the
// absolute Pearson correlation. Zero-variance columns are handled
// explicitly: two identical constant columns are fully similar, any other
// pairing with a constant column carries no signal.
func columnSimilarity(a, b []float64) float64 {
	constA, constB := isConstant(a), isConstant(b)
	switch {
	case constA && constB:
		for i := range a {
			if a[i] != b[i] {
				return 0
			}
		}

		return 1
	case constA || constB:
		return 0
	}

	r := math.Abs(stat.Correlation(a, b, nil))
	if math.IsNaN(r) {
		return 0
	}

	return math.Min(r, 1)
}

// isConstant reports whether every element of col equals the first.
func isConstant(col []float64) bool {
	for _, v := range col[1:] {
		if v != col[0] {
			return false
		}
	}

	return true
}

// prune selects the accepted layer from the candidate pair. A candidate
// column j is discarded iff its similarity to any comparator strictly
// exceeds 1−lambda: lambda = 0 keeps every candidate, lambda = 1 discards
// anything showing the slightest correlation. Returns nil features when no
// candidate survives — the engine reads that as an empty novelty set.
// Complexity: O(F² · N) with F = prev.Cols() + cand.Cols().
func prune(prev *matrix.Dense, candFeatures []*Feature, cand *matrix.Dense, lambda float64) ([]*Feature, *matrix.Dense, error) {
	if lambda == 0 {
		// Similarity is clamped to [0,1], so the strict > 1 test can never
		// fire; skip the quadratic scan entirely.
		return candFeatures, cand, nil
	}
	threshold := 1 - lambda

	comparators := make([][]float64, 0, prev.Cols()+cand.Cols())
	for j := 0; j < prev.Cols(); j++ {
		col, err := prev.Col(j)
		if err != nil {
			return nil, nil, err
		}
		comparators = append(comparators, col)
	}

	keep := make([]int, 0, cand.Cols())
	for j := 0; j < cand.Cols(); j++ {
		col, err := cand.Col(j)
		if err != nil {
			return nil, nil, err
		}
		redundant := false
		for _, other := range comparators {
			if columnSimilarity(col, other) > threshold {
				redundant = true

				break
			}
		}
		if redundant {
			continue
		}
		keep = append(keep, j)
		comparators = append(comparators, col)
	}

	if len(keep) == 0 {
		return nil, nil, nil
	}

	kept, err := matrix.SelectColumns(cand, keep)
	if err != nil {
		return nil, nil, err
	}
	features := make([]*Feature, len(keep))
	for i, j := range keep {
		features[i] = candFeatures[j]
	}

	return features, kept, nil
}
