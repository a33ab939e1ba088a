package decisiontree

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyTrainingSet is returned when Fit receives no samples.
	ErrEmptyTrainingSet = errors.New("training set is empty")
	// ErrDimensionMismatch is returned when sample or feature counts disagree.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNonFinite is returned when an input contains NaN or Inf.
	ErrNonFinite = errors.New("input contains NaN or infinity")
	// ErrNotFitted is returned by Predict before a successful Fit.
	ErrNotFitted = errors.New("regressor is not fitted")
)

// impurityEpsilon treats nodes with smaller variance as pure.
const impurityEpsilon = 1e-12

// Config controls tree growth. Zero values select the defaults noted per field.
type Config struct {
	// MaxDepth limits the depth of the tree. Zero or negative means unlimited.
	MaxDepth int
	// MinSamplesSplit is the minimum number of samples needed to split a node (default 2).
	MinSamplesSplit int
	// MinSamplesLeaf is the minimum number of samples in each child (default 1).
	MinSamplesLeaf int
}

type node struct {
	feature   int
	threshold float64
	value     float64
	samples   int
	left      *node
	right     *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// Regressor is a single regression tree. It is not safe for concurrent Fit calls.
type Regressor struct {
	cfg       Config
	root      *node
	nFeatures int
}

// NewRegressor creates an unfitted regressor.
func NewRegressor(cfg Config) *Regressor {
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	if cfg.MinSamplesLeaf < 1 {
		cfg.MinSamplesLeaf = 1
	}
	return &Regressor{cfg: cfg}
}

// Fit grows the tree on rows of X with targets y.
func (r *Regressor) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d samples but %d targets", ErrDimensionMismatch, len(X), len(y))
	}
	nFeatures := len(X[0])
	if nFeatures == 0 {
		return fmt.Errorf("%w: samples have no features", ErrDimensionMismatch)
	}
	for i, row := range X {
		if len(row) != nFeatures {
			return fmt.Errorf("%w: sample %d has %d features, expected %d", ErrDimensionMismatch, i, len(row), nFeatures)
		}
		if !allFinite(row) {
			return fmt.Errorf("%w: sample %d", ErrNonFinite, i)
		}
	}
	if !allFinite(y) {
		return fmt.Errorf("%w: targets", ErrNonFinite)
	}

	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}

	b := &builder{cfg: r.cfg, X: X, y: y, nFeatures: nFeatures}
	r.root = b.build(indices, 0)
	r.nFeatures = nFeatures
	return nil
}

// Predict returns the leaf value reached by x.
func (r *Regressor) Predict(x []float64) (float64, error) {
	if r.root == nil {
		return 0, ErrNotFitted
	}
	if len(x) != r.nFeatures {
		return 0, fmt.Errorf("%w: got %d features, expected %d", ErrDimensionMismatch, len(x), r.nFeatures)
	}
	if !allFinite(x) {
		return 0, ErrNonFinite
	}

	n := r.root
	for !n.isLeaf() {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value, nil
}

// Depth returns the depth of the fitted tree; a single leaf has depth 0.
func (r *Regressor) Depth() int {
	return depth(r.root)
}

// Leaves returns the number of leaves in the fitted tree.
func (r *Regressor) Leaves() int {
	return leaves(r.root)
}

func depth(n *node) int {
	if n == nil || n.isLeaf() {
		return 0
	}
	l, rr := depth(n.left), depth(n.right)
	if l > rr {
		return l + 1
	}
	return rr + 1
}

func leaves(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return leaves(n.left) + leaves(n.right)
}

type builder struct {
	cfg       Config
	X         [][]float64
	y         []float64
	nFeatures int
}

type split struct {
	feature   int
	threshold float64
	position  int
	sse       float64
}

func (b *builder) build(indices []int, d int) *node {
	mean := 0.0
	for _, i := range indices {
		mean += b.y[i]
	}
	mean /= float64(len(indices))

	sse := 0.0
	for _, i := range indices {
		diff := b.y[i] - mean
		sse += diff * diff
	}

	n := &node{value: mean, samples: len(indices)}
	if b.cfg.MaxDepth > 0 && d >= b.cfg.MaxDepth {
		return n
	}
	if len(indices) < b.cfg.MinSamplesSplit || len(indices) < 2*b.cfg.MinSamplesLeaf {
		return n
	}
	if sse/float64(len(indices)) <= impurityEpsilon {
		return n
	}

	best, ok := b.bestSplit(indices, mean)
	if !ok || best.sse >= sse {
		return n
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	b.sortByFeature(sorted, best.feature)

	n.feature = best.feature
	n.threshold = best.threshold
	n.left = b.build(sorted[:best.position], d+1)
	n.right = b.build(sorted[best.position:], d+1)
	return n
}

// bestSplit scans every feature. Targets are centred on the node mean so the
// running sums stay small.
func (b *builder) bestSplit(indices []int, mean float64) (split, bool) {
	total := len(indices)
	sorted := make([]int, total)
	best := split{sse: math.Inf(1)}
	found := false

	for f := 0; f < b.nFeatures; f++ {
		copy(sorted, indices)
		b.sortByFeature(sorted, f)

		var totalSum, totalSq float64
		for _, i := range sorted {
			v := b.y[i] - mean
			totalSum += v
			totalSq += v * v
		}

		var leftSum, leftSq float64
		for k := 1; k < total; k++ {
			v := b.y[sorted[k-1]] - mean
			leftSum += v
			leftSq += v * v

			lo, hi := b.X[sorted[k-1]][f], b.X[sorted[k]][f]
			if lo == hi {
				continue
			}
			nLeft, nRight := k, total-k
			if nLeft < b.cfg.MinSamplesLeaf || nRight < b.cfg.MinSamplesLeaf {
				continue
			}

			rightSum, rightSq := totalSum-leftSum, totalSq-leftSq
			sse := (leftSq - leftSum*leftSum/float64(nLeft)) + (rightSq - rightSum*rightSum/float64(nRight))
			if sse < best.sse {
				threshold := lo + (hi-lo)/2
				if threshold >= hi {
					threshold = lo
				}
				best = split{feature: f, threshold: threshold, position: k, sse: sse}
				found = true
			}
		}
	}
	return best, found
}

func (b *builder) sortByFeature(indices []int, f int) {
	sort.SliceStable(indices, func(i, j int) bool {
		return b.X[indices[i]][f] < b.X[indices[j]][f]
	})
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
