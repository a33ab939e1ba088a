// Package decisiontree implements a CART regression tree.
//
// Nodes are split greedily on the feature/threshold pair that minimises the
// summed squared error of the two children. Thresholds sit halfway between
// adjacent distinct feature values and samples with x <= threshold go left.
// Growth stops at MaxDepth, below MinSamplesSplit samples, when either child
// would hold fewer than MinSamplesLeaf samples, or when a node is pure.
//
// Example:
//
//	tree := decisiontree.NewRegressor(decisiontree.Config{MaxDepth: 5, MinSamplesSplit: 5})
//	if err := tree.Fit(features, targets); err != nil {
//		return err
//	}
//	next, err := tree.Predict(features[len(features)-1])
package decisiontree
