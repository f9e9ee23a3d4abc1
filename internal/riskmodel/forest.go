package riskmodel

// Tree is one decision tree of the forest in the flat array encoding produced
// by the training export: node i splits on Feature[i] at Threshold[i], with
// samples going left when x <= threshold. A node is a leaf when both child
// indexes are -1. Value[i] holds the per-class probability distribution at
// node i, and NodeSamples[i] the number of training samples that reached it
// (the cover, needed by the attribution engine).
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
	NodeSamples   []float64   `json:"node_samples"`
}

// Leaf reports whether node is a leaf of the tree.
func (t Tree) Leaf(node int) bool {
	return t.ChildrenLeft[node] < 0
}

// PredictProba walks the tree for the scaled input x and returns the class
// probability distribution of the reached leaf.
func (t Tree) PredictProba(x []float64) []float64 {
	node := 0
	for !t.Leaf(node) {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// ExpectedValue returns the cover-weighted average of the tree's leaf values
// for the given class column: the tree's output for a sample about which
// nothing is known. This is the attribution baseline.
func (t Tree) ExpectedValue(class int) float64 {
	return t.expected(0, class)
}

func (t Tree) expected(node, class int) float64 {
	if t.Leaf(node) {
		return t.Value[node][class]
	}

	left, right := t.ChildrenLeft[node], t.ChildrenRight[node]
	total := t.NodeSamples[node]
	return (t.NodeSamples[left]*t.expected(left, class) +
		t.NodeSamples[right]*t.expected(right, class)) / total
}

// Forest is a fitted random-forest classifier: per-class probabilities are
// the unweighted average of the member trees' leaf distributions, matching
// how the forest was evaluated during training.
type Forest struct {
	Classes int    `json:"n_classes"`
	Trees   []Tree `json:"trees"`
}

// PredictProba returns the averaged class probability distribution for the
// scaled input x.
func (f Forest) PredictProba(x []float64) []float64 {
	probs := make([]float64, f.Classes)
	for _, tree := range f.Trees {
		leaf := tree.PredictProba(x)
		for c := range probs {
			probs[c] += leaf[c]
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs
}
