package explain

import (
	"github.com/healthtrack-app/healthtrack/internal/riskmodel"
)

// Path-dependent TreeSHAP (Lundberg et al., "Consistent Individualized
// Feature Attribution for Tree Ensembles"). The algorithm walks every
// root-to-leaf path once, maintaining for each feature on the path the
// fraction of background samples that would follow it (zeroFraction), whether
// the explained sample follows it (oneFraction), and the permutation weight
// of each subset size (pweight). Cover ratios come from the per-node training
// sample counts recorded in the artifact.

type pathElement struct {
	feature      int
	zeroFraction float64
	oneFraction  float64
	pweight      float64
}

func clonePath(path []pathElement) []pathElement {
	out := make([]pathElement, len(path), len(path)+1)
	copy(out, path)
	return out
}

// extendPath grows the subset-size weight polynomial with one more feature.
func extendPath(path []pathElement, zeroFraction, oneFraction float64, feature int) []pathElement {
	initial := 0.0
	if len(path) == 0 {
		initial = 1.0
	}
	path = append(path, pathElement{feature, zeroFraction, oneFraction, initial})

	l := len(path) - 1
	for i := l - 1; i >= 0; i-- {
		path[i+1].pweight += oneFraction * path[i].pweight * float64(i+1) / float64(l+1)
		path[i].pweight = zeroFraction * path[i].pweight * float64(l-i) / float64(l+1)
	}
	return path
}

// unwindPath removes the element at index, undoing its extendPath update.
func unwindPath(path []pathElement, index int) []pathElement {
	l := len(path) - 1
	one := path[index].oneFraction
	zero := path[index].zeroFraction
	n := path[l].pweight

	for i := l - 1; i >= 0; i-- {
		if one != 0 {
			t := path[i].pweight
			path[i].pweight = n * float64(l+1) / (float64(i+1) * one)
			n = t - path[i].pweight*zero*float64(l-i)/float64(l+1)
		} else {
			path[i].pweight = path[i].pweight * float64(l+1) / (zero * float64(l-i))
		}
	}

	for i := index; i < l; i++ {
		path[i].feature = path[i+1].feature
		path[i].zeroFraction = path[i+1].zeroFraction
		path[i].oneFraction = path[i+1].oneFraction
	}
	return path[:l]
}

// unwoundPathSum is the total permutation weight the element at index would
// leave behind if unwound, without mutating the path.
func unwoundPathSum(path []pathElement, index int) float64 {
	l := len(path) - 1
	one := path[index].oneFraction
	zero := path[index].zeroFraction
	n := path[l].pweight

	total := 0.0
	for i := l - 1; i >= 0; i-- {
		if one != 0 {
			t := n * float64(l+1) / (float64(i+1) * one)
			total += t
			n = path[i].pweight - t*zero*float64(l-i)/float64(l+1)
		} else {
			total += path[i].pweight / (zero * float64(l-i) / float64(l+1))
		}
	}
	return total
}

func findFeature(path []pathElement, feature int) int {
	for i := 1; i < len(path); i++ {
		if path[i].feature == feature {
			return i
		}
	}
	return -1
}

// treeShap accumulates into phi the per-feature attributions of one tree's
// output for the given class column, evaluated at the scaled input x.
// The sum of the accumulated values equals the tree's output at x minus its
// cover-weighted expected value.
func treeShap(t riskmodel.Tree, x []float64, class int, phi []float64) {
	recurse(t, x, class, phi, 0, nil, 1, 1, -1)
}

func recurse(t riskmodel.Tree, x []float64, class int, phi []float64, node int, path []pathElement, zeroFraction, oneFraction float64, parentFeature int) {
	path = extendPath(clonePath(path), zeroFraction, oneFraction, parentFeature)

	if t.Leaf(node) {
		for i := 1; i < len(path); i++ {
			w := unwoundPathSum(path, i)
			el := path[i]
			phi[el.feature] += w * (el.oneFraction - el.zeroFraction) * t.Value[node][class]
		}
		return
	}

	hot, cold := t.ChildrenLeft[node], t.ChildrenRight[node]
	if x[t.Feature[node]] > t.Threshold[node] {
		hot, cold = cold, hot
	}
	hotFraction := t.NodeSamples[hot] / t.NodeSamples[node]
	coldFraction := t.NodeSamples[cold] / t.NodeSamples[node]

	// A feature split on twice along one path keeps a single path element:
	// unwind the earlier occurrence and fold its fractions into this one.
	incomingZero, incomingOne := 1.0, 1.0
	split := t.Feature[node]
	if k := findFeature(path, split); k >= 0 {
		incomingZero = path[k].zeroFraction
		incomingOne = path[k].oneFraction
		path = unwindPath(path, k)
	}

	recurse(t, x, class, phi, hot, path, incomingZero*hotFraction, incomingOne, split)
	recurse(t, x, class, phi, cold, path, incomingZero*coldFraction, 0, split)
}
