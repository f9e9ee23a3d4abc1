package riskmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/healthtrack-app/healthtrack/models"
)

// Artifact is the on-disk representation of the trained classifier and its
// input scaler, exported from the training pipeline as a single JSON
// document. The service treats it as external, versionless state: it is
// loaded once at process start and never written.
type Artifact struct {
	// Features lists the schema the scaler and forest were fitted with,
	// in column order. It must match [models.FeatureNames] exactly.
	Features []string `json:"features"`

	Scaler Scaler `json:"scaler"`
	Forest Forest `json:"forest"`
}

// LoadArtifact reads and validates the model artifact at path. Any failure —
// missing file, malformed JSON, inconsistent tree arrays, schema mismatch —
// wraps [ErrModelUnavailable] and must abort startup.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrModelUnavailable, path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %w", ErrModelUnavailable, path, err)
	}

	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	return &artifact, nil
}

func (a *Artifact) validate() error {
	if len(a.Features) != models.FeatureCount {
		return fmt.Errorf("artifact has %d features, want %d", len(a.Features), models.FeatureCount)
	}
	for i, name := range a.Features {
		if name != models.FeatureNames[i] {
			return fmt.Errorf("artifact feature %d is %q, want %q", i, name, models.FeatureNames[i])
		}
	}

	if len(a.Scaler.Mean) != len(a.Features) || len(a.Scaler.Scale) != len(a.Features) {
		return fmt.Errorf("scaler width %d/%d does not match %d features",
			len(a.Scaler.Mean), len(a.Scaler.Scale), len(a.Features))
	}
	for i, s := range a.Scaler.Scale {
		if s == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}

	if a.Forest.Classes != 2 {
		return fmt.Errorf("forest has %d classes, want 2", a.Forest.Classes)
	}
	if len(a.Forest.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}
	for ti, t := range a.Forest.Trees {
		n := len(t.ChildrenLeft)
		if n == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		if len(t.ChildrenRight) != n || len(t.Feature) != n ||
			len(t.Threshold) != n || len(t.Value) != n || len(t.NodeSamples) != n {
			return fmt.Errorf("tree %d node arrays have inconsistent lengths", ti)
		}
		for node := 0; node < n; node++ {
			if len(t.Value[node]) != a.Forest.Classes {
				return fmt.Errorf("tree %d node %d has %d class values, want %d",
					ti, node, len(t.Value[node]), a.Forest.Classes)
			}
			if t.NodeSamples[node] <= 0 {
				return fmt.Errorf("tree %d node %d has non-positive sample count", ti, node)
			}
			left, right := t.ChildrenLeft[node], t.ChildrenRight[node]
			if (left < 0) != (right < 0) {
				return fmt.Errorf("tree %d node %d has exactly one child", ti, node)
			}
			if left >= 0 {
				if left >= n || right >= n {
					return fmt.Errorf("tree %d node %d child index out of range", ti, node)
				}
				if f := t.Feature[node]; f < 0 || f >= len(a.Features) {
					return fmt.Errorf("tree %d node %d splits on unknown feature %d", ti, node, f)
				}
			}
		}
	}

	return nil
}
