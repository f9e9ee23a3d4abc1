package riskmodel

// Scaler is a fitted linear feature scaler (x - mean) / scale, exported from
// the training pipeline. Both slices have one entry per feature in schema
// order.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform applies the scaler to a raw vector and returns a fresh slice.
// The input length must equal the scaler width; callers validate it against
// the artifact schema before reaching this point.
func (s Scaler) Transform(raw []float64) []float64 {
	scaled := make([]float64, len(raw))
	for i, x := range raw {
		scaled[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return scaled
}
