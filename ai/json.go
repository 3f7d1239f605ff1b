package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseWeights overlays a JSON object such as {"three": 80} on
// DefaultWeights. Unknown keys are rejected.
func ParseWeights(s string) (Weights, error) {
	return OverlayWeights(DefaultWeights, s)
}

// OverlayWeights is ParseWeights with an explicit base.
func OverlayWeights(base Weights, s string) (Weights, error) {
	w := base
	if s == "" {
		return w, nil
	}
	dec := json.NewDecoder(bytes.NewBufferString(s))
	dec.DisallowUnknownFields()
	if e := dec.Decode(&w); e != nil {
		return Weights{}, fmt.Errorf("parse weights: %w", e)
	}
	return w, nil
}
