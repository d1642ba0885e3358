// Package fov implements symmetric recursive shadowcasting field-of-view
// over a gogue.GridView[bool] transparency map, with two interchangeable
// storage strategies (boolean-primary and scalar-primary) that expose the
// identical observable boolean_result/scalar_result/current_fov contract.
package fov

import "github.com/Chris3606/gogue"

// Calculation is an immutable record of one calculate/calculate_append
// call: where it originated, how far and in what shape it reached. The
// FOV accumulates one of these per call since the last Reset (spec §3,
// "FOV calculation record").
type Calculation struct {
	Origin   gogue.Point
	Radius   float64
	Distance gogue.DistanceMetric
	AngleDeg float64 // meaningful only if Cone is true
	SpanDeg  float64 // meaningful only if Cone is true
	Cone     bool
}

// clampRadius enforces "radius (>= 1; values < 1 are clamped to 1)" (spec
// §4.2). This is documented as a silent clamp, not a fault (spec §4.2,
// "Failure modes").
func clampRadius(r float64) float64 {
	if r < 1 {
		return 1
	}
	return r
}
