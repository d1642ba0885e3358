package fov

import (
	"math"

	"github.com/Chris3606/gogue"
)

// Strategy selects which grid backs the primary result: BooleanPrimary
// stores only visible/not-visible and derives light-level on demand;
// ScalarPrimary stores a per-cell light level in [0,1] and derives the
// boolean view from it (spec §4.2, "storage strategy").
type Strategy int

const (
	BooleanPrimary Strategy = iota
	ScalarPrimary
)

// octant multipliers for mapping a (col, row) pair walked in the first
// octant onto each of the 8 octants around origin. Row index 0..3 is xx,
// xy, yx, yy (Bjorn Bergström's recursive shadowcasting table).
var octantMultipliers = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FOV computes and caches visibility around one or more origins against a
// transparency map. A single FOV value is reused across calculate calls;
// Reset clears accumulated state without discarding the transparency
// source or storage strategy.
type FOV struct {
	transparency gogue.GridView[bool]
	strategy     Strategy

	boolResult   *gogue.BitGrid
	scalarResult *gogue.DenseGrid[float64]

	current  map[gogue.Point]struct{}
	previous map[gogue.Point]struct{}

	calculations []Calculation

	onRecalculated    func(Calculation)
	onVisibilityReset func()
}

// NewBooleanPrimary builds an FOV that stores only a visible/not-visible
// bit per cell. ScalarResult is derived on read: 0.0 where not visible,
// elsewhere the brightest level any recorded calculation gives the cell.
func NewBooleanPrimary(transparency gogue.GridView[bool]) (*FOV, error) {
	return newFOV(transparency, BooleanPrimary)
}

// NewScalarPrimary builds an FOV that stores a light-level float per
// cell, falling off linearly with distance from each origin; a cell seen
// by several calculations keeps the brightest level any of them gives it.
// BooleanResult is derived: visible iff scalar > 0.
func NewScalarPrimary(transparency gogue.GridView[bool]) (*FOV, error) {
	return newFOV(transparency, ScalarPrimary)
}

func newFOV(transparency gogue.GridView[bool], strategy Strategy) (*FOV, error) {
	w, h := transparency.Width(), transparency.Height()
	f := &FOV{
		transparency: transparency,
		strategy:     strategy,
		current:      make(map[gogue.Point]struct{}),
		previous:     make(map[gogue.Point]struct{}),
	}
	var err error
	switch strategy {
	case BooleanPrimary:
		f.boolResult, err = gogue.NewBitGrid(w, h)
	case ScalarPrimary:
		f.scalarResult, err = gogue.NewDenseGrid[float64](w, h)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OnRecalculated registers a callback invoked at the end of every
// Calculate/CalculateAppend with the record of that call.
func (f *FOV) OnRecalculated(fn func(Calculation)) { f.onRecalculated = fn }

// OnVisibilityReset registers a callback invoked at the start of every
// Reset, before cleared state takes effect.
func (f *FOV) OnVisibilityReset(fn func()) { f.onVisibilityReset = fn }

// Reset clears all accumulated visibility and calculation history (spec
// §4.2, "reset"). The visible set it clears becomes the previous set that
// NewlySeen and NewlyUnseen compare against; a Reset made when no
// calculation has run since the last one leaves that previous set as it
// is, so two Resets in a row have the same effect as one.
func (f *FOV) Reset() {
	if f.onVisibilityReset != nil {
		f.onVisibilityReset()
	}
	if f.boolResult != nil {
		f.boolResult.Clear()
	}
	if f.scalarResult != nil {
		f.scalarResult.Clear()
	}
	if len(f.calculations) > 0 {
		f.previous = f.current
		f.current = make(map[gogue.Point]struct{})
	}
	f.calculations = nil
}

// Calculate resets prior visibility and computes a fresh field of view
// from origin (spec §4.2, "calculate"). radius is clamped to >= 1.
// distance selects which metric bounds the radius. A zero DistanceMetric
// value (Manhattan) is a valid, explicit choice, not a default filled in
// for an omitted argument.
func (f *FOV) Calculate(origin gogue.Point, radius float64, distance gogue.DistanceMetric) error {
	f.Reset()
	return f.CalculateAppend(origin, radius, distance)
}

// CalculateCone is Calculate restricted to a cone of angleDeg compass
// heading (0 = up/north, clockwise) and spanDeg total width.
func (f *FOV) CalculateCone(origin gogue.Point, radius float64, distance gogue.DistanceMetric, angleDeg, spanDeg float64) error {
	f.Reset()
	return f.calculateAppendCone(origin, radius, distance, angleDeg, spanDeg, true)
}

// CalculateAppend computes visibility from origin and unions it into the
// existing result without clearing prior calculations (spec §4.2,
// "calculate_append").
func (f *FOV) CalculateAppend(origin gogue.Point, radius float64, distance gogue.DistanceMetric) error {
	return f.calculateAppendCone(origin, radius, distance, 0, 0, false)
}

// CalculateAppendCone is CalculateAppend restricted to a directional
// cone, unioned into existing results (spec §4.2).
func (f *FOV) CalculateAppendCone(origin gogue.Point, radius float64, distance gogue.DistanceMetric, angleDeg, spanDeg float64) error {
	return f.calculateAppendCone(origin, radius, distance, angleDeg, spanDeg, true)
}

func (f *FOV) calculateAppendCone(origin gogue.Point, radius float64, distance gogue.DistanceMetric, angleDeg, spanDeg float64, cone bool) error {
	if !origin.In(f.transparency.Bounds()) {
		return errOriginOutOfBounds(origin)
	}
	if cone && (spanDeg < 0 || spanDeg > 360) {
		return errInvalidSpan(spanDeg)
	}
	radius = clampRadius(radius)

	if len(f.calculations) > 0 {
		f.previous = f.current
		f.current = make(map[gogue.Point]struct{}, len(f.previous))
		for p := range f.previous {
			f.current[p] = struct{}{}
		}
	}

	var rawTargetDeg, halfSpan float64
	if cone {
		rawTargetDeg = normalizeDeg(angleDeg - 90)
		halfSpan = spanDeg / 2
	}

	f.markVisible(origin, 1.0)
	for octant := 0; octant < 8; octant++ {
		f.castOctant(origin, 1, 1.0, 0.0, radius, distance, octantMultipliers[octant], cone, rawTargetDeg, halfSpan)
	}

	f.calculations = append(f.calculations, Calculation{
		Origin: origin, Radius: radius, Distance: distance,
		AngleDeg: angleDeg, SpanDeg: spanDeg, Cone: cone,
	})
	if f.onRecalculated != nil {
		f.onRecalculated(f.calculations[len(f.calculations)-1])
	}
	return nil
}

// castOctant recursively sweeps rows of one octant between leftSlope and
// rightSlope, opening and closing shadow windows as it crosses blocking
// cells (the standard recursive shadowcasting scan, spec §4.2).
func (f *FOV) castOctant(origin gogue.Point, row int, leftSlope, rightSlope, radius float64, distance gogue.DistanceMetric, mult [4]int, cone bool, rawTargetDeg, halfSpan float64) {
	if leftSlope < rightSlope {
		return
	}
	radiusSq := radius * radius

	for ; float64(row) <= radius; row++ {
		dx := -row - 1
		dy := -row
		blocked := false
		var newLeftSlope float64

		for dx <= 0 {
			dx++
			mapX := origin.X + dx*mult[0] + dy*mult[1]
			mapY := origin.Y + dx*mult[2] + dy*mult[3]
			curSlopeLeft := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			curSlopeRight := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if curSlopeRight > leftSlope {
				continue
			}
			if curSlopeLeft < rightSlope {
				break
			}

			inRange := withinMetric(dx, dy, radius, radiusSq, distance)

			p := gogue.Point{X: mapX, Y: mapY}
			if p.In(f.transparency.Bounds()) && inRange && (!cone || inCone(mapX-origin.X, mapY-origin.Y, rawTargetDeg, halfSpan)) {
				// Falloff uses the calculation's own metric, not a fixed
				// Euclidean distance, and divides by radius+1 rather than
				// radius so every cell within range keeps a strictly
				// positive level, preserving boolean_result[p] <=>
				// scalar_result[p] > 0 at the radius boundary.
				level := 1.0 - distance.Calculate(gogue.Point{}, gogue.Point{X: dx, Y: dy})/(radius+1)
				f.markVisible(p, level)
			}

			if blocked {
				if !f.isTransparent(p) {
					newLeftSlope = curSlopeRight
					continue
				}
				blocked = false
				leftSlope = newLeftSlope
			} else if !f.isTransparent(p) && row < int(radius) {
				blocked = true
				f.castOctant(origin, row+1, leftSlope, curSlopeLeft, radius, distance, mult, cone, rawTargetDeg, halfSpan)
				newLeftSlope = curSlopeRight
			}
		}
		if blocked {
			break
		}
	}
}

func (f *FOV) isTransparent(p gogue.Point) bool {
	if !p.In(f.transparency.Bounds()) {
		return false
	}
	return f.transparency.At(p)
}

func withinMetric(dx, dy int, radius, radiusSq float64, distance gogue.DistanceMetric) bool {
	switch distance {
	case gogue.Chebyshev:
		return float64(max(abs(dx), abs(dy))) <= radius
	case gogue.Euclidean:
		return float64(dx*dx+dy*dy) <= radiusSq
	default: // Manhattan
		return float64(abs(dx)+abs(dy)) <= radius
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// normalizeDeg folds an arbitrary angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// pseudoAtan2Deg approximates atan2(dy, dx) in degrees within the raw
// frame (0 = +X axis, counterclockwise) using a fast quadrant-based
// linear approximation rather than math.Atan2, per the spec's
// "approximated atan2" requirement (spec §4.2).
func pseudoAtan2Deg(dx, dy int) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	fx, fy := float64(dx), float64(dy)
	ax, ay := math.Abs(fx), math.Abs(fy)
	var angle float64
	if ax >= ay {
		angle = 45 * (fy / ax)
		if fx < 0 {
			angle = 180 - angle
		}
	} else {
		angle = 90 - 45*(fx/ay)
		if fy < 0 {
			angle = -angle
		}
	}
	return normalizeDeg(angle)
}

// inCone reports whether the cell at offset (dx, dy) from the origin
// falls within halfSpan degrees of rawTargetDeg, both expressed in the
// raw (0 = +X axis) frame produced by the -90 degree rotation applied to
// the caller's compass-convention angle (spec §4.2, "cone restriction").
func inCone(dx, dy int, rawTargetDeg, halfSpan float64) bool {
	cellDeg := pseudoAtan2Deg(dx, dy)
	delta := math.Abs(normalizeDeg(cellDeg - rawTargetDeg))
	if delta > 180 {
		delta = 360 - delta
	}
	return delta <= halfSpan
}

// markVisible records p as visible in the result storage and in the
// current-calculation point set, at the given light level in [0,1].
func (f *FOV) markVisible(p gogue.Point, level float64) {
	f.current[p] = struct{}{}
	switch f.strategy {
	case BooleanPrimary:
		f.boolResult.Set(p, true)
	case ScalarPrimary:
		if existing := f.scalarResult.At(p); level > existing {
			f.scalarResult.Set(p, level)
		}
	}
}

// BooleanResult returns a read-only view over visible/not-visible per
// cell, derived from the scalar grid when Strategy is ScalarPrimary.
func (f *FOV) BooleanResult() gogue.GridView[bool] {
	if f.strategy == BooleanPrimary {
		return f.boolResult
	}
	return gogue.NewTranslationView[bool, float64](f.scalarResult, func(_ gogue.Point, v float64) bool {
		return v > 0
	})
}

// ScalarResult returns a read-only view over per-cell light level in
// [0,1]. When Strategy is BooleanPrimary, the level for a visible cell is
// computed on read as the max, over every recorded calculation, of
// 1 - distance_i(origin_i, pos)/(radius_i+1) — spec §4.2's definition of
// scalar_result for the boolean-primary variant.
func (f *FOV) ScalarResult() gogue.GridView[float64] {
	if f.strategy == ScalarPrimary {
		return f.scalarResult
	}
	return gogue.NewTranslationView[float64, bool](f.boolResult, func(p gogue.Point, visible bool) float64 {
		if !visible {
			return 0.0
		}
		return f.maxBrightAt(p)
	})
}

// maxBrightAt returns the brightest level any recorded calculation would
// assign to p, or 0 if none of them reach it (spec §4.2).
func (f *FOV) maxBrightAt(p gogue.Point) float64 {
	best := 0.0
	for _, c := range f.calculations {
		dx, dy := p.X-c.Origin.X, p.Y-c.Origin.Y
		if c.Cone && !inCone(dx, dy, normalizeDeg(c.AngleDeg-90), c.SpanDeg/2) {
			continue
		}
		d := c.Distance.Calculate(gogue.Point{}, gogue.Point{X: dx, Y: dy})
		if d > c.Radius {
			continue
		}
		if level := 1.0 - d/(c.Radius+1); level > best {
			best = level
		}
	}
	return best
}

// CurrentFOV returns the set of points marked visible since the last
// Reset, across every Calculate/CalculateAppend call made since then.
func (f *FOV) CurrentFOV() map[gogue.Point]struct{} { return f.current }

// NewlySeen returns points visible now that are not in the previous set
// (spec §3, "newly seen / newly unseen"). The previous set is what was
// visible just before the most recent Reset (including the one Calculate
// performs); each further CalculateAppend since then replaces it with what
// was visible just before that call.
func (f *FOV) NewlySeen() []gogue.Point {
	out := make([]gogue.Point, 0, len(f.current))
	for p := range f.current {
		if _, ok := f.previous[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// NewlyUnseen returns points in the previous set (see NewlySeen) that are
// not visible now.
func (f *FOV) NewlyUnseen() []gogue.Point {
	out := make([]gogue.Point, 0, len(f.previous))
	for p := range f.previous {
		if _, ok := f.current[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Calculations returns the record of every calculate/calculate_append
// call made since the last Reset, in call order.
func (f *FOV) Calculations() []Calculation {
	return f.calculations
}
