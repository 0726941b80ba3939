// Package layout places catalog skills on a radial tree. Each category fans
// its skills evenly across its angular spread, centered on the category's
// base angle, and pushes later skills further from the core so a branch reads
// as a run of concentric arcs.
package layout

import (
	"math"

	"github.com/papapumpkin/skillarc/internal/catalog"
)

// Params holds the presentational constants of the layout.
type Params struct {
	BaseRadius     float64 // distance of a category's first skill from the core
	RadiusStep     float64 // extra distance per skill index within a category
	RotationOffset float64 // degrees added to the placement angle for node rotation
}

// DefaultParams returns the spacing used by the original tree: 150 units to
// the first ring, 95 units between rings, cards turned 90° to face outward.
func DefaultParams() Params {
	return Params{
		BaseRadius:     150,
		RadiusStep:     95,
		RotationOffset: 90,
	}
}

// Point is the computed placement of one skill, in a coordinate system
// centered on the tree's core with y growing downward.
type Point struct {
	Category string
	Skill    string
	Color    string // the skill's hex color
	Index    int    // position of the skill within its category

	Angle    float64 // placement angle in degrees
	Radius   float64
	X        float64
	Y        float64
	Rotation float64 // node rotation in degrees
}

// Angles returns the placement angle, in degrees, of each of count skills in a
// branch centered on angle. A lone skill sits exactly on angle whatever the
// spread; otherwise the skills span [angle-spread/2, angle+spread/2] in equal
// steps. Non-positive counts yield nil.
func Angles(angle, spread float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	span, step := 0.0, 0.0
	if count > 1 {
		span = spread
		step = span / float64(count-1)
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = angle - span/2 + float64(i)*step
	}
	return out
}

// Radius returns the distance from the core of the skill at index.
func (p Params) Radius(index int) float64 {
	return p.BaseRadius + float64(index)*p.RadiusStep
}

// Compute places every skill in cats. Points come back in catalog order:
// category by category, skills in their declared order.
func Compute(cats []catalog.Category, params Params) []Point {
	points := make([]Point, 0, catalog.SkillCount(cats))
	for _, c := range cats {
		angles := Angles(c.Angle, c.Spread, len(c.Skills))
		for i, s := range c.Skills {
			deg := angles[i]
			rad := deg * math.Pi / 180
			r := params.Radius(i)
			points = append(points, Point{
				Category: c.Name,
				Skill:    s.Name,
				Color:    s.Hex,
				Index:    i,
				Angle:    deg,
				Radius:   r,
				X:        math.Cos(rad) * r,
				Y:        math.Sin(rad) * r,
				Rotation: deg + params.RotationOffset,
			})
		}
	}
	return points
}

// Bounds returns the smallest rectangle containing every point. It returns
// all zeros for an empty slice.
func Bounds(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// Extent returns the largest distance of any point from the core along either
// axis, which is what a host centered on the core needs to fit the tree.
func Extent(points []Point) float64 {
	minX, minY, maxX, maxY := Bounds(points)
	return math.Max(math.Max(-minX, maxX), math.Max(-minY, maxY))
}
