package main

import (
	"math"

	"heightmap/internal/terrain"

	"github.com/go-gl/mathgl/mgl64"
)

// maxSlope returns the steepest surface angle in degrees, treating the grid
// as a unit square whose heights are fractions of its width.
func maxSlope(g *terrain.HeightGrid) float64 {
	up := mgl64.Vec3{0, 1, 0}
	steepest := 0.0
	for _, n := range terrain.Normals(g, float64(g.Size()-1)) {
		angle := math.Acos(mgl64.Clamp(n.Dot(up), -1, 1))
		steepest = math.Max(steepest, angle)
	}
	return mgl64.RadToDeg(steepest)
}
