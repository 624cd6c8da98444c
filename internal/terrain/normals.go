package terrain

import "github.com/go-gl/mathgl/mgl64"

// Normals returns the unit surface normal of every cell, indexed like the grid
// (row-major). Heights are multiplied by verticalScale and cells are one unit
// apart. Y is up. Gradients use wrapped neighbours, matching the tiling of the grid.
// Grids smaller than 2×2 have no gradient and get straight-up normals.
func Normals(grid *HeightGrid, verticalScale float64) []mgl64.Vec3 {
	n := grid.Size()
	period := n - 1
	out := make([]mgl64.Vec3, n*n)
	if period < 1 {
		for i := range out {
			out[i] = mgl64.Vec3{0, 1, 0}
		}
		return out
	}
	for y := range n {
		for x := range n {
			left := grid.At(wrap(x-1, period), y)
			right := grid.At(wrap(x+1, period), y)
			up := grid.At(x, wrap(y-1, period))
			down := grid.At(x, wrap(y+1, period))

			dx := mgl64.Vec3{2, (right - left) * verticalScale, 0}
			dz := mgl64.Vec3{0, (down - up) * verticalScale, 2}
			out[y*n+x] = dz.Cross(dx).Normalize()
		}
	}
	return out
}
