package terrain

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// ToGray16 quantizes the clamped grid into a 16-bit grayscale image.
// Pixel (x, y) holds cell (x, y); 0 maps to black and 1 to white.
func ToGray16(grid *HeightGrid) *image.Gray16 {
	n := grid.Size()
	img := image.NewGray16(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			v := clamp01(grid.At(x, y))
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(v * math.MaxUint16))})
		}
	}
	return img
}

// FromGray16 converts a square grayscale image back into a height grid in [0,1].
func FromGray16(img *image.Gray16) (*HeightGrid, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("terrain: image %dx%d is not square", b.Dx(), b.Dy())
	}
	g := NewHeightGrid(b.Dx())
	for y := range b.Dy() {
		for x := range b.Dx() {
			c := img.Gray16At(b.Min.X+x, b.Min.Y+y)
			g.Set(x, y, float64(c.Y)/math.MaxUint16)
		}
	}
	return g, nil
}

// Resample scales grid to size×size for hosts whose resolution is not 2^k+1.
// Heights are clamped to [0,1] and pass through 16-bit precision.
// A grid needs at least two samples per side to keep a wrap period.
func Resample(grid *HeightGrid, size int) (*HeightGrid, error) {
	if size < 2 {
		return nil, fmt.Errorf("terrain: resample size %d must be at least 2", size)
	}
	src := ToGray16(grid)
	dst := image.NewGray16(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromGray16(dst)
}
