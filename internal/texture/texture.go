// Package texture prepares CPU-side sprite images at the resolution the
// active quality tier asks for; uploading is the renderer's job.
package texture

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// ForQuality returns src rescaled to size x size. A non-positive size or a
// source already at the target resolution yields an unscaled RGBA copy.
func ForQuality(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	if size <= 0 || (b.Dx() == size && b.Dy() == size) {
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		stddraw.Draw(rgba, rgba.Bounds(), src, b.Min, stddraw.Src)
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Checker builds a procedural checkerboard sprite so the demo needs no
// asset files on disk.
func Checker(size, cells int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	light := color.RGBA{220, 220, 235, 255}
	dark := color.RGBA{40, 40, 60, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
