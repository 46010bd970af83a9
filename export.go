package channel

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/mazznoer/colorgrad"
)

// ExportPng renders a 2-D cell-indexed field to a PNG, one pixel per grid
// cell, on a blue-to-red gradient scaled to the field's range.
func (b *Basin) ExportPng(name string, vals []float64) error {
	g := b.Grid
	if len(vals) != g.NumCells() {
		return fmt.Errorf("channel: field has %d values for %d cells", len(vals), g.NumCells())
	}

	grad := colorgrad.NewGradient()
	grad.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	cb, err := grad.Build()
	if err != nil {
		return err
	}

	min, max := minMax(vals)
	span := max - min
	if span == 0 {
		span = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Nx, g.Ny))
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			v := (vals[g.Index(i, j)] - min) / span
			img.Set(i, g.Ny-1-j, cb.At(v)) // north up
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
