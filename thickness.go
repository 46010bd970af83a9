package channel

import "math"

// initThickness fills b.Thickness from the nominal per-layer profile and the
// generated bathymetry. Interfaces are assigned bottom-up per column: each
// layer takes its nominal span where the water column allows it and collapses
// to the minimum thickness floor where it does not, so shallow columns
// concentrate their thickness at the bottom without interfaces crossing.
func (b *Basin) initThickness() {
	g, cfg := b.Grid, b.cfg.VerticalConfig
	prof := cfg.Profile
	nz := len(prof)

	// Nominal interface heights, top down by cumulative subtraction.
	e0 := make([]float64, nz+1)
	for k, h := range prof {
		e0[k+1] = e0[k] - h
	}

	thick := make([][]float64, g.NumCells())
	forEachCell(g.NumCells(), func(start, end int) {
		for idx := start; idx < end; idx++ {
			col := make([]float64, nz)
			e := -b.BottomDepth[idx] // current interface, starting at the bottom
			for k := nz - 1; k >= 0; k-- {
				h := math.Max(cfg.MinThickness, e0[k]-e)
				col[k] = h
				e += h // lands on e0[k] unless the floor kicked in
			}
			thick[idx] = col
		}
	})
	b.Thickness = thick
}
