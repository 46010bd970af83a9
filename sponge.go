package channel

// targetInterfaceProfile is the prescribed reference stratification the
// sponge restores toward: interface heights in m, top to bottom, one per
// layer boundary of the 30-layer reference vertical grid. The heights are
// non-increasing and identical for every horizontal cell.
var targetInterfaceProfile = [31]float64{
	0, -25, -50, -75, -125, -175, -225, -300, -375, -450,
	-550, -650, -750, -875, -1000, -1125, -1275, -1425, -1575, -1750,
	-1925, -2100, -2300, -2500, -2700, -2900, -3100, -3325, -3550, -3775,
	-4000,
}

// TargetProfile returns a copy of the fixed target interface profile.
func TargetProfile() []float64 {
	prof := make([]float64, len(targetInterfaceProfile))
	copy(prof, targetInterfaceProfile[:])
	return prof
}

// buildSponge fills b.Damping and b.TargetInterface. The damping rate ramps
// linearly with latitude across the sponge band, from 0 at its southern edge
// to the configured rate at the northern domain boundary, and is zeroed over
// land so wall and bridge cells are never damped. The target interface
// heights are the fixed profile broadcast to every cell; the external
// sponge-restoring subsystem consumes both.
func (b *Basin) buildSponge() {
	g, sp := b.Grid, b.cfg.SpongeConfig
	damp := make([]float64, g.NumCells())
	eta := make([][]float64, g.NumCells())
	edge := g.LatMax - sp.Width
	forEachCell(g.NumCells(), func(start, end int) {
		for idx := start; idx < end; idx++ {
			if lat := g.Lat[idx]; lat > edge && b.BottomDepth[idx] > sp.MinDepth {
				r := sp.Rate * (lat - edge) / sp.Width
				if r > sp.Rate {
					r = sp.Rate
				}
				damp[idx] = r
			}
			eta[idx] = TargetProfile()
		}
	})
	b.Damping = damp
	b.TargetInterface = eta
}
