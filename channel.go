// Package channel generates the synthetic setup fields for an idealized,
// zonally reentrant ocean-basin test configuration: a bottom depth field
// shaped like a channel basin with continental slopes and an island-arc
// constriction across the passage, a northern sponge restoring profile, and
// an initial layer thickness field consistent with the generated bathymetry.
// The generators run once at model setup and produce immutable fields; they
// perform no time stepping.
package channel

import (
	"github.com/hlkong/MOM6-channel/grid"
)

// Basin holds the generated setup fields for one configuration. All fields
// are flat, cell-indexed slices following grid.Definition indexing and are
// treated as immutable once NewBasin returns.
type Basin struct {
	Grid *grid.Definition
	cfg  *Config

	BottomDepth     []float64   // Bottom depth per cell, in m
	Damping         []float64   // Sponge damping rate per cell, in 1/s
	TargetInterface [][]float64 // Target interface heights per cell, top to bottom, in m
	Thickness       [][]float64 // Initial layer thicknesses per cell, top to bottom, in m
}

// NewBasin validates the configuration and generates all setup fields on the
// given grid. It either returns a complete basin or an error; no partial
// output is produced.
func NewBasin(g *grid.Definition, cfg *Config) (*Basin, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Basin{Grid: g, cfg: cfg}
	b.generateTopography()
	b.buildSponge()
	b.initThickness()
	return b, nil
}

// normPos returns the cell position normalized to [0,1] in longitude and
// latitude relative to the domain extents.
func (b *Basin) normPos(idx int) (x, y float64) {
	g := b.Grid
	x = (g.Lon[idx] - g.LonMin) / (g.LonMax - g.LonMin)
	y = (g.Lat[idx] - g.LatMin) / (g.LatMax - g.LatMin)
	return x, y
}
