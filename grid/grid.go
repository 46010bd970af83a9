// Package grid defines the uniform longitude/latitude grid the field
// generators are evaluated on. The grid is owned by the caller and is never
// mutated by the generators.
package grid

import "fmt"

// Definition describes a regular lon/lat grid of cell centers. Cells are
// indexed row-major, idx = j*Nx + i, with i increasing eastward and j
// increasing northward.
type Definition struct {
	Nx, Ny int // number of cells in longitude / latitude

	LonMin, LonMax float64 // domain longitude extent in degrees
	LatMin, LatMax float64 // domain latitude extent in degrees

	Lon []float64 // per-cell center longitude, len Nx*Ny
	Lat []float64 // per-cell center latitude, len Nx*Ny
}

// New returns a uniform grid of nx by ny cell centers spanning the given
// extents.
func New(nx, ny int, lonMin, lonMax, latMin, latMax float64) (*Definition, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("grid: cell counts must be positive, got %dx%d", nx, ny)
	}
	if lonMax <= lonMin || latMax <= latMin {
		return nil, fmt.Errorf("grid: inverted extents (lon %g..%g, lat %g..%g)", lonMin, lonMax, latMin, latMax)
	}
	g := &Definition{
		Nx:     nx,
		Ny:     ny,
		LonMin: lonMin,
		LonMax: lonMax,
		LatMin: latMin,
		LatMax: latMax,
		Lon:    make([]float64, nx*ny),
		Lat:    make([]float64, nx*ny),
	}
	dLon := (lonMax - lonMin) / float64(nx)
	dLat := (latMax - latMin) / float64(ny)
	for j := 0; j < ny; j++ {
		lat := latMin + (float64(j)+0.5)*dLat
		for i := 0; i < nx; i++ {
			idx := j*nx + i
			g.Lon[idx] = lonMin + (float64(i)+0.5)*dLon
			g.Lat[idx] = lat
		}
	}
	return g, nil
}

// NumCells returns the number of horizontal cells.
func (g *Definition) NumCells() int {
	return g.Nx * g.Ny
}

// Index returns the flat cell index for the given column/row pair.
func (g *Definition) Index(i, j int) int {
	return j*g.Nx + i
}
