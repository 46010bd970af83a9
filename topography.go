package channel

import (
	"math"

	"github.com/hlkong/MOM6-channel/noise"
	"github.com/hlkong/MOM6-channel/shapes"
)

// topoShape bundles the topography config with the feature positions
// normalized to the domain extents, so the per-cell composition only deals
// in normalized coordinates.
type topoShape struct {
	*TopoConfig
	xArc, yArc     float64 // arc center
	yChanS, yChanN float64 // reentrant channel edges
	rough          *noise.Octaved
}

func (b *Basin) newTopoShape() *topoShape {
	g, cfg := b.Grid, b.cfg.TopoConfig
	t := &topoShape{
		TopoConfig: cfg,
		xArc:       (cfg.ArcLon - g.LonMin) / (g.LonMax - g.LonMin),
		yArc:       (cfg.ArcLat - g.LatMin) / (g.LatMax - g.LatMin),
		yChanS:     (cfg.ChannelLatS - g.LatMin) / (g.LatMax - g.LatMin),
		yChanN:     (cfg.ChannelLatN - g.LatMin) / (g.LatMax - g.LatMin),
	}
	if cfg.RoughnessAmp > 0 {
		t.rough = noise.New(cfg.RoughnessOctaves, cfg.RoughnessPersistence, cfg.RoughnessSeed)
	}
	return t
}

// at composes the analytic features into a normalized depth at the given
// normalized position: 1 is full depth, 0 is land. The override passes
// enforce the [0,1] range afterwards.
func (t *topoShape) at(x, y float64) float64 {
	// Latitude gate: 1 outside the reentrant channel band, 0 inside, so the
	// shelf features stay just outside the channel.
	gate := math.Min(
		shapes.Plateau(y-0.5*t.yChanS, 0.5*t.yChanS)+
			shapes.Plateau(y-0.5*(t.yChanN+1), 0.5*(1-t.yChanN)), 1)

	d := 1.0

	// Continental shelves along the western and eastern walls.
	d -= t.ShelfHeight * shapes.Bump(x, t.ShelfWidth) * gate
	d -= t.ShelfHeight * shapes.Bump(x-1, t.ShelfWidth) * gate

	// A gentler slope extending the eastern shelf into the basin.
	d -= t.SlopeHeight * shapes.CosineBell(x-1, t.SlopeWidth) * gate

	// The southern boundary wall, spanning the full zonal extent.
	d -= t.WallHeight * shapes.Bump(y, t.WallWidth)

	// The island arc across the passage: a flat-topped core with inner
	// slopes and wider aprons on the northern and southern flanks. The
	// terms stack near the core; the interior clamp levels the top.
	ax, ay := x-t.xArc, y-t.yArc
	sa := t.ArcHeight
	core := shapes.CosineBell(ax, t.ArcLonWidth)
	apron := shapes.CosineBell(ax, t.ArcApronLonWidth)
	hw := t.ArcCoreHalfWidth
	d -= sa * core * shapes.Plateau(ay, hw)
	d -= sa * core * shapes.HalfCosineBell(ay-hw, t.ArcSlopeWidth, 1)
	d -= sa * apron * shapes.HalfCosineBell(ay-hw, t.ArcApronWidth, 1)
	d -= sa * core * shapes.HalfCosineBell(ay+hw, t.ArcSlopeWidth, -1)
	d -= sa * apron * shapes.HalfCosineBell(ay+hw, t.ArcApronWidth, -1)

	if t.rough != nil {
		d -= t.RoughnessAmp * t.rough.Eval2(x, y)
	}
	return d
}

// generateTopography fills b.BottomDepth: the analytic composition followed
// by the ordered override passes (clamp, sponge flatten, land bridge), then
// the rescale to physical depth. The override order is significant; later
// passes take precedence unconditionally.
func (b *Basin) generateTopography() {
	g := b.Grid
	t := b.newTopoShape()
	d := make([]float64, g.NumCells())
	forEachCell(g.NumCells(), func(start, end int) {
		for idx := start; idx < end; idx++ {
			x, y := b.normPos(idx)
			d[idx] = t.at(x, y)
		}
	})

	b.applyInteriorClamp(d)
	b.flattenSpongeZone(d)
	b.zeroLandBridge(d)

	for idx := range d {
		d[idx] *= b.cfg.MaxDepth
	}
	b.BottomDepth = d
}

// applyInteriorClamp bounds the composed normalized depth. Inside the
// interior window the stacked arc terms are held at the intended arc top of
// 1-ArcHeight; everywhere the value is kept within [0,1].
func (b *Basin) applyInteriorClamp(d []float64) {
	cfg := b.cfg.TopoConfig
	top := 1 - cfg.ArcHeight
	for idx, v := range d {
		x, y := b.normPos(idx)
		if x >= cfg.ClampXMin && x <= cfg.ClampXMax && y >= cfg.ClampYMin && y <= cfg.ClampYMax {
			v = math.Max(v, top)
		}
		d[idx] = math.Min(math.Max(v, 0), 1)
	}
}

// flattenSpongeZone forces full depth within the sponge latitude band so
// the restoring region has no slope.
func (b *Basin) flattenSpongeZone(d []float64) {
	g := b.Grid
	edge := g.LatMax - b.cfg.SpongeConfig.Width
	for idx := range d {
		if g.Lat[idx] >= edge {
			d[idx] = 1
		}
	}
}

// zeroLandBridge closes the basin outside the passage-gap longitude window:
// cells beyond either channel edge (widened by half the passage width) turn
// to land there, leaving the reentrant seam open only across the passage.
func (b *Basin) zeroLandBridge(d []float64) {
	g, cfg := b.Grid, b.cfg.TopoConfig
	latN := cfg.ChannelLatN + 0.5*cfg.PassageWidth
	latS := cfg.ChannelLatS - 0.5*cfg.PassageWidth
	for idx := range d {
		if lon := g.Lon[idx]; lon >= cfg.GapLonW && lon <= cfg.GapLonE {
			continue
		}
		if lat := g.Lat[idx]; lat > latN || lat < latS {
			d[idx] = 0
		}
	}
}
