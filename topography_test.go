package channel

import (
	"testing"

	"github.com/hlkong/MOM6-channel/grid"
)

// testConfig returns the default configuration with the reference 30-layer
// thickness profile derived from the target interface table.
func testConfig() *Config {
	cfg := NewConfig()
	eta := TargetProfile()
	prof := make([]float64, len(eta)-1)
	for k := range prof {
		prof[k] = eta[k] - eta[k+1]
	}
	cfg.Profile = prof
	return cfg
}

// pointGrid returns a hand-picked set of cell centers on the default domain:
//
//	0: island arc center
//	1: open interior, far from every feature
//	2: land bridge at the reentrant seam
//	3: northern domain boundary inside the passage-gap window
//	4: land bridge inside the sponge band
//	5: middle of the sponge band, open water
func pointGrid() *grid.Definition {
	return &grid.Definition{
		Nx: 6, Ny: 1,
		LonMin: 0, LonMax: 60,
		LatMin: -70, LatMax: 70,
		Lon: []float64{18, 30, 2, 30, 2, 30},
		Lat: []float64{-50, 20, 20, 70, 69, 67.5},
	}
}

func newTestBasin(t *testing.T, g *grid.Definition) *Basin {
	t.Helper()
	b, err := NewBasin(g, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestTopographyLandmarks(t *testing.T) {
	b := newTestBasin(t, pointGrid())

	// The arc top is clamped to (1 - archeight) * MaxDepth.
	if got := b.BottomDepth[0]; got != 2500 {
		t.Errorf("arc center depth = %g, want 2500", got)
	}
	// Far from every feature the basin keeps its full depth.
	if got := b.BottomDepth[1]; got != 4000 {
		t.Errorf("interior depth = %g, want 4000", got)
	}
	// The land bridge closes the seam outside the passage.
	if got := b.BottomDepth[2]; got != 0 {
		t.Errorf("bridge depth = %g, want 0", got)
	}
	// The sponge band is flattened to full depth.
	if got := b.BottomDepth[3]; got != 4000 {
		t.Errorf("northern boundary depth = %g, want 4000", got)
	}
	if got := b.BottomDepth[5]; got != 4000 {
		t.Errorf("sponge band depth = %g, want 4000", got)
	}
	// The bridge override outranks the sponge flattening.
	if got := b.BottomDepth[4]; got != 0 {
		t.Errorf("bridge depth inside sponge band = %g, want 0", got)
	}
}

func TestTopographyBounds(t *testing.T) {
	g, err := grid.New(60, 140, 0, 60, -70, 70)
	if err != nil {
		t.Fatal(err)
	}
	b := newTestBasin(t, g)
	cfg := b.cfg

	latN := cfg.ChannelLatN + 0.5*cfg.PassageWidth
	latS := cfg.ChannelLatS - 0.5*cfg.PassageWidth
	for idx, d := range b.BottomDepth {
		if d < 0 || d > cfg.MaxDepth {
			t.Fatalf("cell %d: depth %g outside [0, %g]", idx, d, cfg.MaxDepth)
		}
		lon, lat := g.Lon[idx], g.Lat[idx]
		inGap := lon >= cfg.GapLonW && lon <= cfg.GapLonE
		if lat >= g.LatMax-cfg.SpongeConfig.Width && inGap && d != cfg.MaxDepth {
			t.Fatalf("cell %d (lon %g, lat %g): sponge band depth %g, want %g", idx, lon, lat, d, cfg.MaxDepth)
		}
		if !inGap && (lat > latN || lat < latS) && d != 0 {
			t.Fatalf("cell %d (lon %g, lat %g): bridge depth %g, want 0", idx, lon, lat, d)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	g, err := grid.New(30, 70, 0, 60, -70, 70)
	if err != nil {
		t.Fatal(err)
	}
	a := newTestBasin(t, g)
	b := newTestBasin(t, g)

	for idx := range a.BottomDepth {
		if a.BottomDepth[idx] != b.BottomDepth[idx] {
			t.Fatalf("cell %d: depth differs between runs (%g vs %g)", idx, a.BottomDepth[idx], b.BottomDepth[idx])
		}
		if a.Damping[idx] != b.Damping[idx] {
			t.Fatalf("cell %d: damping differs between runs", idx)
		}
		for k := range a.Thickness[idx] {
			if a.Thickness[idx][k] != b.Thickness[idx][k] {
				t.Fatalf("cell %d layer %d: thickness differs between runs", idx, k)
			}
		}
	}
}

func TestRoughnessIsSeededAndBounded(t *testing.T) {
	g, err := grid.New(30, 70, 0, 60, -70, 70)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.RoughnessAmp = 0.05
	a, err := NewBasin(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBasin(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for idx := range a.BottomDepth {
		if a.BottomDepth[idx] != b.BottomDepth[idx] {
			t.Fatalf("cell %d: roughened depth differs between runs", idx)
		}
		if d := a.BottomDepth[idx]; d < 0 || d > cfg.MaxDepth {
			t.Fatalf("cell %d: roughened depth %g outside [0, %g]", idx, d, cfg.MaxDepth)
		}
	}
}
