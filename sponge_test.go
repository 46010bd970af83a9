package channel

import (
	"testing"

	"github.com/hlkong/MOM6-channel/grid"
)

func TestDampingLandmarks(t *testing.T) {
	b := newTestBasin(t, pointGrid())
	rate := b.cfg.Rate

	// The ramp reaches the full rate at the northern boundary.
	if got := b.Damping[3]; got != rate {
		t.Errorf("damping at northern boundary = %g, want %g", got, rate)
	}
	// Halfway into the sponge band the ramp is at half the rate.
	if got := b.Damping[5]; got != 0.5*rate {
		t.Errorf("damping mid-band = %g, want %g", got, 0.5*rate)
	}
	// No damping outside the band.
	if got := b.Damping[1]; got != 0 {
		t.Errorf("damping outside band = %g, want 0", got)
	}
	// No damping over land, even inside the band.
	if got := b.Damping[4]; got != 0 {
		t.Errorf("damping over bridge cell = %g, want 0", got)
	}
}

func TestDampingRampsWithLatitude(t *testing.T) {
	g, err := grid.New(60, 140, 0, 60, -70, 70)
	if err != nil {
		t.Fatal(err)
	}
	b := newTestBasin(t, g)

	// Walk one open-water column northward: damping must never decrease and
	// must stay within [0, rate].
	i := 30 // lon 30.5, inside the passage-gap window at every latitude
	prev := 0.0
	for j := 0; j < g.Ny; j++ {
		v := b.Damping[g.Index(i, j)]
		if v < 0 || v > b.cfg.Rate {
			t.Fatalf("row %d: damping %g outside [0, %g]", j, v, b.cfg.Rate)
		}
		if v < prev {
			t.Fatalf("row %d: damping %g decreased from %g going north", j, v, prev)
		}
		prev = v
	}

	// Everywhere: land cells are never damped.
	for idx, v := range b.Damping {
		if b.BottomDepth[idx] <= b.cfg.MinDepth && v != 0 {
			t.Fatalf("cell %d: land cell has damping %g", idx, v)
		}
	}
}

func TestTargetInterfaceBroadcast(t *testing.T) {
	b := newTestBasin(t, pointGrid())

	want := TargetProfile()
	if len(want) != 31 {
		t.Fatalf("target profile has %d points, want 31", len(want))
	}
	if want[0] != 0 {
		t.Errorf("target profile starts at %g, want 0", want[0])
	}
	for k := 1; k < len(want); k++ {
		if want[k] > want[k-1] {
			t.Fatalf("target profile increases at %d (%g -> %g)", k, want[k-1], want[k])
		}
	}

	for idx, prof := range b.TargetInterface {
		if len(prof) != len(want) {
			t.Fatalf("cell %d: target profile has %d points, want %d", idx, len(prof), len(want))
		}
		for k := range prof {
			if prof[k] != want[k] {
				t.Fatalf("cell %d: target interface %d = %g, want %g", idx, k, prof[k], want[k])
			}
		}
	}

	// Each cell owns its copy; the fixed table must stay untouched.
	b.TargetInterface[0][0] = 42
	if b.TargetInterface[1][0] == 42 || targetInterfaceProfile[0] == 42 {
		t.Error("target interface profile is shared between cells")
	}
}
