package channel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/ini.v1"
)

// Config is a struct that holds all configuration options for the basin
// setup field generation.
type Config struct {
	*TopoConfig
	*SpongeConfig
	*VerticalConfig
}

// NewConfig returns a new Config with default values. The per-layer
// thickness profile has no default and must be supplied by the caller.
func NewConfig() *Config {
	return &Config{
		TopoConfig:     NewTopoConfig(),
		SpongeConfig:   NewSpongeConfig(),
		VerticalConfig: NewVerticalConfig(),
	}
}

// TopoConfig is a struct that holds all configuration options for the bottom
// topography generation. Positions are in degrees, feature widths in
// normalized domain units.
type TopoConfig struct {
	MaxDepth  float64 // Maximum basin depth in m
	ArcHeight float64 // Island arc height as a fraction of MaxDepth

	ChannelLatS  float64 // Southern edge of the reentrant channel
	ChannelLatN  float64 // Northern edge of the reentrant channel
	PassageWidth float64 // Latitude width added to the passage beyond the channel edges
	GapLonW      float64 // Western edge of the passage-gap longitude window
	GapLonE      float64 // Eastern edge of the passage-gap longitude window

	ShelfWidth  float64 // Width of the western/eastern continental shelf bumps
	ShelfHeight float64 // Height of the shelf bumps (fraction of full depth)
	SlopeWidth  float64 // Width of the extra eastern slope extension
	SlopeHeight float64 // Height of the extra eastern slope extension
	WallWidth   float64 // Width of the southern boundary wall
	WallHeight  float64 // Height of the southern boundary wall

	ArcLon           float64 // Longitude of the island arc center
	ArcLat           float64 // Latitude of the island arc center
	ArcLonWidth      float64 // Zonal width of the arc core and inner slopes
	ArcApronLonWidth float64 // Zonal width of the outer arc aprons
	ArcCoreHalfWidth float64 // Meridional half-width of the flat arc core
	ArcSlopeWidth    float64 // Meridional width of the inner flank slopes
	ArcApronWidth    float64 // Meridional width of the outer flank aprons

	ClampXMin float64 // Interior clamp window, western edge (normalized)
	ClampXMax float64 // Interior clamp window, eastern edge (normalized)
	ClampYMin float64 // Interior clamp window, southern edge (normalized)
	ClampYMax float64 // Interior clamp window, northern edge (normalized)

	RoughnessAmp         float64 // Amplitude of the optional noise roughness (0 disables)
	RoughnessOctaves     int     // Number of noise octaves
	RoughnessPersistence float64 // Amplitude falloff per octave
	RoughnessSeed        int64   // Noise seed
}

// NewTopoConfig returns a new config for the bottom topography generation.
func NewTopoConfig() *TopoConfig {
	return &TopoConfig{
		MaxDepth:  4000,
		ArcHeight: 0.375, // 1500 m over a 4000 m basin

		ChannelLatS:  -60,
		ChannelLatN:  -40,
		PassageWidth: 4,
		GapLonW:      4,
		GapLonE:      56,

		ShelfWidth:  0.1,
		ShelfHeight: 0.95,
		SlopeWidth:  0.24,
		SlopeHeight: 0.3,
		WallWidth:   0.16,
		WallHeight:  1.0,

		ArcLon:           18,
		ArcLat:           -50,
		ArcLonWidth:      0.15,
		ArcApronLonWidth: 0.3,
		ArcCoreHalfWidth: 0.02,
		ArcSlopeWidth:    0.05,
		ArcApronWidth:    0.12,

		ClampXMin: 0.1,
		ClampXMax: 0.9,
		ClampYMin: 0.1,
		ClampYMax: 0.9,

		RoughnessAmp:         0,
		RoughnessOctaves:     4,
		RoughnessPersistence: 0.6,
		RoughnessSeed:        1234,
	}
}

// SpongeConfig is a struct that holds all configuration options for the
// northern sponge restoring profile.
type SpongeConfig struct {
	Rate     float64 // Maximum damping rate in 1/s
	Width    float64 // Sponge band width in degrees of latitude
	MinDepth float64 // Depth at or below which cells count as land, in m
}

// NewSpongeConfig returns a new config for the sponge profile generation.
func NewSpongeConfig() *SpongeConfig {
	return &SpongeConfig{
		Rate:     1.0 / (10 * 86400), // 10 day decay
		Width:    5,
		MinDepth: 0,
	}
}

// VerticalConfig is a struct that holds the vertical grid options for the
// initial layer thickness field.
type VerticalConfig struct {
	Profile      []float64 // Nominal top-to-bottom layer thicknesses in m (required)
	MinThickness float64   // Minimum permitted layer thickness in m
}

// NewVerticalConfig returns a new config for the thickness initialization.
func NewVerticalConfig() *VerticalConfig {
	return &VerticalConfig{
		MinThickness: 0.001,
	}
}

// Validate checks the configuration for contradictions that would produce a
// broken basin. A nil or non-positive thickness profile is fatal; so is a
// profile too shallow to fill the deepest water column.
func (cfg *Config) Validate() error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("channel: MaxDepth must be positive, got %g", cfg.MaxDepth)
	}
	if cfg.ArcHeight < 0 || cfg.ArcHeight > 1 {
		return fmt.Errorf("channel: ArcHeight must be in [0,1], got %g", cfg.ArcHeight)
	}
	if cfg.ChannelLatN <= cfg.ChannelLatS {
		return fmt.Errorf("channel: inverted channel band (%g..%g)", cfg.ChannelLatS, cfg.ChannelLatN)
	}
	if cfg.GapLonE <= cfg.GapLonW {
		return fmt.Errorf("channel: passage gap window is empty (%g..%g)", cfg.GapLonW, cfg.GapLonE)
	}
	if cfg.PassageWidth < 0 {
		return fmt.Errorf("channel: negative passage width %g", cfg.PassageWidth)
	}
	if cfg.SpongeConfig.Width <= 0 {
		return fmt.Errorf("channel: sponge width must be positive, got %g", cfg.SpongeConfig.Width)
	}
	if cfg.Rate < 0 {
		return fmt.Errorf("channel: negative sponge rate %g", cfg.Rate)
	}
	if cfg.MinThickness < 0 {
		return fmt.Errorf("channel: negative minimum thickness %g", cfg.MinThickness)
	}
	if len(cfg.Profile) == 0 {
		return fmt.Errorf("channel: thickness profile is required and has no default")
	}
	for k, h := range cfg.Profile {
		if h <= 0 {
			return fmt.Errorf("channel: thickness profile entry %d is not positive (%g)", k, h)
		}
	}
	if sum := floats.Sum(cfg.Profile); sum < cfg.MaxDepth {
		return fmt.Errorf("channel: thickness profile sums to %g m, shallower than MaxDepth %g m", sum, cfg.MaxDepth)
	}
	return nil
}

// LoadConfig reads a Config from an ini file. Keys that are absent keep
// their default values, except the vertical thickness profile, which is
// required.
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("channel: reading config: %w", err)
	}
	cfg := NewConfig()

	topo := file.Section("topography")
	cfg.MaxDepth = topo.Key("MaxDepth").MustFloat64(cfg.MaxDepth)
	cfg.ArcHeight = topo.Key("ArcHeight").MustFloat64(cfg.ArcHeight)
	cfg.ChannelLatS = topo.Key("ChannelLatS").MustFloat64(cfg.ChannelLatS)
	cfg.ChannelLatN = topo.Key("ChannelLatN").MustFloat64(cfg.ChannelLatN)
	cfg.PassageWidth = topo.Key("PassageWidth").MustFloat64(cfg.PassageWidth)
	cfg.GapLonW = topo.Key("GapLonW").MustFloat64(cfg.GapLonW)
	cfg.GapLonE = topo.Key("GapLonE").MustFloat64(cfg.GapLonE)
	cfg.ArcLon = topo.Key("ArcLon").MustFloat64(cfg.ArcLon)
	cfg.ArcLat = topo.Key("ArcLat").MustFloat64(cfg.ArcLat)
	cfg.RoughnessAmp = topo.Key("RoughnessAmp").MustFloat64(cfg.RoughnessAmp)
	cfg.RoughnessSeed = topo.Key("RoughnessSeed").MustInt64(cfg.RoughnessSeed)

	sponge := file.Section("sponge")
	cfg.Rate = sponge.Key("Rate").MustFloat64(cfg.Rate)
	cfg.SpongeConfig.Width = sponge.Key("Width").MustFloat64(cfg.SpongeConfig.Width)
	cfg.MinDepth = sponge.Key("MinDepth").MustFloat64(cfg.MinDepth)

	vertical := file.Section("vertical")
	cfg.MinThickness = vertical.Key("MinThickness").MustFloat64(cfg.MinThickness)
	if !vertical.HasKey("Profile") {
		return nil, fmt.Errorf("channel: config %s is missing the required vertical Profile key", path)
	}
	cfg.Profile = vertical.Key("Profile").Float64s(",")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
