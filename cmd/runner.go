package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	channel "github.com/hlkong/MOM6-channel"
	"github.com/hlkong/MOM6-channel/grid"
)

var (
	configFile = flag.String("config", "", "ini configuration file (must provide the vertical thickness profile)")
	nx         = flag.Int("nx", 120, "number of cells in longitude")
	ny         = flag.Int("ny", 280, "number of cells in latitude")
	depthPNG   = flag.String("depth-png", "depth.png", "bottom depth image output (empty to skip)")
	dampPNG    = flag.String("damping-png", "damping.png", "damping rate image output (empty to skip)")
)

func main() {
	flag.Parse()
	if *configFile == "" {
		log.Fatal("a -config file is required")
	}

	cfg, err := channel.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	g, err := grid.New(*nx, *ny, 0, 60, -70, 70)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"cells":  g.NumCells(),
		"layers": len(cfg.Profile),
	}).Info("generating basin setup fields")

	b, err := channel.NewBasin(g, cfg)
	if err != nil {
		log.Fatal(err)
	}

	shallowest, deepest := b.BottomDepth[0], b.BottomDepth[0]
	for _, d := range b.BottomDepth {
		if d < shallowest {
			shallowest = d
		}
		if d > deepest {
			deepest = d
		}
	}
	log.WithFields(log.Fields{
		"shallowest": shallowest,
		"deepest":    deepest,
	}).Info("bottom depth generated")

	if *depthPNG != "" {
		if err := b.ExportPng(*depthPNG, b.BottomDepth); err != nil {
			log.Fatal(err)
		}
		log.Info("wrote ", *depthPNG)
	}
	if *dampPNG != "" {
		if err := b.ExportPng(*dampPNG, b.Damping); err != nil {
			log.Fatal(err)
		}
		log.Info("wrote ", *dampPNG)
	}
}
