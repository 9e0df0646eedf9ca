// Carvetext is the full demo: a line of text is rasterized into the
// binary input bitmap, then a swarm of balls carves the background away
// until the text stands alone and the final reveal animation plays.
//
// Tuning can come from a YAML params file (-params) or the individual
// flags; flags win over the file.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/chisel"
)

func main() {
	var (
		text       = flag.String("text", "GO", "text to carve out")
		fontSize   = flag.Float64("size", 48, "font size in cells")
		paramsPath = flag.String("params", "", "optional YAML params file")
		ballCount  = flag.Int("balls", 0, "target ball count (overrides params)")
		seed       = flag.Uint64("seed", 0, "random seed, 0 for nondeterministic")
		debug      = flag.Bool("debug", false, "log per-frame stats to stderr")
	)
	flag.Parse()

	params := chisel.DefaultParams()
	if *paramsPath != "" {
		var err error
		params, err = chisel.LoadParams(*paramsPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *ballCount > 0 {
		params.BallCount = *ballCount
	}
	if *seed != 0 {
		params.Seed = *seed
	}

	bitmap, err := chisel.RasterizeText(*text, *fontSize)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("bitmap %dx%d", bitmap.Width, bitmap.Height)

	sim, err := chisel.NewSimulation(bitmap, params)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("islands: %d, carveable cells: %d",
		len(sim.Islands()), sim.Grid().CarveableCount())

	if err := chisel.Run(sim, chisel.RunConfig{
		Title:    "chisel: " + *text,
		CellSize: 6,
		ShowFPS:  true,
		Debug:    *debug,
	}); err != nil {
		log.Fatal(err)
	}
}
