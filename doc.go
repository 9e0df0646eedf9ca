// Package chisel simulates a swarm of bouncing balls carving a piece of
// text out of a grid of cells.
//
// A run starts from a binary image: true pixels are the protected text
// shape, false pixels are carveable background. Balls spawn at the
// padded edge of the grid, bounce around, and carve background cells on
// contact until only the text stands. Enclosed pockets the balls cannot
// reach ("islands"), including the text shape itself, are detected up
// front and resolved with a staged reveal animation once their
// surroundings have been carved away.
//
// # Quick start
//
// The simplest way to see it run is [RasterizeText] plus [Run], which
// opens a window and drives the simulation for you:
//
//	bitmap, err := chisel.RasterizeText("GO", 48)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim, err := chisel.NewSimulation(bitmap, chisel.DefaultParams())
//	if err != nil {
//		log.Fatal(err)
//	}
//	chisel.Run(sim, chisel.RunConfig{Title: "chisel"})
//
// For full control, own the loop yourself and call
// [Simulation.AdvanceFrame] at whatever rate you like; the simulation
// never blocks and leaves the grid and ball collection self-consistent
// between frames:
//
//	for !sim.IsComplete() {
//		stats := sim.AdvanceFrame()
//		events := sim.DrainEvents()
//		// draw, log, or forward events ...
//		_ = stats
//	}
//
// # Core pieces
//
// [Bitmap] is the input image. [Grid] holds the cell state machine.
// [Simulation] owns one run end to end: the sub-stepped collision
// engine, the deviation-bounded bounce planner, island detection and
// completion, ball spawning and culling. [FrameStats] summarizes each
// frame for the host.
//
// Rendering is strictly a collaborator: cells expose only their carving
// state, and all cosmetic color handling lives in [Presentation], fed by
// the [CellEvent] stream. [Renderer] and [Run] provide an Ebitengine
// front end; the ecs sub-package bridges events into a Donburi world.
//
// Runs are reproducible: set Params.Seed and every bounce, spawn, and
// fallback angle is derived from one seeded source.
package chisel
