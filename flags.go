package main

import "flag"

// Command-line flags that select the map, textures, presentation backend, and
// optional diagnostics.
var (
	// mapFileFlag loads the level from a map file instead of generating one.
	mapFileFlag = flag.String("map", "", "path to a map file (header \"w h startX startY\" then hex rows)")

	// mapGenFlag picks the generator used when no map file is given.
	mapGenFlag = flag.String("map-gen", "synthetic", "map generator when -map is empty: synthetic or procedural")

	// mapSizeFlag sets the generated map size as WxH.
	mapSizeFlag = flag.String("map-size", "25x25", "generated map size (WxH)")

	// seedFlag seeds the procedural generator; 0 picks a time-based seed.
	seedFlag = flag.Int64("seed", 0, "seed for -map-gen procedural (0 = random)")

	// writeMapFlag writes the active map to a file and exits.
	writeMapFlag = flag.String("write-map", "", "write the active map to this path and exit")

	// texturesFlag points at a directory of wall_*.png, floor.png, and ceiling.png.
	texturesFlag = flag.String("textures", "", "texture directory (procedural textures when empty)")

	// fovDegreesFlag adjusts the horizontal field of view.
	fovDegreesFlag = flag.Float64("fov-deg", defaultFOVDeg, "horizontal field of view (degrees)")

	// floorModeFlag selects scanline interpolation or per-pixel floor casting.
	floorModeFlag = flag.String("floor-mode", "scanline", "floor casting mode: scanline or pixel")

	// floorWorkersFlag sets the size of the floor worker pool; 0 uses every CPU.
	floorWorkersFlag = flag.Int("floor-workers", 0, "floor casting goroutines (0 = runtime.NumCPU())")

	// tuiFlag renders to the terminal instead of opening a window.
	tuiFlag = flag.Bool("tui", false, "render in the terminal with half-block characters")

	// showMapFlag toggles the minimap overlay.
	showMapFlag = flag.Bool("show-map", true, "draw the minimap overlay")

	// debugFlag enables the FPS overlay and the worker pool deadlock detector.
	debugFlag = flag.Bool("debug", false, "show FPS overlay and enable lock deadlock detection")

	// footstepsFlag plays a looping WAV while the agent moves.
	footstepsFlag = flag.String("footsteps", "", "WAV file looped while the agent is moving")

	// cpuProfileFlag writes a CPU profile for the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)
