package main

import "flag"

var (
	// Config file with screen, movement and shading settings.
	configFlag = flag.String("config", "config.json", "path to the JSON config file (defaults apply when missing)")

	// Map selection.
	mapFlag      = flag.String("map", "default", "map name in -maps-dir, a path to a map file, or \"default\"")
	mapsDirFlag  = flag.String("maps-dir", "data/maps", "directory scanned for map files")
	listMapsFlag = flag.Bool("list-maps", false, "list the maps found in -maps-dir and exit")

	backendFlag = flag.String("backend", "ebiten", "display backend: ebiten, terminal or sdl (when built with -tags sdl)")

	debugFlag = flag.Bool("debug", false, "show render stats overlay and log every render")

	// Headless single frame.
	snapshotFlag = flag.String("snapshot", "", "render the spawn view to this PNG file and exit")
)
