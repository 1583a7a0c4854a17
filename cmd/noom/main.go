package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/noom/internal/game"
	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/render/raster"
	"chosenoffset.com/noom/internal/simulation"
	"chosenoffset.com/noom/internal/world/gridmap"
	"chosenoffset.com/noom/internal/world/mapscanner"
)

func main() {
	flag.Parse()

	if *listMapsFlag {
		listMaps(*mapsDirFlag)
		return
	}

	cfg, err := simulation.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := loadMap(*mapFlag, *mapsDirFlag)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	if *snapshotFlag != "" {
		if err := snapshot(cfg, m, *snapshotFlag); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Wrote %s", *snapshotFlag)
		return
	}

	newBackend, ok := backends[*backendFlag]
	if !ok {
		log.Fatalf("Unknown backend %q (available: %s)", *backendFlag, strings.Join(backendNames(), ", "))
	}
	backend := newBackend()

	g, err := game.New(cfg, m, backend)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.Debug = *debugFlag

	engine := backend.Engine
	engine.SetWindowSize(cfg.Screen.Width*cfg.Screen.Scale, cfg.Screen.Height*cfg.Screen.Scale)
	engine.SetWindowTitle(fmt.Sprintf("noom - %s", m.Name()))

	log.Printf("Starting %s backend...", backend.Name)
	if backend.Name == "terminal" {
		// stderr shares the terminal with the frame.
		if f, err := os.Create("noom.log"); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}
	err = engine.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// loadMap resolves the -map flag: the bundled map, a file path, or a name
// looked up in mapsDir.
func loadMap(name, mapsDir string) (*gridmap.Map, error) {
	if name == "" || name == "default" {
		return gridmap.Default(), nil
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.HasSuffix(strings.ToLower(name), ".json") {
		if _, err := os.Stat(name); err == nil {
			return gridmap.LoadMap(name)
		}
	}
	return mapscanner.Load(mapsDir, name)
}

func listMaps(dir string) {
	maps, err := mapscanner.ScanMapsDirectory(dir)
	if err != nil {
		log.Fatalf("Failed to scan maps directory: %v", err)
	}
	fmt.Println("default (bundled)")
	for _, m := range maps {
		fmt.Printf("%s\t%dx%d\t%s\n", m.Name, m.Width, m.Height, m.File)
	}
}

// snapshot renders the view from the spawn point once and saves it as PNG.
func snapshot(cfg *simulation.Config, m *gridmap.Map, path string) error {
	g, err := game.New(cfg, m, render.Backend{
		Name:     "snapshot",
		Renderer: raster.Renderer{},
		Input:    render.NoInput{},
	})
	if err != nil {
		return err
	}
	g.Debug = *debugFlag
	if err := g.Update(); err != nil {
		return err
	}
	frame, ok := g.Frame().(*raster.Canvas)
	if !ok {
		return errors.New("no frame was rendered")
	}
	return frame.SavePNG(path)
}
