package main

import (
	"sort"

	"chosenoffset.com/noom/internal/render"
	ebitenrender "chosenoffset.com/noom/internal/render/ebiten"
	"chosenoffset.com/noom/internal/render/terminal"
)

// backends maps -backend values to constructors. Optional backends register
// themselves from build-tagged files.
var backends = map[string]func() render.Backend{
	"ebiten":   ebitenrender.NewBackend,
	"terminal": terminal.NewBackend,
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
