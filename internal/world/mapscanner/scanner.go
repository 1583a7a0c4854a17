package mapscanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/noom/internal/world/gridmap"
)

// MapEntry represents a discoverable map in the maps directory
type MapEntry struct {
	Name   string // Display name from the file, or the file name without extension
	File   string // File name relative to the maps directory
	Width  int
	Height int
}

// ScanMapsDirectory scans dir for map files and returns one entry per valid
// map, sorted by name. Files that fail to load are skipped with a warning.
func ScanMapsDirectory(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		m, err := gridmap.LoadMap(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: skipping %s: %v", name, err)
			continue
		}

		display := m.Name()
		if display == "" {
			display = strings.TrimSuffix(name, filepath.Ext(name))
		}
		maps = append(maps, MapEntry{
			Name:   display,
			File:   name,
			Width:  m.Width(),
			Height: m.Height(),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}

// Find returns the entry whose name or file name matches query,
// case-insensitively. The file name may be given without its extension.
func Find(maps []MapEntry, query string) (MapEntry, bool) {
	for _, m := range maps {
		base := strings.TrimSuffix(m.File, filepath.Ext(m.File))
		if strings.EqualFold(m.Name, query) || strings.EqualFold(m.File, query) || strings.EqualFold(base, query) {
			return m, true
		}
	}
	return MapEntry{}, false
}

// Load resolves query in dir and loads the map.
func Load(dir, query string) (*gridmap.Map, error) {
	maps, err := ScanMapsDirectory(dir)
	if err != nil {
		return nil, err
	}
	entry, ok := Find(maps, query)
	if !ok {
		return nil, fmt.Errorf("map %q not found in %s", query, dir)
	}
	return gridmap.LoadMap(filepath.Join(dir, entry.File))
}
