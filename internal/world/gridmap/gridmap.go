// Package gridmap holds the static character grid the raycaster walks.
// A map is loaded once and never modified afterwards.
package gridmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Cell symbols understood by the classifier. Anything else is open floor.
const (
	WallSymbol = '#'
	DoorSymbol = 'D'
	OpenSymbol = '.'
)

// Kind classifies a single grid cell.
type Kind uint8

const (
	Open Kind = iota
	Wall
	Door
)

// String returns a readable name for the cell kind.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyMap is returned when a map has no rows or no columns.
	ErrEmptyMap = errors.New("map has no cells")
	// ErrJaggedRows is returned when rows differ in length.
	ErrJaggedRows = errors.New("map rows differ in length")
)

// Spawn is the camera start position in map units and its heading in degrees.
type Spawn struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle int     `json:"angle"`
}

// Map is an immutable rectangular grid of cell symbols.
type Map struct {
	name   string
	rows   []string
	width  int
	height int
	spawn  Spawn
}

// Parse builds a map from equal-length rows. Row count is the height and the
// length of each row is the width.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), width, ErrJaggedRows)
		}
	}

	copied := make([]string, len(rows))
	copy(copied, rows)
	return &Map{
		rows:   copied,
		width:  width,
		height: len(rows),
	}, nil
}

// MustParse is like Parse but panics on error. Only meant for bundled maps.
func MustParse(rows []string) *Map {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Name returns the map name, empty for maps built with Parse.
func (m *Map) Name() string { return m.name }

// Spawn returns the start pose stored with the map.
func (m *Map) Spawn() Spawn { return m.spawn }

// Rows returns a copy of the map rows.
func (m *Map) Rows() []string {
	out := make([]string, len(m.rows))
	copy(out, m.rows)
	return out
}

// InBounds reports whether the cell lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Classify returns the kind of the cell at (x, y). The world is closed:
// every cell outside the grid is a wall.
func (m *Map) Classify(x, y int) Kind {
	if !m.InBounds(x, y) {
		return Wall
	}
	switch m.rows[y][x] {
	case WallSymbol:
		return Wall
	case DoorSymbol:
		return Door
	default:
		return Open
	}
}

// IsWall reports whether the cell is a wall or lies outside the grid.
func (m *Map) IsWall(x, y int) bool {
	return m.Classify(x, y) == Wall
}

// IsDoor reports whether the cell holds a door. Never true outside the grid.
func (m *Map) IsDoor(x, y int) bool {
	return m.InBounds(x, y) && m.rows[y][x] == DoorSymbol
}

// IsSolid reports whether the cell blocks both rays and movement.
func (m *Map) IsSolid(x, y int) bool {
	return m.Classify(x, y) != Open
}

// MapFile is the on-disk JSON representation of a map.
type MapFile struct {
	Name  string   `json:"name"`
	Rows  []string `json:"rows"`
	Spawn Spawn    `json:"spawn"`
}

// LoadMap loads a map from a JSON file.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var file MapFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	m, err := FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return m, nil
}

// FromFile validates a decoded map file and builds the map.
func FromFile(file MapFile) (*Map, error) {
	m, err := Parse(file.Rows)
	if err != nil {
		return nil, err
	}
	if err := validateSpawn(m, file.Spawn); err != nil {
		return nil, err
	}
	m.name = file.Name
	m.spawn = file.Spawn
	return m, nil
}

// validateSpawn checks that the spawn point sits in an open cell.
func validateSpawn(m *Map, s Spawn) error {
	cx, cy := int(s.X), int(s.Y)
	if s.X < 0 || s.Y < 0 || !m.InBounds(cx, cy) {
		return fmt.Errorf("spawn (%.2f, %.2f) is outside the %dx%d grid", s.X, s.Y, m.width, m.height)
	}
	if m.IsSolid(cx, cy) {
		return fmt.Errorf("spawn (%.2f, %.2f) is inside a %s cell", s.X, s.Y, m.Classify(cx, cy))
	}
	return nil
}
