package gridmap

// defaultRows is the level shipped with the game. Row 6 holds the spawn.
var defaultRows = []string{
	"#########################################",
	"##########################.....##########",
	"######################.........##########",
	"#.........############.###.........######",
	"#...####..#.####.......#####.#####..#####",
	"#...#.........................#####.....#",
	"#...####..#.####.......#.......####..##.#",
	"#.........######.......#..............#.#",
	"##################...###..............#.#",
	"########################..............#.#",
	"#################################.#####.#",
	"#################################.#####.#",
	"#################################.###...#",
	"###############################....##...#",
	"##############################......#...#",
	"##############################......#####",
	"#################################.#######",
	"#################################D#######",
}

// DefaultSpawn is where the camera starts on the default map.
var DefaultSpawn = Spawn{X: 19.5, Y: 6.5, Angle: 0}

// Default returns the bundled map.
func Default() *Map {
	m := MustParse(defaultRows)
	m.name = "default"
	m.spawn = DefaultSpawn
	return m
}
