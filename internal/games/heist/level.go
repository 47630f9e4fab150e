package heist

import "github.com/pixeldrift/arcade-hall/internal/core"

// Tile map legend: '#' wall, '@' player start, digits are loot worth
// 100x their value. Rooms keep their doors on the bottom edge so every
// loot cell is reachable from the corridors.
var floorPlan = []string{
	"################################################################",
	"#@                                                             #",
	"#          #########        ##########        #########        #",
	"#          #      2#        #        #        #1     #         #",
	"#          #       #        #   3    #        #      #         #",
	"#          #       #        #        #        #      #         #",
	"#          ####  ###        ####  ####        ###  ###         #",
	"#                                                              #",
	"#                                                              #",
	"#    ################        ############        ##########    #",
	"#                                                              #",
	"#                                                              #",
	"#        #########        #############        #########       #",
	"#        #       #        #    4     #         #     5#        #",
	"#        #       #        #          #         #      #        #",
	"#        ###  ####        #####  #####         ##  ####        #",
	"#                                                              #",
	"#                                                              #",
	"#                                                              #",
	"################################################################",
}

// patrolRoutes are the guard waypoint loops, all on corridor cells.
var patrolRoutes = [][]core.Point{
	{{X: 4, Y: 7}, {X: 59, Y: 7}},
	{{X: 58, Y: 11}, {X: 3, Y: 11}},
	{{X: 6, Y: 17}, {X: 57, Y: 17}},
}

// Loot is a collectible with a dollar value.
type Loot struct {
	Pos   core.Point
	Value int
}

// Level is the parsed tile map with its spawn points.
type Level struct {
	Width  int
	Height int
	walls  [][]bool

	PlayerStart core.Point
	Loot        []Loot
	Routes      [][]core.Point
}

// LoadLevel parses the built-in floor plan.
func LoadLevel() *Level {
	width := 0
	for _, row := range floorPlan {
		if len(row) > width {
			width = len(row)
		}
	}

	lv := &Level{
		Width:  width,
		Height: len(floorPlan),
		Routes: patrolRoutes,
	}

	lv.walls = make([][]bool, lv.Height)
	for y, row := range floorPlan {
		lv.walls[y] = make([]bool, width)
		for x, r := range row {
			switch {
			case r == '#':
				lv.walls[y][x] = true
			case r == '@':
				lv.PlayerStart = core.Point{X: x, Y: y}
			case r >= '1' && r <= '9':
				lv.Loot = append(lv.Loot, Loot{
					Pos:   core.Point{X: x, Y: y},
					Value: int(r-'0') * 100,
				})
			}
		}
	}

	return lv
}

// Wall reports whether the cell blocks movement and sight.
// Out-of-bounds cells count as walls.
func (lv *Level) Wall(x, y int) bool {
	if x < 0 || x >= lv.Width || y < 0 || y >= lv.Height {
		return true
	}
	return lv.walls[y][x]
}

// LineOfSight reports whether no wall lies strictly between a and b.
func (lv *Level) LineOfSight(a, b core.Point) bool {
	for _, p := range core.Line(a, b) {
		if p == a || p == b {
			continue
		}
		if lv.Wall(p.X, p.Y) {
			return false
		}
	}
	return true
}

// render draws the walls and loot at the given screen offset.
func (lv *Level) render(dst *core.Screen, loot []Loot, off core.Point) {
	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			if lv.walls[y][x] {
				dst.SetCell(off.X+x, off.Y+y, '█', core.ColorGray)
			}
		}
	}
	for _, l := range loot {
		dst.SetCell(off.X+l.Pos.X, off.Y+l.Pos.Y, '$', core.ColorBrightYellow)
	}
}
