package rally

import (
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
)

// car is one slower vehicle fixed to the road surface. Rows are in
// playfield coordinates; the car moves down as the road scrolls past.
type car struct {
	X, Row int
	passed bool
}

func (c *car) rect(cfg config.RallyTraffic) core.Rect {
	return core.NewRect(c.X, c.Row, cfg.CarWidth, cfg.CarHeight)
}

// road is the scrolling track: one centerline position per playfield
// row, index 0 at the top. New rows appear at the top with a drifting
// center; everything else shifts down.
type road struct {
	cfg     config.RallyConfig
	rng     *rand.Rand
	screenW int

	centers []int
	cars    []*car

	driftTimer   int
	rowsSinceCar int
}

func newRoad(cfg config.RallyConfig, rng *rand.Rand, screenW, rows int) *road {
	r := &road{
		cfg:     cfg,
		rng:     rng,
		screenW: screenW,
		centers: make([]int, rows),
		// hold off traffic until the road has scrolled in
		rowsSinceCar: -rows,
	}
	for i := range r.centers {
		r.centers[i] = screenW / 2
	}
	return r
}

func (r *road) half() int { return r.cfg.Road.Width / 2 }

// edges returns the inclusive road surface bounds for a playfield row.
func (r *road) edges(row int) (left, right int) {
	c := r.centers[core.Clamp(row, 0, len(r.centers)-1)]
	return c - r.half(), c + r.half()
}

// onRoad reports whether the horizontal span [x0, x1] fits on the road
// surface at the given row.
func (r *road) onRoad(row, x0, x1 int) bool {
	left, right := r.edges(row)
	return x0 > left && x1 < right
}

// scroll shifts the road down one row, drifts the top center, moves
// traffic with the surface and maybe spawns a new car. spawnChance
// arrives pre-scaled by difficulty.
func (r *road) scroll(spawnChance float64) {
	top := r.centers[0]

	r.driftTimer++
	if r.driftTimer >= r.cfg.Road.DriftPeriod {
		r.driftTimer = 0
		drift := r.rng.Intn(2*r.cfg.Road.MaxDrift+1) - r.cfg.Road.MaxDrift
		top += drift
	}
	margin := r.half() + 2
	top = core.Clamp(top, margin, r.screenW-1-margin)

	copy(r.centers[1:], r.centers[:len(r.centers)-1])
	r.centers[0] = top

	kept := r.cars[:0]
	for _, c := range r.cars {
		c.Row++
		if c.Row < len(r.centers)+r.cfg.Traffic.CarHeight {
			kept = append(kept, c)
		}
	}
	r.cars = kept

	r.rowsSinceCar++
	if r.rowsSinceCar >= r.cfg.Traffic.MinGap && r.rng.Float64() < spawnChance {
		r.spawn(top)
		r.rowsSinceCar = 0
	}
}

// spawn places a car on the fresh top row, fully on the surface.
func (r *road) spawn(center int) {
	span := r.cfg.Road.Width - r.cfg.Traffic.CarWidth - 2
	if span < 1 {
		span = 1
	}
	x := center - r.half() + 1 + r.rng.Intn(span)
	r.cars = append(r.cars, &car{X: x, Row: -r.cfg.Traffic.CarHeight})
}

// render draws verges, lane markings and traffic at the given vertical
// screen offset.
func (r *road) render(dst *core.Screen, offY int) {
	for row, c := range r.centers {
		y := offY + row
		left, right := c-r.half(), c+r.half()
		for x := 0; x < dst.Width(); x++ {
			if x < left || x > right {
				dst.SetCell(x, y, '░', core.ColorGreen)
			}
		}
		dst.SetCell(left, y, '▓', core.ColorGray)
		dst.SetCell(right, y, '▓', core.ColorGray)
		if row%2 == 0 {
			dst.SetCell(c, y, '¦', core.ColorYellow)
		}
	}

	for _, c := range r.cars {
		for dy := 0; dy < r.cfg.Traffic.CarHeight; dy++ {
			y := offY + c.Row + dy
			if c.Row+dy < 0 || c.Row+dy >= len(r.centers) {
				continue
			}
			for dx := 0; dx < r.cfg.Traffic.CarWidth; dx++ {
				dst.SetCell(c.X+dx, y, '█', core.ColorBrightRed)
			}
		}
	}
}
