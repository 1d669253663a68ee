package sky

import (
	"math/rand"

	"github.com/tomz197/nightsky/internal/draw"
)

// trailLength is the number of dots drawn behind a shooting star's head.
const trailLength = 3

var (
	shootingStarColor = draw.RGB{R: 255, G: 200, B: 100}
	trailColor        = draw.RGB{R: 200, G: 150, B: 50}
)

// ShootingStar streaks down and across the sky and burns out after a short
// lifetime. Positions are kept in floating point; truncation to cells
// happens only at the render boundary.
type ShootingStar struct {
	X, Y        float64
	Speed       float64 // Cells per frame, in [2,4)
	Lifetime    int     // Frames elapsed since spawn
	MaxLifetime int     // In [15,30)
}

// newShootingStar spawns a shooting star in the upper half of the sky.
func newShootingStar(rng *rand.Rand, width, height int) *ShootingStar {
	return &ShootingStar{
		X:           float64(rng.Intn(width)),
		Y:           float64(rng.Intn(height / 2)),
		Speed:       2 + rng.Float64()*2,
		MaxLifetime: 15 + rng.Intn(15),
	}
}

// update advances the star one frame along its fixed diagonal.
func (s *ShootingStar) update() {
	s.X += s.Speed
	s.Y += s.Speed * 0.5
	s.Lifetime++
}

// alive reports whether the star is still within its lifetime and the sky.
func (s *ShootingStar) alive(width int) bool {
	return s.Lifetime < s.MaxLifetime && s.X < float64(width)
}

// render appends the head glyph and trail dots. The trail is only drawn
// while the head itself is visible.
func (s *ShootingStar) render(area draw.Rect, cells []draw.Cell) []draw.Cell {
	x := int(s.X)
	y := int(s.Y)
	if x < 0 || y < 0 || x >= area.Width || y >= area.Height {
		return cells
	}
	cells = append(cells, draw.Cell{
		X:  area.X + x,
		Y:  area.Y + y,
		Ch: '☄',
		Fg: shootingStarColor,
	})

	for i := 1; i <= trailLength; i++ {
		tx := int(s.X - float64(i)*0.5)
		ty := int(s.Y - float64(i)*0.25)
		if tx >= 0 && ty >= 0 && tx < area.Width && ty < area.Height {
			cells = append(cells, draw.Cell{
				X:  area.X + tx,
				Y:  area.Y + ty,
				Ch: '·',
				Fg: trailColor,
			})
		}
	}
	return cells
}
