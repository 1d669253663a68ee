package sky

import (
	"math"
	"math/rand"

	"github.com/tomz197/nightsky/internal/draw"
)

// Satellite crosses the sky slowly from left to right, blinking as it goes.
// The scene keeps at most one alive at a time.
type Satellite struct {
	X, Y       float64
	Speed      float64 // Cells per frame, in [0.3,0.8)
	BlinkPhase float64 // Monotonically increasing, never wrapped
}

// newSatellite spawns a satellite at the left edge, away from the top and
// bottom rows when the sky is tall enough.
func newSatellite(rng *rand.Rand, height int) *Satellite {
	y := 0.0
	if height-5 > 5 {
		y = float64(5 + rng.Intn(height-10))
	}
	return &Satellite{
		X:          0,
		Y:          y,
		Speed:      0.3 + rng.Float64()*0.5,
		BlinkPhase: rng.Float64() * 2 * math.Pi,
	}
}

// update advances the satellite one frame. A satellite that crosses the
// right edge re-enters at the left rather than being destroyed here.
func (s *Satellite) update(width int) {
	s.X += s.Speed
	s.BlinkPhase += satelliteBlinkAdvance
	if s.X > float64(width) {
		s.X = 0
	}
}

// render appends the satellite's diamond glyph with its blink applied to the
// color. The blue channel is lifted to suggest artificial light.
func (s *Satellite) render(area draw.Rect, cells []draw.Cell) []draw.Cell {
	x := int(s.X)
	y := int(s.Y)
	if x < 0 || y < 0 || x >= area.Width || y >= area.Height {
		return cells
	}
	blink := (math.Sin(s.BlinkPhase) + 1) / 2
	brightness := int(200 + blink*55)
	blue := brightness + 50
	if blue > 255 {
		blue = 255
	}
	return append(cells, draw.Cell{
		X:  area.X + x,
		Y:  area.Y + y,
		Ch: '◆',
		Fg: draw.RGB{R: uint8(brightness), G: uint8(brightness), B: uint8(blue)},
	})
}
