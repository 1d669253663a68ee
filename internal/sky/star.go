package sky

import (
	"math"
	"math/rand"

	"github.com/tomz197/nightsky/internal/draw"
)

// Star is a fixed point of light. Position and base brightness never change
// after creation; only the displayed intensity varies with the scene's frame
// count.
type Star struct {
	X, Y         int
	Brightness   int     // Base level in [1,5]
	TwinkleSpeed float64 // Phase advance per frame, in [0.1,0.5)
}

func newStar(rng *rand.Rand, width, height int) Star {
	return Star{
		X:            rng.Intn(width),
		Y:            rng.Intn(height),
		Brightness:   1 + rng.Intn(5),
		TwinkleSpeed: 0.1 + rng.Float64()*0.4,
	}
}

// Displayed returns the brightness level shown at the given frame, in [0,5].
// The twinkle function is periodic in frameCount with period 2π/TwinkleSpeed.
func (s Star) Displayed(frameCount int) int {
	twinkle := (math.Sin(float64(frameCount)*s.TwinkleSpeed) + 1) / 2
	return int(float64(s.Brightness) * twinkle)
}

// starGlyph maps a displayed brightness level to its glyph.
func starGlyph(level int) rune {
	switch {
	case level <= 1:
		return '·'
	case level <= 3:
		return '•'
	default:
		return '✦'
	}
}

// starColor maps a displayed brightness level to its color, from a dim
// gray-blue dot up to a pure white star.
func starColor(level int) draw.RGB {
	switch {
	case level <= 1:
		return draw.RGB{R: 100, G: 100, B: 120}
	case level == 2:
		return draw.RGB{R: 150, G: 150, B: 180}
	case level == 3:
		return draw.RGB{R: 200, G: 200, B: 220}
	case level == 4:
		return draw.RGB{R: 230, G: 230, B: 250}
	default:
		return draw.RGB{R: 255, G: 255, B: 255}
	}
}

// render appends the star's cell draw if it falls inside the viewport.
func (s Star) render(area draw.Rect, frameCount int, cells []draw.Cell) []draw.Cell {
	if s.X >= area.Width || s.Y >= area.Height {
		return cells
	}
	level := s.Displayed(frameCount)
	return append(cells, draw.Cell{
		X:  area.X + s.X,
		Y:  area.Y + s.Y,
		Ch: starGlyph(level),
		Fg: starColor(level),
	})
}
