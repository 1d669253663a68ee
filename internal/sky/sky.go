// Package sky implements the night sky scene: star field generation,
// per-frame animation of shooting stars and satellites, and the mapping
// from scene state to colored cell draws for a viewport.
package sky

import (
	"math/rand"

	"github.com/tomz197/nightsky/internal/draw"
)

// Background is the color the whole sky is filled with before entities are
// drawn on top.
var Background = draw.RGB{R: 10, G: 10, B: 30}

// Star field tuning.
const (
	starAreaDivisor = 20  // One star per this many cells of sky area
	maxStars        = 300 // Star count cap for large terminals
)

// Spawn rolls, per frame.
const (
	shootingStarChance    = 2   // Out of 100
	satelliteChanceBound  = 300 // Satellite spawns on a roll of 0 out of this
	satelliteBlinkAdvance = 0.1 // BlinkPhase increase per frame
)

// NightSky owns every entity in the scene. It is single-threaded: one
// goroutine constructs it, calls Update once per tick, and renders it.
// Entities never reference the scene or each other.
type NightSky struct {
	stars         []Star
	shootingStars []*ShootingStar
	satellites    []*Satellite
	frameCount    int
	width, height int
	rng           *rand.Rand
}

// New generates a freshly seeded scene for the given dimensions. The star
// field is generated once here and never regenerated; a terminal resize is
// handled by discarding the scene and calling New again. The caller owns
// the generator; passing one seeded deterministically makes scene
// construction reproducible.
func New(width, height int, rng *rand.Rand) *NightSky {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	starCount := width * height / starAreaDivisor
	if starCount > maxStars {
		starCount = maxStars
	}
	stars := make([]Star, starCount)
	for i := range stars {
		stars[i] = newStar(rng, width, height)
	}

	return &NightSky{
		stars:  stars,
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Width returns the scene's viewport width.
func (s *NightSky) Width() int {
	return s.width
}

// Height returns the scene's viewport height.
func (s *NightSky) Height() int {
	return s.height
}

// FrameCount returns the number of updates applied since construction.
func (s *NightSky) FrameCount() int {
	return s.frameCount
}

// Update advances the scene one tick: spawn rolls, entity movement, and
// culling, in a fixed order. A shooting star spawned this tick is advanced
// and aged in the same tick.
func (s *NightSky) Update() {
	s.frameCount++

	if s.rng.Intn(100) < shootingStarChance && s.width > 0 && s.height >= 2 {
		s.shootingStars = append(s.shootingStars, newShootingStar(s.rng, s.width, s.height))
	}

	kept := s.shootingStars[:0]
	for _, star := range s.shootingStars {
		star.update()
		if star.alive(s.width) {
			kept = append(kept, star)
		}
	}
	s.shootingStars = kept

	if len(s.satellites) == 0 && s.rng.Intn(satelliteChanceBound) < 1 {
		s.satellites = append(s.satellites, newSatellite(s.rng, s.height))
	}

	// The wrap in Satellite.update resets x to 0 before this cull can see
	// it, so satellites normally live forever; the cull only fires for the
	// exact x == width case the wrap's strict comparison lets through.
	keptSats := s.satellites[:0]
	for _, sat := range s.satellites {
		sat.update(s.width)
		if sat.X < float64(s.width) {
			keptSats = append(keptSats, sat)
		}
	}
	s.satellites = keptSats
}

// Render maps the current scene state to cell draws for the given viewport.
// It is read-only over the scene: stars first, then shooting stars with
// their trails, then satellites, so later draws win overlapping cells. The
// background fill is the caller's job (a Frame created with Background).
func (s *NightSky) Render(area draw.Rect) []draw.Cell {
	cells := make([]draw.Cell, 0, len(s.stars)+len(s.shootingStars)*(trailLength+1)+len(s.satellites))
	for _, star := range s.stars {
		cells = star.render(area, s.frameCount, cells)
	}
	for _, star := range s.shootingStars {
		cells = star.render(area, cells)
	}
	for _, sat := range s.satellites {
		cells = sat.render(area, cells)
	}
	return cells
}
