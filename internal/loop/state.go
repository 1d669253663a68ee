package loop

import (
	"math/rand"

	"github.com/tomz197/nightsky/internal/draw"
	"github.com/tomz197/nightsky/internal/sky"
)

// State holds everything the driver loop owns: the scene, the frame buffer
// it renders into, and the loop's running flag. Exactly one goroutine owns
// a State.
type State struct {
	Sky     *sky.NightSky
	Frame   *draw.Frame
	Running bool

	rng *rand.Rand
}

// NewState creates a scene and frame buffer sized to the terminal.
func NewState(width, height int, rng *rand.Rand) *State {
	return &State{
		Sky:     sky.New(width, height, rng),
		Frame:   draw.NewFrame(width, height, sky.Background),
		Running: true,
		rng:     rng,
	}
}

// Resize discards the scene and builds a fresh one for the new dimensions.
// Nothing survives a resize: the star field is regenerated and all shooting
// stars and satellites are gone.
func (s *State) Resize(width, height int) {
	s.Sky = sky.New(width, height, s.rng)
	s.Frame.Resize(width, height)
}
