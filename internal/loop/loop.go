// Package loop drives the animation: it polls input, watches for terminal
// resizes, and advances and renders the scene once per tick.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/nightsky/internal/draw"
	"github.com/tomz197/nightsky/internal/input"
)

// Run starts the animation loop with the standard Input → Update → Draw
// cycle and blocks until a quit key arrives or the writer fails. The
// terminal behind w must already be in raw mode; sizeFunc reports its
// current dimensions and is polled every tick so resizes take effect on
// the next frame.
func Run(r *bufio.Reader, w io.Writer, sizeFunc draw.TermSizeFunc) error {
	width, height, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := NewState(width, height, rng)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		if inp := input.ReadInput(stream); inp.Quit {
			state.Running = false
			break
		}

		// ===== UPDATE PHASE =====
		width, height, err = sizeFunc()
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		if width != state.Sky.Width() || height != state.Sky.Height() {
			// The old scene is discarded wholesale; no frame ever sees a
			// half-replaced scene.
			draw.ClearScreen(w)
			state.Resize(width, height)
		}
		state.Sky.Update()

		// ===== DRAW PHASE =====
		state.Frame.Clear()
		state.Frame.Apply(state.Sky.Render(draw.Rect{Width: width, Height: height}))
		if err := state.Frame.Render(w); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < tickInterval {
			time.Sleep(tickInterval - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
