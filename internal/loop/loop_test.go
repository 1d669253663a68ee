package loop

import (
	"bufio"
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func fixedSize(width, height int) func() (int, int, error) {
	return func() (int, int, error) {
		return width, height, nil
	}
}

func TestRunExitsOnQuitKey(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("q"))

	if err := Run(r, &out, fixedSize(30, 10)); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Run produced no terminal output")
	}
	if !strings.Contains(out.String(), "\033[?25l") {
		t.Error("cursor was never hidden")
	}
	if !strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("screen never cleared")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRunPropagatesSizeError(t *testing.T) {
	sizeErr := errors.New("no tty")
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	err := Run(r, &out, func() (int, int, error) { return 0, 0, sizeErr })
	if !errors.Is(err, sizeErr) {
		t.Fatalf("Run error = %v, want wrapped %v", err, sizeErr)
	}
}

func TestStateResizeReplacesScene(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewState(100, 40, rng)
	old := s.Sky
	if old.Width() != 100 || old.Height() != 40 {
		t.Fatalf("scene sized %dx%d, want 100x40", old.Width(), old.Height())
	}

	for i := 0; i < 50; i++ {
		s.Sky.Update()
	}

	s.Resize(80, 24)
	if s.Sky == old {
		t.Fatal("resize kept the old scene")
	}
	if s.Sky.FrameCount() != 0 {
		t.Errorf("new scene frame count = %d, want 0", s.Sky.FrameCount())
	}
	if s.Frame.Width() != 80 || s.Frame.Height() != 24 {
		t.Errorf("frame buffer %dx%d after resize, want 80x24", s.Frame.Width(), s.Frame.Height())
	}
}
