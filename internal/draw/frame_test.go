package draw

import (
	"bytes"
	"strings"
	"testing"
)

var testBg = RGB{R: 10, G: 10, B: 30}

func TestFrameSetIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(4, 3, testBg)
	for _, c := range []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100},
	} {
		f.Set(c.x, c.y, 'X', RGB{}) // Must not panic or write
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.ContainsRune(buf.String(), 'X') {
		t.Error("out-of-bounds Set leaked into the frame")
	}
}

func TestFrameApplyLaterDrawsWin(t *testing.T) {
	f := NewFrame(4, 3, testBg)
	f.Apply([]Cell{
		{X: 1, Y: 1, Ch: 'a', Fg: RGB{R: 1}},
		{X: 1, Y: 1, Ch: 'b', Fg: RGB{R: 2}},
	})
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.ContainsRune(out, 'a') || !strings.ContainsRune(out, 'b') {
		t.Errorf("overlapping draws: got %q, want only the later cell", out)
	}
}

func TestFrameRenderLayout(t *testing.T) {
	f := NewFrame(3, 2, testBg)
	f.Set(0, 0, 'A', RGB{R: 255, G: 200, B: 100})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\033[H\033[48;2;10;10;30m") {
		t.Errorf("frame must start with cursor home and background color, got %q", out)
	}
	if !strings.Contains(out, "\033[38;2;255;200;100mA") {
		t.Errorf("cell color not emitted before its glyph: %q", out)
	}
	if got := strings.Count(out, "\r\n"); got != 1 {
		t.Errorf("%d row separators for a 2-row frame, want 1", got)
	}
	if !strings.HasSuffix(out, "\033[0m") {
		t.Errorf("frame must end with an attribute reset, got %q", out)
	}
}

func TestFrameRenderCoalescesColorRuns(t *testing.T) {
	f := NewFrame(4, 1, testBg)
	c := RGB{R: 255, G: 255, B: 255}
	for x := 0; x < 4; x++ {
		f.Set(x, 0, '*', c)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\033[38;2;"); got != 1 {
		t.Errorf("%d foreground sequences for one color run, want 1", got)
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(3, 2, testBg)
	f.Set(1, 1, 'Z', RGB{R: 9})
	f.Clear()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.ContainsRune(buf.String(), 'Z') {
		t.Error("Clear left a cell behind")
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(3, 2, testBg)
	f.Resize(5, 4)
	if f.Width() != 5 || f.Height() != 4 {
		t.Errorf("after resize: %dx%d, want 5x4", f.Width(), f.Height())
	}
	f.Set(4, 3, 'R', RGB{R: 1})

	// Degenerate sizes must render to nothing but still succeed.
	f.Resize(0, 0)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}
}

func TestFrameRenderChunksLargeFrames(t *testing.T) {
	f := NewFrame(120, 40, testBg)
	var w chunkRecorder
	if err := f.Render(&w); err != nil {
		t.Fatal(err)
	}
	if len(w.sizes) < 2 {
		t.Fatalf("a 120x40 frame should need multiple chunks, got %d write(s)", len(w.sizes))
	}
	for _, n := range w.sizes {
		if n > maxChunkSize {
			t.Fatalf("chunk of %d bytes exceeds the %d byte limit", n, maxChunkSize)
		}
	}
}

type chunkRecorder struct {
	sizes []int
}

func (c *chunkRecorder) Write(p []byte) (int, error) {
	c.sizes = append(c.sizes, len(p))
	return len(p), nil
}
