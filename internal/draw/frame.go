package draw

import (
	"io"
	"unicode/utf8"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Rect is a viewport: an origin plus a width and height in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Cell is a single draw: a glyph and foreground color at a terminal position.
// Coordinates are 0-based; (0,0) is the top-left corner.
type Cell struct {
	X, Y int
	Ch   rune
	Fg   RGB
}

// Frame is a full-screen cell buffer with a fixed background color.
// Clear, apply cell draws, then render; later draws overwrite earlier ones
// at the same position.
type Frame struct {
	width, height int
	chars         []rune
	colors        []RGB
	bg            RGB

	renderBuf []byte // Reused across frames to avoid per-frame allocations
}

// NewFrame creates a frame buffer for the given terminal dimensions.
func NewFrame(width, height int, bg RGB) *Frame {
	f := &Frame{bg: bg}
	f.Resize(width, height)
	return f
}

// Resize reallocates the buffer for new terminal dimensions and clears it.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width != f.width || height != f.height {
		f.width = width
		f.height = height
		f.chars = make([]rune, width*height)
		f.colors = make([]RGB, width*height)
	}
	f.Clear()
}

// Clear resets every cell to the background.
func (f *Frame) Clear() {
	for i := range f.chars {
		f.chars[i] = ' '
	}
}

// Set writes a single cell. Positions outside the buffer are ignored.
func (f *Frame) Set(x, y int, ch rune, fg RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := y*f.width + x
	f.chars[i] = ch
	f.colors[i] = fg
}

// Apply writes a batch of cell draws in order.
func (f *Frame) Apply(cells []Cell) {
	for _, c := range cells {
		f.Set(c.X, c.Y, c.Ch, c.Fg)
	}
}

// Width returns the frame width in terminal columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in terminal rows.
func (f *Frame) Height() int {
	return f.height
}

// Render writes the whole frame to w: cursor home, background color, then
// every row with foreground changes coalesced into runs. Output is written
// in chunks for optimal network flow (e.g. over SSH).
func (f *Frame) Render(w io.Writer) error {
	buf := f.renderBuf[:0]
	buf = append(buf, "\033[H"...)
	buf = f.bg.appendBg(buf)

	var cur RGB
	fgSet := false
	for row := 0; row < f.height; row++ {
		offset := row * f.width
		for col := 0; col < f.width; col++ {
			ch := f.chars[offset+col]
			if ch != ' ' {
				fg := f.colors[offset+col]
				if !fgSet || fg != cur {
					buf = fg.appendFg(buf)
					cur = fg
					fgSet = true
				}
			}
			buf = utf8.AppendRune(buf, ch)
		}
		if row < f.height-1 {
			buf = append(buf, "\r\n"...)
		}
	}
	buf = append(buf, "\033[0m"...)
	f.renderBuf = buf

	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > maxChunkSize {
			chunk = buf[:maxChunkSize]
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		buf = buf[len(chunk):]
	}
	return nil
}
