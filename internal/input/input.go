// Package input reads keyboard bytes from a raw-mode terminal without
// blocking the frame loop.
package input

import "bufio"

// Input represents the current frame's input state.
type Input struct {
	Quit    bool   // 'q', Ctrl-C, or a bare Escape was pressed
	Pressed []byte // Raw bytes seen this frame
}

// Stream delivers input bytes via a channel so the frame loop can drain
// whatever arrived since the last tick without blocking.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader returns an error (e.g. the
// SSH session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// reports whether a quit key was pressed. CSI escape sequences (arrow keys,
// terminal reports) are skipped so a bare Escape can be told apart from the
// first byte of a sequence.
func ReadInput(s *Stream) Input {
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader gone; treat as a quit so the loop can exit.
				return Input{Quit: true, Pressed: buf}
			}
			buf = append(buf, b)
		default:
			return parse(buf)
		}
	}
}

func parse(buf []byte) Input {
	input := Input{Pressed: buf}
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\x1b':
			if i+1 < len(buf) && buf[i+1] == '[' {
				i += skipCSI(buf[i:]) - 1
				continue
			}
			input.Quit = true
		case 'q', 'Q', '\x03':
			input.Quit = true
		}
	}
	return input
}

// skipCSI returns the length of the CSI sequence at the start of buf
// (which begins with ESC '['). Parameter and intermediate bytes run until
// a final byte in 0x40..0x7e.
func skipCSI(buf []byte) int {
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1
		}
	}
	return len(buf)
}
