package draw

import "strconv"

// RGB is a 24-bit terminal color, written as truecolor escape sequences.
type RGB struct {
	R, G, B uint8
}

// appendFg appends the ANSI foreground sequence for the color.
func (c RGB) appendFg(buf []byte) []byte {
	buf = append(buf, "\033[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return buf
}

// appendBg appends the ANSI background sequence for the color.
func (c RGB) appendBg(buf []byte) []byte {
	buf = append(buf, "\033[48;2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return buf
}
