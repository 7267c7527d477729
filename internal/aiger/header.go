package aiger

import (
	"fmt"
)

// Header is the parsed first line of an AIGER file.
type Header struct {
	Modified bool // SEP == '2' (latch/PO drivers are varint-delta encoded)
	M, I, L, O, A int

	ModelName string // set from an optional "c\n.model NAME\n" comment block
}

const magic = "aig"

// parseHeader validates and parses the "aig" SEP M I L O A "\n" line.
// Returns the header and the position immediately after the trailing
// newline.
func parseHeader(data []byte) (Header, int, error) {
	if len(data) < 4 || string(data[0:3]) != magic {
		return Header{}, 0, fmt.Errorf("%w: missing 'aig' magic", ErrBadHeader)
	}
	var h Header
	pos := 4
	switch data[3] {
	case ' ':
		h.Modified = false
	case '2':
		h.Modified = true
		// "aig2" is followed by the same " M I L O A\n" tail as "aig ";
		// skip the space after the '2' to line up with it.
		if pos >= len(data) || data[pos] != ' ' {
			return Header{}, 0, fmt.Errorf("%w: missing space after 'aig2'", ErrBadHeader)
		}
		pos++
	default:
		return Header{}, 0, fmt.Errorf("%w: separator must be ' ' or '2', got %q", ErrBadHeader, data[3])
	}

	fields := make([]int, 5)
	for i := 0; i < 5; i++ {
		// All five integers are separated by a single space, the last
		// terminated by '\n' instead.
		wantNewline := i == 4
		v, next, err := scanDecimal(data, pos, wantNewline)
		if err != nil {
			return Header{}, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		fields[i] = v
		pos = next
	}
	h.M, h.I, h.L, h.O, h.A = fields[0], fields[1], fields[2], fields[3], fields[4]
	if h.M != h.I+h.L+h.A {
		return Header{}, 0, fmt.Errorf("%w: M(%d) != I(%d)+L(%d)+A(%d)", ErrBadHeader, h.M, h.I, h.L, h.A)
	}
	return h, pos, nil
}

// scanDecimal reads an unsigned decimal integer starting at data[pos] and
// consumes the single terminator byte that follows it (a space, unless
// wantNewline requires '\n'). Returns the value and the position right
// after the terminator.
func scanDecimal(data []byte, pos int, wantNewline bool) (int, int, error) {
	start := pos
	for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
		pos++
	}
	if pos == start {
		return 0, pos, fmt.Errorf("expected decimal digit at offset %d", pos)
	}
	v := 0
	for _, c := range data[start:pos] {
		v = v*10 + int(c-'0')
	}
	if pos >= len(data) {
		return 0, pos, fmt.Errorf("unexpected end of buffer after integer at offset %d", pos)
	}
	term := data[pos]
	if wantNewline && term != '\n' {
		return 0, pos, fmt.Errorf("expected '\\n' at offset %d, got %q", pos, term)
	}
	if !wantNewline && term != ' ' {
		return 0, pos, fmt.Errorf("expected ' ' at offset %d, got %q", pos, term)
	}
	return v, pos + 1, nil
}
