// Package varint implements AIGER's 7-bit continuation-byte integer
// encoding plus the signed-delta literal sequence helper
// built on top of it. The base encoding matches plain LEB128, but the
// delta helper is AIGER-specific, so this is a small hand-rolled codec
// rather than a wrapped stdlib/ecosystem varint package (see DESIGN.md).
package varint

import "errors"

// ErrTruncated is returned when the cursor runs out of bytes before a
// terminating (high-bit-clear) byte is found.
var ErrTruncated = errors.New("varint: truncated before terminator")

// Decode reads one varint starting at buf[pos], per Armin Biere's
// reference decoder: accumulate (b&0x7F)<<(7*i) for each continuation
// byte, then OR in the full terminating byte (not masked) at its
// positional weight. Returns the value and the position just past the
// terminator.
func Decode(buf []byte, pos int) (uint32, int, error) {
	var x uint32
	i := uint(0)
	for {
		if pos >= len(buf) {
			return 0, pos, ErrTruncated
		}
		b := buf[pos]
		pos++
		if b&0x80 != 0 {
			x |= uint32(b&0x7f) << (7 * i)
			i++
			continue
		}
		x |= uint32(b) << (7 * i)
		return x, pos, nil
	}
}

// Encode appends the varint encoding of x to dst and returns the result.
// Not used by the decoder itself (this module does not write AIGER) but
// kept for round-trip tests of the codec and for any future encoder
// built on this core.
func Encode(dst []byte, x uint32) []byte {
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x != 0 {
			dst = append(dst, b|0x80)
			continue
		}
		return append(dst, b)
	}
}

// DecodeLiteralDeltas decodes n signed-delta-encoded literals starting at
// buf[pos]: the first is a plain varint,
// each subsequent varint d is a signed delta onto the previous literal —
// sign = d&1 (1 means negative), magnitude = d>>1.
func DecodeLiteralDeltas(buf []byte, pos int, n int) ([]uint32, int, error) {
	if n <= 0 {
		return nil, pos, nil
	}
	out := make([]uint32, n)
	first, next, err := Decode(buf, pos)
	if err != nil {
		return nil, pos, err
	}
	out[0] = first
	pos = next
	prev := int64(first)
	for i := 1; i < n; i++ {
		d, next, err := Decode(buf, pos)
		if err != nil {
			return nil, pos, err
		}
		pos = next
		mag := int64(d >> 1)
		if d&1 != 0 {
			mag = -mag
		}
		prev += mag
		out[i] = uint32(prev)
	}
	return out, pos, nil
}
