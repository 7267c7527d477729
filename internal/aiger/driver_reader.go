package aiger

import (
	"fmt"

	"github.com/avidale-eda/aigretime/internal/varint"
)

// driverReader locates the L+O latch/PO driver literals and the start of
// the AND-body binary data. Standard AIGER (SEP=' ') and modified AIGER
// (SEP='2') disagree on how the driver block is encoded, so each variant
// gets its own implementation behind this one small interface, dispatched
// on the header's SEP byte.
type driverReader interface {
	// bodyStart is the offset where the AND-body binary data begins.
	bodyStart() int
	// drivers returns the L+O raw AIGER literal values, latches first
	// then POs, resolving them against data if needed.
	drivers(data []byte) ([]uint32, error)
}

// asciiDriverReader implements standard AIGER: the L+O driver literals
// are newline-terminated ASCII decimal tokens immediately after the
// header, and the AND body begins right after the last one.
type asciiDriverReader struct {
	start, count, body int
}

func newASCIIDriverReader(data []byte, pos, count int) (*asciiDriverReader, error) {
	cur := pos
	for i := 0; i < count; i++ {
		start := cur
		for cur < len(data) && data[cur] != '\n' {
			cur++
		}
		if cur >= len(data) {
			return nil, fmt.Errorf("%w: driver line %d/%d", ErrTruncatedBody, i+1, count)
		}
		if cur == start {
			return nil, fmt.Errorf("%w: empty driver line %d/%d", ErrBadLiteral, i+1, count)
		}
		cur++ // consume '\n'
	}
	return &asciiDriverReader{start: pos, count: count, body: cur}, nil
}

func (a *asciiDriverReader) bodyStart() int { return a.body }

func (a *asciiDriverReader) drivers(data []byte) ([]uint32, error) {
	out := make([]uint32, a.count)
	cur := a.start
	for i := 0; i < a.count; i++ {
		v, next, err := scanDecimal(data, cur, true)
		if err != nil {
			return nil, fmt.Errorf("%w: driver %d: %v", ErrBadLiteral, i, err)
		}
		out[i] = uint32(v)
		cur = next
	}
	return out, nil
}

// modifiedDriverReader implements the "aig2" variant: the L+O driver
// literals are delta-varint encoded immediately after the header, with
// no ASCII framing at all.
type modifiedDriverReader struct {
	lits []uint32
	body int
}

func newModifiedDriverReader(data []byte, pos, count int) (*modifiedDriverReader, error) {
	lits, next, err := varint.DecodeLiteralDeltas(data, pos, count)
	if err != nil {
		return nil, fmt.Errorf("%w: driver block", ErrTruncatedVarint)
	}
	return &modifiedDriverReader{lits: lits, body: next}, nil
}

func (m *modifiedDriverReader) bodyStart() int { return m.body }

func (m *modifiedDriverReader) drivers([]byte) ([]uint32, error) { return m.lits, nil }

// newDriverReader dispatches on the header's separator byte.
func newDriverReader(data []byte, pos int, h Header) (driverReader, error) {
	count := h.L + h.O
	if h.Modified {
		return newModifiedDriverReader(data, pos, count)
	}
	return newASCIIDriverReader(data, pos, count)
}
