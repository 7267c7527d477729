package aiger

import "errors"

// Sentinel errors for the decoder's failure kinds. Decode failures are
// wrapped with fmt.Errorf("...: %w", sentinel) for context; callers
// compare with errors.Is.
var (
	ErrBadHeader       = errors.New("aiger: bad header")
	ErrTruncatedVarint = errors.New("aiger: truncated varint")
	ErrTruncatedBody   = errors.New("aiger: truncated AND body")
	ErrBadLiteral      = errors.New("aiger: literal out of range")
	ErrBadSymbolType   = errors.New("aiger: unknown symbol type")
	ErrBadSymbolIndex  = errors.New("aiger: symbol index out of range")
	ErrCheckFailed     = errors.New("aiger: consistency check failed")
)
