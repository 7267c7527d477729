package aiger

import (
	"fmt"
	"strings"

	"github.com/avidale-eda/aigretime/internal/aig"
	"github.com/avidale-eda/aigretime/internal/names"
)

// readSymbolTable parses the optional symbol table: zero or more
// "TYPE INDEX NAME\n" records, TYPE one of 'i'/'l'/'o', terminated by the
// start of the comment section ('c') or end of data.
//
// A latch record propagates its name three ways, following a
// Bi->Latch->Bo naming chain collapsed onto this package's two-object
// register representation (see internal/aig/object.go's Kind doc
// comment): the base name goes on the LO, "L"-suffixed on the paired LI,
// and "_in"-suffixed on the LI's actual driver object.
func readSymbolTable(data []byte, pos int, net *aig.Network, poIDs []aig.ObjID, los, lis []aig.ObjID, reg names.Registrar, modified bool, strict bool) (int, error) {
	cur := pos
	for cur < len(data) {
		c := data[cur]
		if c == 'c' {
			break
		}
		if c != 'i' && c != 'l' && c != 'o' {
			if strict {
				return cur, fmt.Errorf("%w: %q", ErrBadSymbolType, c)
			}
			break
		}
		cur++
		idx, next, err := scanDecimal(data, cur, false)
		if err != nil {
			if strict {
				return cur, fmt.Errorf("%w: %v", ErrBadSymbolIndex, err)
			}
			break
		}
		cur = next

		nameStart := cur
		for cur < len(data) && data[cur] != '\n' {
			cur++
		}
		if cur >= len(data) {
			return cur, fmt.Errorf("%w: unterminated symbol name", ErrTruncatedBody)
		}
		name := string(data[nameStart:cur])
		cur++ // consume '\n'

		switch c {
		case 'i':
			pis := net.PIs()
			if idx >= len(pis) {
				if strict {
					return cur, fmt.Errorf("%w: i%d", ErrBadSymbolIndex, idx)
				}
				continue
			}
			reg.AssignName(pis[idx], name, "")
		case 'o':
			if idx >= len(poIDs) {
				if strict {
					return cur, fmt.Errorf("%w: o%d", ErrBadSymbolIndex, idx)
				}
				continue
			}
			reg.AssignName(poIDs[idx], name, "")
		case 'l':
			if idx >= len(los) {
				if strict {
					return cur, fmt.Errorf("%w: l%d", ErrBadSymbolIndex, idx)
				}
				continue
			}
			lo, li := los[idx], lis[idx]
			reg.AssignName(lo, name, "")
			reg.AssignName(li, name, "L")
			driver := net.Obj(li).Fanin0()
			reg.AssignName(driver.ID, name, "_in")
		}
	}
	return cur, nil
}

// assignDefaultNames fills in "i<N>"/"l<N>"/"o<N>" names for any PI/LO/PO
// the symbol table left unnamed. A latch that picks
// up a default name also gets its LI and driver named off that same base,
// for consistency with the symbol-table path above.
func assignDefaultNames(net *aig.Network, poIDs []aig.ObjID, los, lis []aig.ObjID, reg names.Registrar) {
	for i, id := range net.PIs() {
		if _, ok := reg.Name(id); !ok {
			reg.AssignName(id, names.DefaultPIName(i), "")
		}
	}
	for i, id := range poIDs {
		if _, ok := reg.Name(id); !ok {
			reg.AssignName(id, names.DefaultPOName(i), "")
		}
	}
	for r, lo := range los {
		if _, ok := reg.Name(lo); ok {
			continue
		}
		base := names.DefaultLOName(r)
		reg.AssignName(lo, base, "")
		li := lis[r]
		reg.AssignName(li, base, "L")
		driver := net.Obj(li).Fanin0()
		if _, ok := reg.Name(driver.ID); !ok {
			reg.AssignName(driver.ID, base, "_in")
		}
	}
}

// readModelComment looks for the optional trailing comment section
// and extracts the
// ".model NAME" line from it, if any. Decode failures here are not
// possible by design: a missing or malformed comment section simply
// yields no model name.
func readModelComment(data []byte, pos int) string {
	if pos >= len(data) || data[pos] != 'c' {
		return ""
	}
	cur := pos + 1
	if cur < len(data) && data[cur] == '\n' {
		cur++
	}
	const prefix = ".model "
	for cur < len(data) {
		lineStart := cur
		for cur < len(data) && data[cur] != '\n' {
			cur++
		}
		line := string(data[lineStart:cur])
		if cur < len(data) {
			cur++
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return ""
}
