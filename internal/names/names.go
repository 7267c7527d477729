// Package names defines a small external name-registrar collaborator
// (assignName(O, base, suffix?)). It is kept separate from internal/aig
// because the core graph owns no string tables of its own.
package names

import (
	"fmt"

	"github.com/avidale-eda/aigretime/internal/aig"
)

// Registrar assigns display names to objects. AssignName sets base as an
// object's name; if suffix is non-empty the stored name is base+suffix.
type Registrar interface {
	AssignName(id aig.ObjID, base, suffix string)
	Name(id aig.ObjID) (string, bool)
}

// Default is a simple map-backed Registrar plus the default-name
// generator the decoder runs after the symbol table.
type Default struct {
	table map[aig.ObjID]string
}

// NewDefault creates an empty registrar.
func NewDefault() *Default {
	return &Default{table: make(map[aig.ObjID]string)}
}

func (d *Default) AssignName(id aig.ObjID, base, suffix string) {
	d.table[id] = base + suffix
}

func (d *Default) Name(id aig.ObjID) (string, bool) {
	n, ok := d.table[id]
	return n, ok
}

// DefaultPIName, DefaultLOName, DefaultPOName mint the fallback names the
// decoder assigns to any PI/LO/PO the symbol table left unnamed
//, matching the original decoder's "i<N>"/"l<N>"/
// "o<N>" short-name convention used when no symbol table is present at all.
func DefaultPIName(i int) string { return fmt.Sprintf("i%d", i) }
func DefaultLOName(r int) string { return fmt.Sprintf("l%d", r) }
func DefaultPOName(i int) string { return fmt.Sprintf("o%d", i) }
