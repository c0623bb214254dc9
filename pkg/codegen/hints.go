package codegen

import "github.com/mash-protocol/odgen/pkg/od"

// LengthHinter supplies the storage length, in elements, reserved for
// string-family values of an object. Scalar types ignore the hint.
type LengthHinter interface {
	// Hint returns the reserved element count for the object.
	Hint(entry *od.ObjectEntry) int
}

// FixedHinter reserves the same length for every object.
type FixedHinter int

// Hint returns the fixed length.
func (h FixedHinter) Hint(*od.ObjectEntry) int { return int(h) }

// DefaultHinter is the stock string reservation used when a Compiler has no
// explicit hinter.
const DefaultHinter = FixedHinter(8)

// Compile-time interface satisfaction check.
var _ LengthHinter = DefaultHinter
