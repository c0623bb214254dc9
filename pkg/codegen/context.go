package codegen

import "github.com/mash-protocol/odgen/pkg/od"

// Field is one storage declaration within a group.
type Field struct {
	// Type is the C type of the field. Empty when Sub is set.
	Type string

	// Name is the field identifier.
	Name string

	// Suffix holds the array-length suffix(es), e.g. "[4]" or "[4][8]".
	Suffix string

	// Sub, when non-nil, makes this field an anonymous struct with the
	// given members (RECORD storage).
	Sub []Field
}

// StorageGroup is a named bucket of ordered declaration/initializer pairs.
// Fields and Inits run in parallel: Inits[i] initializes Fields[i].
type StorageGroup struct {
	Name   string
	Fields []Field
	Inits  []string
}

// VarPayload is the descriptor payload of a VAR object.
type VarPayload struct {
	// Data is a pointer expression into the storage group, or "NULL".
	Data string

	// Attrs are the composed attribute flags.
	Attrs []string

	// Len is the value's byte length.
	Len int
}

// ArrayPayload is the descriptor payload of an ARRAY object.
type ArrayPayload struct {
	// Data0 points at the count field's storage, or "NULL".
	Data0 string

	// Data points at the flattened element storage, or "NULL".
	Data string

	// Attrs0 are the count sub-entry's attribute flags.
	Attrs0 []string

	// Attrs are the attribute flags shared by all elements.
	Attrs []string

	// ElemLen is the byte length of one element.
	ElemLen int
}

// RecordMember is the descriptor payload of one RECORD sub-entry.
type RecordMember struct {
	SubIndex uint8

	// Name is the normalized member identifier.
	Name string

	// Data points at the member's storage, or "NULL".
	Data string

	// Attrs are the member's attribute flags.
	Attrs []string

	// Len is the member's byte length.
	Len int
}

// Descriptor is the compiled per-object record consumed by the emission
// layer. Exactly one of Var, Array or Record is populated, matching Kind.
type Descriptor struct {
	Index    uint16
	VarName  string
	Kind     od.ObjectKind
	SubCount int

	// Extended wraps the descriptor with null-initialized I/O-interception
	// hook pointers.
	Extended bool

	Var    *VarPayload
	Array  *ArrayPayload
	Record []RecordMember
}

// ListEntry is one row of the compiled dictionary list.
type ListEntry struct {
	Index      uint16
	SubCount   int
	ShapeTag   string
	Descriptor *Descriptor
}

// Macro is a shortcut binding from a macro name to a dictionary list
// position.
type Macro struct {
	Name     string
	Position int
}

// Output is everything one generation run produces for the emission layer.
// Runs never share Output state.
type Output struct {
	// Name labels the run, taken from the dictionary.
	Name string

	// Groups holds the storage groups in first-reference order.
	Groups []*StorageGroup

	// List is the compiled dictionary list in ascending index order.
	List []ListEntry

	// ShortMacros and LongMacros are the parallel shortcut-macro bindings
	// (index-only and index+identifier forms).
	ShortMacros []Macro
	LongMacros  []Macro

	// Counters maps a category bucket to its object total.
	Counters map[string]int
}

// run owns the mutable aggregation state of one generation pass.
type run struct {
	hints  LengthHinter
	sink   WarningSink
	groups map[string]*StorageGroup
	out    *Output
}

// group returns the storage group for label, creating it on first reference.
func (r *run) group(label string) *StorageGroup {
	if g, ok := r.groups[label]; ok {
		return g
	}
	g := &StorageGroup{Name: label}
	r.groups[label] = g
	r.out.Groups = append(r.out.Groups, g)
	return g
}
