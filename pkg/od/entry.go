package od

import "fmt"

// ObjectKind is the shape of a dictionary object.
// Values are the CiA-301 object codes.
type ObjectKind uint8

const (
	// KindVar is a single value.
	KindVar ObjectKind = 0x07

	// KindArray is a homogeneous array with a leading count sub-entry.
	KindArray ObjectKind = 0x08

	// KindRecord is a heterogeneous aggregate with a leading count sub-entry.
	KindRecord ObjectKind = 0x09
)

var kindNames = map[ObjectKind]string{
	KindVar:    "VAR",
	KindArray:  "ARRAY",
	KindRecord: "RECORD",
}

// String returns the object shape name.
func (k ObjectKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ObjectKind(0x%02X)", uint8(k))
}

// ParseObjectKind parses an object shape name.
func ParseObjectKind(s string) (ObjectKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown object kind %q", s)
}

// SubEntry is a child value of an ARRAY or RECORD object.
type SubEntry struct {
	// SubIndex addresses the sub-entry below its parent (0-255).
	SubIndex uint8

	// Name is the free-form parameter name.
	Name string

	// Type is the semantic data type.
	Type DataType

	// Access classifies network access.
	Access AccessType

	// PDO classifies PDO mappability.
	PDO PDOMapping

	// Default is the raw default value as authored, possibly empty and
	// possibly carrying a $NODEID+ placeholder.
	Default string
}

// ObjectEntry is one object of the dictionary.
type ObjectEntry struct {
	// Index is the 16-bit object index, unique within a dictionary.
	Index uint16

	// Kind is the object shape.
	Kind ObjectKind

	// Disabled excludes the object from generation without removing it
	// from the dictionary.
	Disabled bool

	// StorageGroup names the storage partition for the compiled default
	// value. Empty selects the RAM group.
	StorageGroup string

	// Name is the free-form parameter name.
	Name string

	// Access classifies network access (VAR objects only).
	Access AccessType

	// PDO classifies PDO mappability (VAR objects only).
	PDO PDOMapping

	// Type is the semantic data type (VAR objects only).
	Type DataType

	// Default is the raw default value (VAR objects only).
	Default string

	// IOExtension requests the external-I/O indirection hook for this
	// object. The compiler forces it on for a reserved set of indices.
	IOExtension bool

	// FlagsPDO requests the PDO-flags indirection. The path is reserved
	// and currently never taken.
	FlagsPDO bool

	// Subs are the ordered sub-entries of an ARRAY or RECORD.
	Subs []SubEntry
}

// Dictionary is an ordered-by-index collection of objects.
type Dictionary struct {
	// Name labels the dictionary, typically the device name.
	Name string

	// Objects holds all objects in ascending index order.
	Objects []ObjectEntry
}

// Enabled returns the objects that participate in generation, in order.
func (d *Dictionary) Enabled() []ObjectEntry {
	out := make([]ObjectEntry, 0, len(d.Objects))
	for _, o := range d.Objects {
		if !o.Disabled {
			out = append(out, o)
		}
	}
	return out
}

// Find returns the object with the given index, or nil.
func (d *Dictionary) Find(index uint16) *ObjectEntry {
	for i := range d.Objects {
		if d.Objects[i].Index == index {
			return &d.Objects[i]
		}
	}
	return nil
}
