// Package od implements the Object Dictionary data model.
//
// # Dictionary Structure
//
// A Dictionary is an ordered, sparse table of device parameters indexed by a
// 16-bit object index:
//
//	Dictionary
//	├── 0x1000 VAR    deviceType
//	├── 0x1003 ARRAY  preDefinedErrorField
//	│   ├── sub 0     numberOfErrors
//	│   └── sub 1..N  standardErrorField
//	└── 0x1018 RECORD identity
//	    ├── sub 0     highestSubIndexSupported
//	    ├── sub 1     vendorID
//	    └── ...
//
// Each object has one of three shapes:
//   - VAR: a single value
//   - ARRAY: a count sub-entry (sub 0) plus N homogeneous elements
//   - RECORD: a count sub-entry plus independently typed fields
//
// # Addressing
//
// Values are addressed by the tuple (Index, SubIndex). Sub-entry 0 of an
// ARRAY or RECORD always carries the number of following sub-entries as an
// 8-bit unsigned value.
//
// # Access Control
//
// Every object and sub-entry carries an access type (read-write, read-only,
// const, write-only and the PDO-triggered read/write variants) and a PDO
// mapping classification that together determine the attribute flags of the
// compiled object descriptor.
//
// The types in this package are read-only inputs for one generation run; the
// compiler in pkg/codegen never mutates them.
package od
