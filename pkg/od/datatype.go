package od

import "fmt"

// DataType identifies the semantic type of a dictionary value.
// Values are the CiA-301 data type codes.
type DataType uint16

const (
	// TypeBoolean is a 1-byte boolean value.
	TypeBoolean DataType = 0x01

	// TypeInteger8 through TypeInteger64 are two's-complement signed integers.
	TypeInteger8  DataType = 0x02
	TypeInteger16 DataType = 0x03
	TypeInteger32 DataType = 0x04

	// TypeUnsigned8 through TypeUnsigned64 are unsigned integers.
	TypeUnsigned8  DataType = 0x05
	TypeUnsigned16 DataType = 0x06
	TypeUnsigned32 DataType = 0x07

	// TypeReal32 and TypeReal64 are IEEE-754 floating point values.
	TypeReal32 DataType = 0x08

	// TypeVisibleString is a NUL-padded ASCII string.
	TypeVisibleString DataType = 0x09

	// TypeOctetString is a raw byte string.
	TypeOctetString DataType = 0x0A

	// TypeUnicodeString is a little-endian UTF-16 string.
	TypeUnicodeString DataType = 0x0B

	// TypeTimeOfDay and TypeTimeDifference are 6-byte time values.
	TypeTimeOfDay DataType = 0x0C

	// TypeTimeDifference is a 6-byte time delta.
	TypeTimeDifference DataType = 0x0D

	// TypeDomain is an opaque block transferred out of band; it never has
	// compiled storage.
	TypeDomain DataType = 0x0F

	// TypeInteger24 is a 3-byte signed integer.
	TypeInteger24 DataType = 0x10

	// TypeReal64 is an 8-byte IEEE-754 value.
	TypeReal64 DataType = 0x11

	// TypeInteger40 through TypeInteger64 are wide signed integers.
	TypeInteger40 DataType = 0x12
	TypeInteger48 DataType = 0x13
	TypeInteger56 DataType = 0x14
	TypeInteger64 DataType = 0x15

	// TypeUnsigned24 is a 3-byte unsigned integer.
	TypeUnsigned24 DataType = 0x16

	// TypeUnsigned40 through TypeUnsigned64 are wide unsigned integers.
	TypeUnsigned40 DataType = 0x18
	TypeUnsigned48 DataType = 0x19
	TypeUnsigned56 DataType = 0x1A
	TypeUnsigned64 DataType = 0x1B
)

var dataTypeNames = map[DataType]string{
	TypeBoolean:        "BOOLEAN",
	TypeInteger8:       "INTEGER8",
	TypeInteger16:      "INTEGER16",
	TypeInteger32:      "INTEGER32",
	TypeUnsigned8:      "UNSIGNED8",
	TypeUnsigned16:     "UNSIGNED16",
	TypeUnsigned32:     "UNSIGNED32",
	TypeReal32:         "REAL32",
	TypeVisibleString:  "VISIBLE_STRING",
	TypeOctetString:    "OCTET_STRING",
	TypeUnicodeString:  "UNICODE_STRING",
	TypeTimeOfDay:      "TIME_OF_DAY",
	TypeTimeDifference: "TIME_DIFFERENCE",
	TypeDomain:         "DOMAIN",
	TypeInteger24:      "INTEGER24",
	TypeReal64:         "REAL64",
	TypeInteger40:      "INTEGER40",
	TypeInteger48:      "INTEGER48",
	TypeInteger56:      "INTEGER56",
	TypeInteger64:      "INTEGER64",
	TypeUnsigned24:     "UNSIGNED24",
	TypeUnsigned40:     "UNSIGNED40",
	TypeUnsigned48:     "UNSIGNED48",
	TypeUnsigned56:     "UNSIGNED56",
	TypeUnsigned64:     "UNSIGNED64",
}

// String returns the CiA-301 data type name.
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(0x%02X)", uint16(t))
}

// ParseDataType parses a CiA-301 data type name.
func ParseDataType(s string) (DataType, error) {
	for t, name := range dataTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown data type %q", s)
}
