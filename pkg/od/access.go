package od

import "fmt"

// AccessType classifies how a dictionary value may be accessed over the
// network.
type AccessType uint8

const (
	// AccessRW allows reading and writing.
	AccessRW AccessType = iota

	// AccessRWR allows reading and writing; reads may additionally be
	// triggered through PDO transfer.
	AccessRWR

	// AccessRWW allows reading and writing; writes may additionally be
	// triggered through PDO transfer.
	AccessRWW

	// AccessRO allows reading only.
	AccessRO

	// AccessConst is a read-only value that never changes at runtime.
	AccessConst

	// AccessWO allows writing only.
	AccessWO
)

var accessNames = map[AccessType]string{
	AccessRW:    "rw",
	AccessRWR:   "rwr",
	AccessRWW:   "rww",
	AccessRO:    "ro",
	AccessConst: "const",
	AccessWO:    "wo",
}

// String returns the EDS access type mnemonic.
func (a AccessType) String() string {
	if name, ok := accessNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AccessType(%d)", uint8(a))
}

// ParseAccessType parses an EDS access type mnemonic.
func ParseAccessType(s string) (AccessType, error) {
	for a, name := range accessNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown access type %q", s)
}

// Readable returns true if the value can be read over the network.
func (a AccessType) Readable() bool { return a != AccessWO }

// Writable returns true if the value can be written over the network.
func (a AccessType) Writable() bool {
	return a == AccessRW || a == AccessRWR || a == AccessRWW || a == AccessWO
}

// PDOMapping classifies whether and how a value may be mapped into a PDO.
type PDOMapping uint8

const (
	// PDONo forbids PDO mapping.
	PDONo PDOMapping = iota

	// PDOOptional allows mapping into either PDO direction.
	PDOOptional

	// PDOTPDO allows mapping into transmit PDOs only.
	PDOTPDO

	// PDORPDO allows mapping into receive PDOs only.
	PDORPDO
)

var pdoNames = map[PDOMapping]string{
	PDONo:       "no",
	PDOOptional: "optional",
	PDOTPDO:     "TPDO",
	PDORPDO:     "RPDO",
}

// String returns the EDS PDO mapping mnemonic.
func (p PDOMapping) String() string {
	if name, ok := pdoNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PDOMapping(%d)", uint8(p))
}

// ParsePDOMapping parses an EDS PDO mapping mnemonic.
func ParsePDOMapping(s string) (PDOMapping, error) {
	for p, name := range pdoNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown PDO mapping %q", s)
}
