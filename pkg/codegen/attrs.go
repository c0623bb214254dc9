package codegen

import "github.com/mash-protocol/odgen/pkg/od"

// Attribute flag macros of the consuming stack, in emission order.
const (
	// AttrSDORW marks a value the SDO server may read and write.
	AttrSDORW = "ODA_SDO_RW"

	// AttrSDOR marks a read-only value.
	AttrSDOR = "ODA_SDO_R"

	// AttrSDOW marks a write-only value.
	AttrSDOW = "ODA_SDO_W"

	// AttrTRPDO marks a value mappable into either PDO direction.
	AttrTRPDO = "ODA_TRPDO"

	// AttrTPDO marks a value mappable into transmit PDOs.
	AttrTPDO = "ODA_TPDO"

	// AttrRPDO marks a value mappable into receive PDOs.
	AttrRPDO = "ODA_RPDO"

	// AttrMB marks a scalar wider than one byte, requiring width-safe
	// access on big-endian targets.
	AttrMB = "ODA_MB"
)

// AttributeFlags composes the ordered descriptor attribute flags for one
// value: one access flag (const folds into read-only), at most one PDO flag,
// then the multibyte marker. Unrecognized classifications contribute nothing.
func AttributeFlags(access od.AccessType, pdo od.PDOMapping, multibyte bool) []string {
	flags := make([]string, 0, 3)

	switch access {
	case od.AccessRW, od.AccessRWR, od.AccessRWW:
		flags = append(flags, AttrSDORW)
	case od.AccessRO, od.AccessConst:
		flags = append(flags, AttrSDOR)
	case od.AccessWO:
		flags = append(flags, AttrSDOW)
	}

	switch pdo {
	case od.PDOOptional:
		flags = append(flags, AttrTRPDO)
	case od.PDOTPDO:
		flags = append(flags, AttrTPDO)
	case od.PDORPDO:
		flags = append(flags, AttrRPDO)
	}

	if multibyte {
		flags = append(flags, AttrMB)
	}
	return flags
}

// sameFlags reports whether two composed flag lists are identical.
func sameFlags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
