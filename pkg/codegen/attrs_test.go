package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mash-protocol/odgen/pkg/od"
)

func TestAttributeFlags(t *testing.T) {
	tests := []struct {
		name      string
		access    od.AccessType
		pdo       od.PDOMapping
		multibyte bool
		want      []string
	}{
		{"read-write", od.AccessRW, od.PDONo, false, []string{"ODA_SDO_RW"}},
		{"read-write on read", od.AccessRWR, od.PDONo, false, []string{"ODA_SDO_RW"}},
		{"read-write on write", od.AccessRWW, od.PDONo, false, []string{"ODA_SDO_RW"}},
		{"read-only", od.AccessRO, od.PDONo, false, []string{"ODA_SDO_R"}},
		{"const folds into read-only", od.AccessConst, od.PDONo, false, []string{"ODA_SDO_R"}},
		{"write-only", od.AccessWO, od.PDONo, false, []string{"ODA_SDO_W"}},
		{"optional pdo", od.AccessRW, od.PDOOptional, false, []string{"ODA_SDO_RW", "ODA_TRPDO"}},
		{"tpdo only", od.AccessRO, od.PDOTPDO, false, []string{"ODA_SDO_R", "ODA_TPDO"}},
		{"rpdo only", od.AccessRWW, od.PDORPDO, false, []string{"ODA_SDO_RW", "ODA_RPDO"}},
		{"multibyte marker last", od.AccessRW, od.PDOOptional, true, []string{"ODA_SDO_RW", "ODA_TRPDO", "ODA_MB"}},
		{"unrecognized access contributes nothing", od.AccessType(99), od.PDONo, true, []string{"ODA_MB"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttributeFlags(tt.access, tt.pdo, tt.multibyte))
		})
	}
}
