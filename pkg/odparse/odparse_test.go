package odparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mash-protocol/odgen/pkg/od"
)

const demoYAML = `
name: demo device
objects:
  - index: 0x1018
    kind: RECORD
    name: Identity
    storage: PERSIST
    subs:
      - sub: 0
        name: Highest sub-index supported
        type: UNSIGNED8
        access: ro
        default: "0x01"
      - sub: 1
        name: Vendor ID
        type: UNSIGNED32
        access: ro
        default: "0x12345678"
  - index: 0x1000
    name: Device Type
    type: UNSIGNED32
    access: ro
    default: "0x00000191"
  - index: 0x1003
    kind: ARRAY
    name: Pre-defined Error Field
    ioExtension: true
    disabled: true
    subs:
      - sub: 0
        name: Number of Errors
        type: UNSIGNED8
        default: "0"
      - sub: 1
        name: Standard Error Field
        type: UNSIGNED32
        access: ro
        pdo: TPDO
        default: "0"
`

func TestParseDictionary(t *testing.T) {
	dict, err := ParseDictionary([]byte(demoYAML))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	if dict.Name != "demo device" {
		t.Errorf("name = %q, want demo device", dict.Name)
	}
	if len(dict.Objects) != 3 {
		t.Fatalf("len(objects) = %d, want 3", len(dict.Objects))
	}

	// Objects come back sorted ascending by index.
	wantOrder := []uint16{0x1000, 0x1003, 0x1018}
	for i, want := range wantOrder {
		if dict.Objects[i].Index != want {
			t.Errorf("objects[%d].index = 0x%04X, want 0x%04X", i, dict.Objects[i].Index, want)
		}
	}
}

func TestParseDictionaryDefaults(t *testing.T) {
	dict, err := ParseDictionary([]byte(demoYAML))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}

	// Omitted kind falls back to VAR, omitted access to rw, omitted pdo to no.
	dev := dict.Find(0x1000)
	if dev.Kind != od.KindVar {
		t.Errorf("kind = %s, want VAR", dev.Kind)
	}
	arr := dict.Find(0x1003)
	if !arr.Disabled || !arr.IOExtension {
		t.Errorf("flags = disabled:%v ioExtension:%v, want both true", arr.Disabled, arr.IOExtension)
	}
	if got := arr.Subs[0].Access; got != od.AccessRW {
		t.Errorf("sub 0 access = %s, want rw", got)
	}
	if got := arr.Subs[1].PDO; got != od.PDOTPDO {
		t.Errorf("sub 1 pdo = %s, want TPDO", got)
	}
}

func TestParseDictionaryRecord(t *testing.T) {
	dict, err := ParseDictionary([]byte(demoYAML))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	rec := dict.Find(0x1018)
	if rec.Kind != od.KindRecord {
		t.Fatalf("kind = %s, want RECORD", rec.Kind)
	}
	if rec.StorageGroup != "PERSIST" {
		t.Errorf("storage = %q, want PERSIST", rec.StorageGroup)
	}
	if len(rec.Subs) != 2 {
		t.Fatalf("len(subs) = %d, want 2", len(rec.Subs))
	}
	if rec.Subs[1].Type != od.TypeUnsigned32 || rec.Subs[1].Default != "0x12345678" {
		t.Errorf("sub 1 = %+v, want UNSIGNED32 with default 0x12345678", rec.Subs[1])
	}
}

func TestParseDictionaryDuplicateIndex(t *testing.T) {
	yaml := `
objects:
  - index: 0x1000
    name: a
    type: UNSIGNED8
  - index: 0x1000
    name: b
    type: UNSIGNED8
`
	if _, err := ParseDictionary([]byte(yaml)); err == nil {
		t.Fatal("expected duplicate index error")
	}
}

func TestParseDictionaryBadEnums(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad kind", "objects:\n  - index: 1\n    kind: BLOB\n"},
		{"bad type", "objects:\n  - index: 1\n    type: UNSIGNED128\n"},
		{"bad access", "objects:\n  - index: 1\n    access: always\n"},
		{"bad pdo", "objects:\n  - index: 1\n    pdo: maybe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDictionary([]byte(tt.yaml)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	if err := os.WriteFile(path, []byte(demoYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if len(dict.Objects) != 3 {
		t.Errorf("len(objects) = %d, want 3", len(dict.Objects))
	}

	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
