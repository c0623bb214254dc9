package od

import "testing"

func TestDataTypeRoundTrip(t *testing.T) {
	for typ, name := range dataTypeNames {
		if got := typ.String(); got != name {
			t.Errorf("String() = %q, want %q", got, name)
		}
		parsed, err := ParseDataType(name)
		if err != nil {
			t.Errorf("ParseDataType(%q) failed: %v", name, err)
		}
		if parsed != typ {
			t.Errorf("ParseDataType(%q) = %v, want %v", name, parsed, typ)
		}
	}
	if _, err := ParseDataType("UNSIGNED128"); err == nil {
		t.Error("expected error for unknown type name")
	}
	if got := DataType(0xEE).String(); got != "DataType(0xEE)" {
		t.Errorf("unknown String() = %q", got)
	}
}

func TestAccessTypeHelpers(t *testing.T) {
	tests := []struct {
		access   AccessType
		readable bool
		writable bool
	}{
		{AccessRW, true, true},
		{AccessRWR, true, true},
		{AccessRWW, true, true},
		{AccessRO, true, false},
		{AccessConst, true, false},
		{AccessWO, false, true},
	}
	for _, tt := range tests {
		if got := tt.access.Readable(); got != tt.readable {
			t.Errorf("%s.Readable() = %v, want %v", tt.access, got, tt.readable)
		}
		if got := tt.access.Writable(); got != tt.writable {
			t.Errorf("%s.Writable() = %v, want %v", tt.access, got, tt.writable)
		}
	}
}

func TestParseAccessTypeAndPDOMapping(t *testing.T) {
	a, err := ParseAccessType("const")
	if err != nil || a != AccessConst {
		t.Errorf("ParseAccessType(const) = %v, %v", a, err)
	}
	p, err := ParsePDOMapping("RPDO")
	if err != nil || p != PDORPDO {
		t.Errorf("ParsePDOMapping(RPDO) = %v, %v", p, err)
	}
	if _, err := ParseAccessType("rwx"); err == nil {
		t.Error("expected error for unknown access type")
	}
}

func TestDictionaryEnabledAndFind(t *testing.T) {
	dict := &Dictionary{Objects: []ObjectEntry{
		{Index: 0x1000, Kind: KindVar},
		{Index: 0x1001, Kind: KindVar, Disabled: true},
		{Index: 0x1018, Kind: KindRecord},
	}}

	enabled := dict.Enabled()
	if len(enabled) != 2 {
		t.Fatalf("len(enabled) = %d, want 2", len(enabled))
	}
	if enabled[1].Index != 0x1018 {
		t.Errorf("enabled[1].index = 0x%04X, want 0x1018", enabled[1].Index)
	}

	if obj := dict.Find(0x1001); obj == nil || !obj.Disabled {
		t.Error("Find(0x1001) should return the disabled object")
	}
	if obj := dict.Find(0x2000); obj != nil {
		t.Error("Find(0x2000) should return nil")
	}
}

func TestObjectKindParse(t *testing.T) {
	for _, name := range []string{"VAR", "ARRAY", "RECORD"} {
		k, err := ParseObjectKind(name)
		if err != nil {
			t.Fatalf("ParseObjectKind(%q) failed: %v", name, err)
		}
		if k.String() != name {
			t.Errorf("round trip %q = %q", name, k.String())
		}
	}
	if _, err := ParseObjectKind("STRUCT"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
