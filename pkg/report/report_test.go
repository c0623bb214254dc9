package report

import (
	"path/filepath"
	"testing"

	"github.com/mash-protocol/odgen/pkg/codegen"
)

func sampleOutput() (*codegen.Output, []codegen.Warning) {
	out := &codegen.Output{
		Name:     "demo",
		List:     make([]codegen.ListEntry, 2),
		Counters: map[string]int{"VAR": 1, "RECORD": 1},
	}
	warnings := []codegen.Warning{
		{Message: "0x1003 Pre-defined Error Field: external IO extension must be enabled for this object", Severity: codegen.SeverityBuild},
	}
	return out, warnings
}

func TestNewReport(t *testing.T) {
	out, warnings := sampleOutput()
	r := New(out, warnings)

	if r.RunID == "" {
		t.Error("run ID is empty")
	}
	if r.CreatedAt.IsZero() {
		t.Error("created timestamp is zero")
	}
	if r.Dictionary != "demo" {
		t.Errorf("dictionary = %q, want demo", r.Dictionary)
	}
	if r.Objects != 2 {
		t.Errorf("objects = %d, want 2", r.Objects)
	}
	if len(r.Diagnostics) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(r.Diagnostics))
	}
	if r.Diagnostics[0].Severity != "build" {
		t.Errorf("severity = %q, want build", r.Diagnostics[0].Severity)
	}
}

func TestNewReportSnapshotsCounters(t *testing.T) {
	out, warnings := sampleOutput()
	r := New(out, warnings)

	out.Counters["VAR"] = 99
	out.Counters["ARRAY"] = 1

	if r.Counters["VAR"] != 1 {
		t.Errorf("counters[VAR] = %d, want 1", r.Counters["VAR"])
	}
	if _, ok := r.Counters["ARRAY"]; ok {
		t.Errorf("counters = %v, ARRAY should not appear", r.Counters)
	}
}

func TestReportEncodeDecode(t *testing.T) {
	out, warnings := sampleOutput()
	r := New(out, warnings)

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.RunID != r.RunID {
		t.Errorf("run ID = %q, want %q", decoded.RunID, r.RunID)
	}
	if decoded.Counters["RECORD"] != 1 {
		t.Errorf("counters = %v, want RECORD:1", decoded.Counters)
	}
	if len(decoded.Diagnostics) != 1 || decoded.Diagnostics[0].Message != r.Diagnostics[0].Message {
		t.Errorf("diagnostics = %v", decoded.Diagnostics)
	}
}

func TestReportFileRoundTrip(t *testing.T) {
	out, warnings := sampleOutput()
	r := New(out, warnings)

	path := filepath.Join(t.TempDir(), "build.odrep")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if loaded.RunID != r.RunID {
		t.Errorf("run ID = %q, want %q", loaded.RunID, r.RunID)
	}
	if !loaded.CreatedAt.Equal(r.CreatedAt) {
		t.Errorf("created = %v, want %v", loaded.CreatedAt, r.CreatedAt)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.odrep")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
