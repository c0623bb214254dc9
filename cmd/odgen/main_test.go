package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mash-protocol/odgen/pkg/report"
)

const demoYAML = `
name: demo device
objects:
  - index: 0x1000
    name: Device Type
    type: UNSIGNED32
    access: ro
    default: "0x00000191"
  - index: 0x1003
    kind: ARRAY
    name: Pre-defined Error Field
    subs:
      - sub: 0
        name: Number of Errors
        type: UNSIGNED8
        default: "0"
      - sub: 1
        name: Standard Error Field
        type: UNSIGNED32
        access: ro
        default: "0"
`

func TestRunGeneratesArtifacts(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.yaml")
	if err := os.WriteFile(dictPath, []byte(demoYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	reportPath := filepath.Join(dir, "build.odrep")

	if err := run(dictPath, outDir, reportPath, 8); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	header, err := os.ReadFile(filepath.Join(outDir, "OD.h"))
	if err != nil {
		t.Fatalf("reading OD.h: %v", err)
	}
	if !strings.Contains(string(header), "OD_ENTRY_H1000_deviceType") {
		t.Error("OD.h is missing the long shortcut macro")
	}

	source, err := os.ReadFile(filepath.Join(outDir, "OD.c"))
	if err != nil {
		t.Fatalf("reading OD.c: %v", err)
	}
	if !strings.Contains(string(source), "ODList[OD_CNT_ENTRIES + 1]") {
		t.Error("OD.c is missing the dictionary list")
	}

	rep, err := report.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if rep.Objects != 2 {
		t.Errorf("report objects = %d, want 2", rep.Objects)
	}
	// 0x1003 is in the reserved IO-extension set.
	if len(rep.Diagnostics) != 1 || !strings.Contains(rep.Diagnostics[0].Message, "must be enabled") {
		t.Errorf("diagnostics = %v, want one IO-extension warning", rep.Diagnostics)
	}
}

func TestRunRejectsBadDictionary(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.yaml")
	if err := os.WriteFile(dictPath, []byte("objects: [{index: 1, kind: BLOB}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(dictPath, filepath.Join(dir, "out"), "", 8); err == nil {
		t.Fatal("expected error for invalid dictionary")
	}
}
