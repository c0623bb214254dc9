// Package report records machine-readable generation reports.
//
// A Report captures the diagnostics and category totals of one generation
// run in CBOR, so CI can archive and diff build outcomes without scraping
// console output. Reports use integer CBOR keys for compactness.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/mash-protocol/odgen/pkg/codegen"
)

// encMode is the CBOR encoder mode for reports, configured for
// deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for reports.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyQuiet,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR decoder mode: %v", err))
	}
}

// Diagnostic is one recorded warning.
type Diagnostic struct {
	// Severity is the warning severity name, "build" today.
	Severity string `cbor:"1,keyasint"`

	// Message is the warning text.
	Message string `cbor:"2,keyasint"`
}

// Report summarizes one generation run.
type Report struct {
	// RunID uniquely identifies the run (UUID).
	RunID string `cbor:"1,keyasint"`

	// CreatedAt is when the report was built.
	CreatedAt time.Time `cbor:"2,keyasint"`

	// Dictionary is the compiled dictionary's name.
	Dictionary string `cbor:"3,keyasint,omitempty"`

	// Objects is the number of dictionary list entries produced.
	Objects int `cbor:"4,keyasint"`

	// Counters maps a category bucket to its object total.
	Counters map[string]int `cbor:"5,keyasint,omitempty"`

	// Diagnostics holds the run's warnings in emission order.
	Diagnostics []Diagnostic `cbor:"6,keyasint,omitempty"`
}

// New builds a report for one compiled output and its collected warnings.
// The report snapshots the counters; later mutation of the output does not
// show through.
func New(out *codegen.Output, warnings []codegen.Warning) *Report {
	counters := make(map[string]int, len(out.Counters))
	for bucket, total := range out.Counters {
		counters[bucket] = total
	}
	r := &Report{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Dictionary: out.Name,
		Objects:    len(out.List),
		Counters:   counters,
	}
	for _, w := range warnings {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Severity: w.Severity.String(),
			Message:  w.Message,
		})
	}
	return r
}

// Encode encodes the report to CBOR bytes.
func (r *Report) Encode() ([]byte, error) {
	return encMode.Marshal(r)
}

// Decode decodes CBOR bytes into a report.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := decMode.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// WriteFile writes the report to path, replacing any existing file.
func (r *Report) WriteFile(path string) error {
	data, err := r.Encode()
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a report from path.
func ReadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return r, nil
}
