package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mash-protocol/odgen/pkg/codegen"
	"github.com/mash-protocol/odgen/pkg/odparse"
	"github.com/mash-protocol/odgen/pkg/report"
)

func main() {
	dictPath := flag.String("dict", "", "Path to object dictionary YAML")
	outputDir := flag.String("output", "", "Output directory for OD.h and OD.c")
	reportPath := flag.String("report", "", "Optional path for the CBOR generation report")
	hint := flag.Int("hint", int(codegen.DefaultHinter), "Reserved element count for string defaults")
	flag.Parse()

	if *dictPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: odgen -dict <path> -output <dir> [-report <path>] [-hint <n>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*dictPath, *outputDir, *reportPath, *hint); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dictPath, outputDir, reportPath string, hint int) error {
	dict, err := odparse.LoadDictionary(dictPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	sink := &codegen.ListSink{}
	c := codegen.Compiler{Hints: codegen.FixedHinter(hint), Sink: sink}
	out, err := c.Compile(dict)
	if err != nil {
		return fmt.Errorf("compiling dictionary: %w", err)
	}

	for _, w := range sink.Warnings {
		fmt.Fprintf(os.Stderr, "warning (%s): %s\n", w.Severity, w.Message)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	header, source := codegen.EmitC(out)
	headerPath := filepath.Join(outputDir, "OD.h")
	if err := os.WriteFile(headerPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("writing OD.h: %w", err)
	}
	fmt.Printf("  generated %s\n", headerPath)

	sourcePath := filepath.Join(outputDir, "OD.c")
	if err := os.WriteFile(sourcePath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing OD.c: %w", err)
	}
	fmt.Printf("  generated %s\n", sourcePath)

	if reportPath != "" {
		rep := report.New(out, sink.Warnings)
		if err := rep.WriteFile(reportPath); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("  generated %s\n", reportPath)
	}

	fmt.Printf("Done: %d objects, %d warnings\n", len(out.List), len(sink.Warnings))
	return nil
}
