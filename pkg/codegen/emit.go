package codegen

import (
	"sort"
	"strings"
)

// counterTotal pairs a category bucket with its object total.
type counterTotal struct {
	Name  string
	Total int
}

// emitData is the pre-computed template input for one emission.
type emitData struct {
	Name     string
	Groups   []*StorageGroup
	List     []ListEntry
	Short    []Macro
	Long     []Macro
	Counters []counterTotal
	Entries  int
}

// EmitC renders one run's output as the OD.h header and OD.c source text.
// Counter defines are emitted in sorted bucket order; everything else keeps
// the compiler's ordering.
func EmitC(out *Output) (header, source string) {
	name := out.Name
	if name == "" {
		name = "object dictionary"
	}
	data := emitData{
		Name:    name,
		Groups:  out.Groups,
		List:    out.List,
		Short:   out.ShortMacros,
		Long:    out.LongMacros,
		Entries: len(out.List),
	}

	buckets := make([]string, 0, len(out.Counters))
	for b := range out.Counters {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)
	for _, b := range buckets {
		data.Counters = append(data.Counters, counterTotal{Name: b, Total: out.Counters[b]})
	}

	var h, s strings.Builder
	renderTemplate(&h, "header", data)
	renderTemplate(&s, "source", data)
	return h.String(), s.String()
}
