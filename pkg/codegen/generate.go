package codegen

import (
	"fmt"
	"strings"

	"github.com/mash-protocol/odgen/pkg/od"
)

// ioExtensionIndices are the objects the consuming stack accesses through
// the external-I/O extension regardless of what the dictionary requests.
var ioExtensionIndices = map[uint16]bool{
	0x1003: true, // pre-defined error field
	0x1017: true, // producer heartbeat time
	0x1280: true, // SDO client parameter
	0x1400: true, // RPDO communication parameter
}

// flagsPDOEnabled gates the PDO-flags indirection. The data model cannot
// request it yet; the hook stays wired for when it can.
const flagsPDOEnabled = false

// defaultGroup receives objects without an explicit storage-location label.
const defaultGroup = "RAM"

// Compiler compiles dictionaries. The zero value uses DefaultHinter and
// discards warnings; a Compiler holds no per-run state and may be reused.
type Compiler struct {
	// Hints supplies string storage lengths. Nil means DefaultHinter.
	Hints LengthHinter

	// Sink receives build warnings in entry-processing order. Nil means
	// NoopSink.
	Sink WarningSink
}

// Compile runs one generation pass over the enabled objects of dict in
// ascending index order. Shape and value violations degrade individual
// objects and are reported through the sink; Compile returns an error only
// for a structural input violation (duplicate or non-ascending enabled
// indices), in which case no partial output is returned.
func (c Compiler) Compile(dict *od.Dictionary) (*Output, error) {
	hints := c.Hints
	if hints == nil {
		hints = DefaultHinter
	}
	sink := c.Sink
	if sink == nil {
		sink = NoopSink{}
	}

	enabled := dict.Enabled()
	for i := 1; i < len(enabled); i++ {
		if enabled[i].Index <= enabled[i-1].Index {
			return nil, fmt.Errorf("object 0x%04X: enabled indices must be unique and ascending", enabled[i].Index)
		}
	}

	r := &run{
		hints:  hints,
		sink:   sink,
		groups: make(map[string]*StorageGroup),
		out: &Output{
			Name:     dict.Name,
			Counters: make(map[string]int),
		},
	}
	for i := range enabled {
		r.processEntry(&enabled[i])
	}
	return r.out, nil
}

// processEntry compiles one object and folds it into the run state. Objects
// whose shape dispatch returns a zero sub-entry count are excluded entirely:
// no descriptor, no macros, no counter.
func (r *run) processEntry(e *od.ObjectEntry) {
	hexIndex := fmt.Sprintf("%04X", e.Index)
	name := SymbolName(e.Name)
	ident := fmt.Sprintf("x%s_%s", hexIndex, name)

	ioExt := e.IOExtension
	if ioExtensionIndices[e.Index] && !ioExt {
		warnf(r.sink, "0x%04X %s: external IO extension must be enabled for this object", e.Index, e.Name)
		ioExt = true
	}

	groupLabel := e.StorageGroup
	if groupLabel == "" {
		groupLabel = defaultGroup
	}
	group := r.group(groupLabel)

	desc := &Descriptor{Index: e.Index, VarName: name, Kind: e.Kind}
	var count int
	switch e.Kind {
	case od.KindVar:
		count = r.compileVar(e, group, groupLabel, ident, desc)
	case od.KindArray:
		count = r.compileArray(e, group, groupLabel, ident, desc)
	case od.KindRecord:
		count = r.compileRecord(e, group, groupLabel, ident, desc)
	default:
		warnf(r.sink, "0x%04X %s: unknown object kind %s", e.Index, e.Name, e.Kind)
	}
	if count == 0 {
		return
	}

	desc.SubCount = count
	desc.Extended = ioExt || (flagsPDOEnabled && e.FlagsPDO)

	pos := len(r.out.List)
	r.out.ShortMacros = append(r.out.ShortMacros, Macro{
		Name:     fmt.Sprintf("OD_ENTRY_H%s", hexIndex),
		Position: pos,
	})
	r.out.LongMacros = append(r.out.LongMacros, Macro{
		Name:     fmt.Sprintf("OD_ENTRY_H%s_%s", hexIndex, name),
		Position: pos,
	})
	r.out.List = append(r.out.List, ListEntry{
		Index:      e.Index,
		SubCount:   count,
		ShapeTag:   shapeTag(e.Kind, desc.Extended),
		Descriptor: desc,
	})
	r.out.Counters[counterBucket(e)]++
}

func (r *run) compileVar(e *od.ObjectEntry, group *StorageGroup, groupLabel, ident string, desc *Descriptor) int {
	ev := EncodeValue(e.Type, e.Default, r.hints.Hint(e), objectLabel(e), r.sink)

	data := "NULL"
	if ev.HasValue {
		group.Fields = append(group.Fields, Field{Type: ev.CType, Name: ident, Suffix: ev.Suffix})
		group.Inits = append(group.Inits, ev.Value)
		data = storagePtr(groupLabel, ident, ev.Suffix)
	}
	desc.Var = &VarPayload{
		Data:  data,
		Attrs: AttributeFlags(e.Access, e.PDO, ev.Multibyte),
		Len:   ev.Len,
	}
	return 1
}

func (r *run) compileArray(e *od.ObjectEntry, group *StorageGroup, groupLabel, ident string, desc *Descriptor) int {
	if len(e.Subs) < 2 {
		warnf(r.sink, "0x%04X %s: ARRAY must have at least 2 sub-entries", e.Index, e.Name)
		return 0
	}
	hint := r.hints.Hint(e)

	sub0 := &e.Subs[0]
	ev0 := EncodeValue(sub0.Type, sub0.Default, hint, subLabel(e, sub0), r.sink)
	if sub0.SubIndex != 0 || sub0.Type != od.TypeUnsigned8 {
		warnf(r.sink, "0x%04X %s: sub-entry 0 must be UNSIGNED8 at sub-index 0", e.Index, e.Name)
	}

	first := &e.Subs[1]
	ev1 := EncodeValue(first.Type, first.Default, hint, subLabel(e, first), r.sink)
	attrs := AttributeFlags(first.Access, first.PDO, ev1.Multibyte)

	elems := make([]string, 0, len(e.Subs)-1)
	if ev1.HasValue {
		elems = append(elems, ev1.Value)
	}

	// All elements must agree with sub-entry 1; each property warns once
	// and the element keeps sub-entry 1's encoding.
	var warnedType, warnedLen, warnedValue, warnedAttrs bool
	for i := 2; i < len(e.Subs); i++ {
		s := &e.Subs[i]
		evi := EncodeValue(s.Type, s.Default, hint, subLabel(e, s), r.sink)
		if evi.CType != ev1.CType && !warnedType {
			warnf(r.sink, "0x%04X %s: sub-entries diverge in data type", e.Index, e.Name)
			warnedType = true
		}
		if evi.Len != ev1.Len && !warnedLen {
			warnf(r.sink, "0x%04X %s: sub-entries diverge in byte length", e.Index, e.Name)
			warnedLen = true
		}
		if evi.HasValue != ev1.HasValue && !warnedValue {
			warnf(r.sink, "0x%04X %s: sub-entries diverge in default value presence", e.Index, e.Name)
			warnedValue = true
		}
		if !sameFlags(AttributeFlags(s.Access, s.PDO, evi.Multibyte), attrs) && !warnedAttrs {
			warnf(r.sink, "0x%04X %s: sub-entries diverge in attributes", e.Index, e.Name)
			warnedAttrs = true
		}
		if ev1.HasValue {
			if evi.HasValue {
				elems = append(elems, evi.Value)
			} else {
				elems = append(elems, "0")
			}
		}
	}

	data := "NULL"
	if ev1.HasValue {
		suffix := fmt.Sprintf("[%d]%s", len(e.Subs)-1, ev1.Suffix)
		group.Fields = append(group.Fields, Field{Type: ev1.CType, Name: ident, Suffix: suffix})
		group.Inits = append(group.Inits, "{"+strings.Join(elems, ", ")+"}")
		data = storagePtr(groupLabel, ident, suffix)
	}
	data0 := "NULL"
	if ev0.HasValue {
		group.Fields = append(group.Fields, Field{Type: ev0.CType, Name: ident + "_sub0"})
		group.Inits = append(group.Inits, ev0.Value)
		data0 = storagePtr(groupLabel, ident+"_sub0", "")
	}

	desc.Array = &ArrayPayload{
		Data0:   data0,
		Data:    data,
		Attrs0:  AttributeFlags(sub0.Access, sub0.PDO, ev0.Multibyte),
		Attrs:   attrs,
		ElemLen: ev1.Len,
	}
	return len(e.Subs)
}

func (r *run) compileRecord(e *od.ObjectEntry, group *StorageGroup, groupLabel, ident string, desc *Descriptor) int {
	if len(e.Subs) < 2 {
		warnf(r.sink, "0x%04X %s: RECORD must have at least 2 sub-entries", e.Index, e.Name)
		return 0
	}
	hint := r.hints.Hint(e)

	var members []Field
	var inits []string
	desc.Record = make([]RecordMember, 0, len(e.Subs))
	for i := range e.Subs {
		s := &e.Subs[i]
		subName := SymbolName(s.Name)
		ev := EncodeValue(s.Type, s.Default, hint, subLabel(e, s), r.sink)
		if i == 0 && (s.SubIndex != 0 || s.Type != od.TypeUnsigned8 || ev.Len != 1) {
			warnf(r.sink, "0x%04X %s: sub-entry 0 must be UNSIGNED8 at sub-index 0", e.Index, e.Name)
		}

		data := "NULL"
		if ev.HasValue {
			members = append(members, Field{Type: ev.CType, Name: subName, Suffix: ev.Suffix})
			inits = append(inits, ev.Value)
			data = storagePtr(groupLabel, ident+"."+subName, ev.Suffix)
		}
		desc.Record = append(desc.Record, RecordMember{
			SubIndex: s.SubIndex,
			Name:     subName,
			Data:     data,
			Attrs:    AttributeFlags(s.Access, s.PDO, ev.Multibyte),
			Len:      ev.Len,
		})
	}

	if len(members) > 0 {
		group.Fields = append(group.Fields, Field{Name: ident, Sub: members})
		group.Inits = append(group.Inits, "{"+strings.Join(inits, ", ")+"}")
	}
	return len(e.Subs)
}

// storagePtr builds the data pointer expression for a storage field.
func storagePtr(groupLabel, ident, suffix string) string {
	if suffix != "" {
		return fmt.Sprintf("&OD_%s.%s[0]", groupLabel, ident)
	}
	return fmt.Sprintf("&OD_%s.%s", groupLabel, ident)
}

func objectLabel(e *od.ObjectEntry) string {
	return fmt.Sprintf("0x%04X %s", e.Index, e.Name)
}

func subLabel(e *od.ObjectEntry, s *od.SubEntry) string {
	return fmt.Sprintf("0x%04X/%02X %s", e.Index, s.SubIndex, s.Name)
}

// shapeTag returns the dictionary-list object type tag, with the extended
// variant for descriptors wrapped in I/O-interception hooks.
func shapeTag(kind od.ObjectKind, extended bool) string {
	var suffix string
	switch kind {
	case od.KindVar:
		suffix = "VAR"
	case od.KindArray:
		suffix = "ARR"
	case od.KindRecord:
		suffix = "REC"
	}
	if extended {
		return "ODT_E" + suffix
	}
	return "ODT_" + suffix
}

// counterBucket assigns an object to a category counter: well-known
// communication profile objects count under their function, everything else
// under its shape.
func counterBucket(e *od.ObjectEntry) string {
	switch {
	case e.Index == 0x1005:
		return "SYNC"
	case e.Index == 0x1012:
		return "TIME"
	case e.Index == 0x1014:
		return "EM"
	case e.Index == 0x1016:
		return "HB_CONS"
	case e.Index == 0x1017:
		return "HB_PROD"
	case e.Index >= 0x1200 && e.Index <= 0x127F:
		return "SDO_SRV"
	case e.Index >= 0x1280 && e.Index <= 0x12FF:
		return "SDO_CLI"
	case e.Index >= 0x1400 && e.Index <= 0x15FF:
		return "RPDO"
	case e.Index >= 0x1800 && e.Index <= 0x19FF:
		return "TPDO"
	default:
		return e.Kind.String()
	}
}
