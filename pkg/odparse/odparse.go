// Package odparse loads Object Dictionary definitions from YAML files.
//
// A dictionary file lists objects by index:
//
//	name: demo device
//	objects:
//	  - index: 0x1000
//	    kind: VAR
//	    name: Device Type
//	    type: UNSIGNED32
//	    access: ro
//	    default: "0x00000191"
//	  - index: 0x1003
//	    kind: ARRAY
//	    name: Pre-defined Error Field
//	    storage: RAM
//	    subs:
//	      - sub: 0
//	        name: Number of Errors
//	        type: UNSIGNED8
//	        access: rw
//	        default: "0"
//
// Default values are strings so that base prefixes and $NODEID placeholders
// survive loading verbatim. Omitted kind, access and pdo fields fall back to
// VAR, rw and no.
package odparse

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/odgen/pkg/od"
)

// RawDictionary represents a dictionary file as loaded from YAML.
type RawDictionary struct {
	Name    string      `yaml:"name"`
	Objects []RawObject `yaml:"objects"`
}

// RawObject represents one object definition.
type RawObject struct {
	Index       uint16   `yaml:"index"`
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Disabled    bool     `yaml:"disabled"`
	Storage     string   `yaml:"storage"`
	Type        string   `yaml:"type"`
	Access      string   `yaml:"access"`
	PDO         string   `yaml:"pdo"`
	Default     string   `yaml:"default"`
	IOExtension bool     `yaml:"ioExtension"`
	FlagsPDO    bool     `yaml:"flagsPDO"`
	Subs        []RawSub `yaml:"subs"`
}

// RawSub represents one sub-entry definition.
type RawSub struct {
	Sub     uint8  `yaml:"sub"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Access  string `yaml:"access"`
	PDO     string `yaml:"pdo"`
	Default string `yaml:"default"`
}

// ParseDictionary parses a dictionary from YAML bytes, validates index
// uniqueness and returns the objects sorted ascending by index.
func ParseDictionary(data []byte) (*od.Dictionary, error) {
	var raw RawDictionary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	return buildDictionary(&raw)
}

// LoadDictionary loads and parses a dictionary from a file.
func LoadDictionary(path string) (*od.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDictionary(data)
}

func buildDictionary(raw *RawDictionary) (*od.Dictionary, error) {
	dict := &od.Dictionary{Name: raw.Name}
	seen := make(map[uint16]bool, len(raw.Objects))

	for i := range raw.Objects {
		ro := &raw.Objects[i]
		if seen[ro.Index] {
			return nil, fmt.Errorf("object 0x%04X: duplicate index", ro.Index)
		}
		seen[ro.Index] = true

		obj, err := buildObject(ro)
		if err != nil {
			return nil, fmt.Errorf("object 0x%04X: %w", ro.Index, err)
		}
		dict.Objects = append(dict.Objects, obj)
	}

	sort.Slice(dict.Objects, func(i, j int) bool {
		return dict.Objects[i].Index < dict.Objects[j].Index
	})
	return dict, nil
}

func buildObject(ro *RawObject) (od.ObjectEntry, error) {
	obj := od.ObjectEntry{
		Index:        ro.Index,
		Kind:         od.KindVar,
		Disabled:     ro.Disabled,
		StorageGroup: ro.Storage,
		Name:         ro.Name,
		Default:      ro.Default,
		IOExtension:  ro.IOExtension,
		FlagsPDO:     ro.FlagsPDO,
	}

	var err error
	if ro.Kind != "" {
		if obj.Kind, err = od.ParseObjectKind(ro.Kind); err != nil {
			return obj, err
		}
	}
	if ro.Type != "" {
		if obj.Type, err = od.ParseDataType(ro.Type); err != nil {
			return obj, err
		}
	}
	if obj.Access, obj.PDO, err = parseAccess(ro.Access, ro.PDO); err != nil {
		return obj, err
	}

	for j := range ro.Subs {
		rs := &ro.Subs[j]
		sub, err := buildSub(rs)
		if err != nil {
			return obj, fmt.Errorf("sub %d: %w", rs.Sub, err)
		}
		obj.Subs = append(obj.Subs, sub)
	}
	return obj, nil
}

func buildSub(rs *RawSub) (od.SubEntry, error) {
	sub := od.SubEntry{
		SubIndex: rs.Sub,
		Name:     rs.Name,
		Default:  rs.Default,
	}

	var err error
	if rs.Type != "" {
		if sub.Type, err = od.ParseDataType(rs.Type); err != nil {
			return sub, err
		}
	}
	sub.Access, sub.PDO, err = parseAccess(rs.Access, rs.PDO)
	return sub, err
}

// parseAccess resolves the access and PDO mnemonics, applying the rw/no
// defaults for omitted fields.
func parseAccess(access, pdo string) (od.AccessType, od.PDOMapping, error) {
	a := od.AccessRW
	p := od.PDONo

	var err error
	if access != "" {
		if a, err = od.ParseAccessType(access); err != nil {
			return a, p, err
		}
	}
	if pdo != "" {
		if p, err = od.ParsePDOMapping(pdo); err != nil {
			return a, p, err
		}
	}
	return a, p, nil
}
