package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mash-protocol/odgen/pkg/od"
)

// EncodedValue describes the compiled storage representation of one
// dictionary value.
type EncodedValue struct {
	// CType is the C storage type, e.g. "uint16_t". Empty for values
	// without storage of a known width (DOMAIN, unknown types).
	CType string

	// Suffix is the array-length suffix of the storage field, e.g. "[8]".
	Suffix string

	// Multibyte is set for values wider than one byte that require
	// width-safe access.
	Multibyte bool

	// Len is the value's byte length.
	Len int

	// Value is the C initializer literal. Valid only when HasValue is set;
	// without a literal the value has no persisted storage and its
	// descriptor carries a null data pointer.
	Value string

	// HasValue indicates that Value holds a literal.
	HasValue bool
}

// scalarType describes a directly addressable integer type.
type scalarType struct {
	ctype  string
	size   int
	signed bool
}

var scalarTypes = map[od.DataType]scalarType{
	od.TypeBoolean:    {"bool_t", 1, false},
	od.TypeInteger8:   {"int8_t", 1, true},
	od.TypeInteger16:  {"int16_t", 2, true},
	od.TypeInteger32:  {"int32_t", 4, true},
	od.TypeInteger64:  {"int64_t", 8, true},
	od.TypeUnsigned8:  {"uint8_t", 1, false},
	od.TypeUnsigned16: {"uint16_t", 2, false},
	od.TypeUnsigned32: {"uint32_t", 4, false},
	od.TypeUnsigned64: {"uint64_t", 8, false},
}

// byteArrayType describes an integer width with no addressable C scalar.
// The two 6-byte time types are treated the same way.
type byteArrayType struct {
	size   int
	signed bool
}

var byteArrayTypes = map[od.DataType]byteArrayType{
	od.TypeInteger24:      {3, true},
	od.TypeInteger40:      {5, true},
	od.TypeInteger48:      {6, true},
	od.TypeInteger56:      {7, true},
	od.TypeUnsigned24:     {3, false},
	od.TypeUnsigned40:     {5, false},
	od.TypeUnsigned48:     {6, false},
	od.TypeUnsigned56:     {7, false},
	od.TypeTimeOfDay:      {6, false},
	od.TypeTimeDifference: {6, false},
}

// EncodeValue converts a raw default value into its compiled storage
// representation. hint is the reserved element count for string-family
// types; label prefixes diagnostics, typically "0x1003/01 standardErrorField".
//
// Malformed values never abort generation: they raise one build warning on
// sink and degrade to a representation without a literal.
func EncodeValue(typ od.DataType, value string, hint int, label string, sink WarningSink) EncodedValue {
	value = stripNodeID(strings.TrimSpace(value))

	if sc, ok := scalarTypes[typ]; ok {
		return encodeScalar(sc, value, label, sink)
	}
	if ba, ok := byteArrayTypes[typ]; ok {
		return encodeByteArray(typ, ba, value, label, sink)
	}

	switch typ {
	case od.TypeReal32:
		return encodeReal("float32_t", 4, value, label, sink)
	case od.TypeReal64:
		return encodeReal("float64_t", 8, value, label, sink)
	case od.TypeVisibleString:
		return encodeVisibleString(value, hint)
	case od.TypeOctetString:
		return encodeOctetString(value, hint, label, sink)
	case od.TypeUnicodeString:
		return encodeUnicodeString(value, hint)
	case od.TypeDomain:
		// DOMAIN data lives outside the generated storage.
		return EncodedValue{}
	default:
		warnf(sink, "%s: unknown data type %s", label, typ)
		return EncodedValue{}
	}
}

// nodeIDToken is the placeholder EDS files use for node-relative values,
// e.g. "$NODEID+0x200". The compiler strips the placeholder and encodes the
// base value.
const nodeIDToken = "$NODEID"

func stripNodeID(s string) string {
	if len(s) > len(nodeIDToken) && strings.EqualFold(s[:len(nodeIDToken)], nodeIDToken) {
		rest := strings.TrimSpace(s[len(nodeIDToken):])
		if strings.HasPrefix(rest, "+") {
			return strings.TrimSpace(rest[1:])
		}
	}
	return s
}

// numericParts detects the numeric base: 0x-prefixed is hexadecimal, a
// leading-zero run of octal digits is octal, anything else is decimal.
// The returned digits are ready for strconv with the returned base.
func numericParts(raw string) (digits string, base int) {
	s := raw
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	switch {
	case len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		return sign + s[2:], 16
	case len(s) > 1 && s[0] == '0' && isOctalRun(s):
		return sign + s, 8
	default:
		return sign + s, 10
	}
}

func isOctalRun(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

func encodeScalar(sc scalarType, value, label string, sink WarningSink) EncodedValue {
	ev := EncodedValue{CType: sc.ctype, Len: sc.size, Multibyte: sc.size > 1}
	if value == "" {
		return ev
	}

	digits, base := numericParts(value)
	if sc.signed {
		v, err := strconv.ParseInt(digits, base, sc.size*8)
		if err != nil {
			warnf(sink, "%s: cannot parse %q as %s", label, value, sc.ctype)
			return ev
		}
		ev.Value = strconv.FormatInt(v, 10)
	} else {
		v, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), base, sc.size*8)
		if err != nil {
			warnf(sink, "%s: cannot parse %q as %s", label, value, sc.ctype)
			return ev
		}
		ev.Value = fmt.Sprintf("0x%0*X", sc.size*2, v)
	}
	ev.HasValue = true
	return ev
}

func encodeReal(ctype string, size int, value, label string, sink WarningSink) EncodedValue {
	ev := EncodedValue{CType: ctype, Len: size, Multibyte: true}
	if value == "" {
		return ev
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		warnf(sink, "%s: cannot parse %q as %s", label, value, ctype)
		return ev
	}
	// Floating literals pass through as authored.
	ev.Value = value
	ev.HasValue = true
	return ev
}

// encodeByteArray serializes an odd-width integer little-endian into per-byte
// hex literals of exactly the declared width. Values outside the width's
// range raise an overflow warning and emit no literal at all; truncation is
// never silent.
func encodeByteArray(typ od.DataType, ba byteArrayType, value, label string, sink WarningSink) EncodedValue {
	ev := EncodedValue{
		CType:     "uint8_t",
		Suffix:    fmt.Sprintf("[%d]", ba.size),
		Len:       ba.size,
		Multibyte: true,
	}
	if value == "" {
		return ev
	}

	digits, base := numericParts(value)
	bits := uint(ba.size * 8)
	var v uint64
	if ba.signed {
		sv, err := strconv.ParseInt(digits, base, 64)
		if err != nil {
			warnf(sink, "%s: cannot parse %q as %s", label, value, typ)
			return ev
		}
		if sv >= int64(1)<<(bits-1) || sv < -(int64(1)<<(bits-1)) {
			warnf(sink, "%s: value %s overflows %s", label, value, typ)
			return ev
		}
		v = uint64(sv)
	} else {
		uv, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), base, 64)
		if err != nil {
			warnf(sink, "%s: cannot parse %q as %s", label, value, typ)
			return ev
		}
		if uv>>bits != 0 {
			warnf(sink, "%s: value %s overflows %s", label, value, typ)
			return ev
		}
		v = uv
	}

	parts := make([]string, ba.size)
	for i := 0; i < ba.size; i++ {
		parts[i] = fmt.Sprintf("0x%02X", byte(v>>(8*uint(i))))
	}
	ev.Value = "{" + strings.Join(parts, ", ") + "}"
	ev.HasValue = true
	return ev
}

func encodeVisibleString(value string, hint int) EncodedValue {
	n := len(value)
	if hint > n {
		n = hint
	}
	ev := EncodedValue{CType: "char", Len: n}
	if n == 0 {
		return ev
	}
	ev.Suffix = fmt.Sprintf("[%d]", n)

	parts := make([]string, 0, n)
	for i := 0; i < len(value); i++ {
		parts = append(parts, charLiteral(value[i]))
	}
	for len(parts) < n {
		parts = append(parts, `'\0'`)
	}
	ev.Value = "{" + strings.Join(parts, ", ") + "}"
	ev.HasValue = true
	return ev
}

// charLiteral renders one byte as a C character literal.
func charLiteral(c byte) string {
	switch c {
	case 0:
		return `'\0'`
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	}
	if c >= 0x20 && c < 0x7F {
		return fmt.Sprintf("'%c'", c)
	}
	return fmt.Sprintf(`'\x%02X'`, c)
}

func encodeOctetString(value string, hint int, label string, sink WarningSink) EncodedValue {
	tokens := strings.Fields(value)
	n := len(tokens)
	if hint > n {
		n = hint
	}
	ev := EncodedValue{CType: "uint8_t", Len: n}
	if n == 0 {
		return ev
	}
	ev.Suffix = fmt.Sprintf("[%d]", n)

	parts := make([]string, 0, n)
	for _, tok := range tokens {
		digits, base := numericParts(tok)
		b, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), base, 8)
		if err != nil {
			warnf(sink, "%s: cannot parse %q as octet", label, tok)
			return ev
		}
		parts = append(parts, fmt.Sprintf("0x%02X", b))
	}
	for len(parts) < n {
		parts = append(parts, "0x00")
	}
	ev.Value = "{" + strings.Join(parts, ", ") + "}"
	ev.HasValue = true
	return ev
}

func encodeUnicodeString(value string, hint int) EncodedValue {
	units := utf16.Encode([]rune(value))
	for len(units) < hint {
		units = append(units, 0)
	}
	n := len(units)
	// Byte length counts two per UTF-16 code unit.
	ev := EncodedValue{CType: "uint16_t", Len: 2 * n, Multibyte: true}
	if n == 0 {
		return ev
	}
	ev.Suffix = fmt.Sprintf("[%d]", n)

	parts := make([]string, n)
	for i, u := range units {
		parts[i] = fmt.Sprintf("0x%04X", u)
	}
	ev.Value = "{" + strings.Join(parts, ", ") + "}"
	ev.HasValue = true
	return ev
}
