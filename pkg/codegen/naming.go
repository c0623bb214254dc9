package codegen

import (
	"regexp"
	"strings"
)

// nonWord matches runs of characters that cannot appear in a C identifier.
var nonWord = regexp.MustCompile(`\W+`)

// SymbolName converts a free-form parameter name into a camelCase C
// identifier: "Device Type" -> "deviceType", "COB-ID SYNC" -> "COB_ID_SYNC".
// An empty name yields an empty identifier; no collision detection or
// reserved-word escaping is performed.
func SymbolName(name string) string {
	var b strings.Builder
	for _, tok := range nonWord.Split(name, -1) {
		if tok == "" {
			continue
		}
		if len(tok) > 1 {
			tok = strings.ToUpper(tok[:1]) + tok[1:]
		}
		// Separate two adjacent uppercase letters so acronym boundaries
		// stay readable: "PDO" + "COB" -> "PDO_COB", not "PDOCOB".
		if b.Len() > 0 {
			prev := b.String()[b.Len()-1]
			if isUpper(prev) && isUpper(tok[0]) {
				b.WriteByte('_')
			}
		}
		b.WriteString(tok)
	}

	s := b.String()
	if len(s) == 1 {
		return strings.ToLower(s)
	}
	if len(s) > 1 && isLower(s[1]) {
		s = strings.ToLower(s[:1]) + s[1:]
	}
	return s
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
