package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexdigits = "0123456789abcdef"

// EscapeControl rewrites s so it is safe to print to an interactive
// terminal: control characters and invalid UTF-8 bytes become visible
// "\xHH" escapes, byte by byte. Tabs and newlines pass through. Command
// lines and map paths come straight out of other processes, so nothing we
// print from them may be allowed to act as a terminal control sequence.
func EscapeControl(s string) string {
	var b *strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		bad := r == utf8.RuneError && size == 1
		if !bad && r != '\n' && r != '\t' {
			bad = unicode.IsControl(r)
		}
		if !bad {
			if b != nil {
				b.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		if b == nil {
			// first unsafe byte; copy the clean prefix
			b = &strings.Builder{}
			b.Grow(len(s) + 8)
			b.WriteString(s[:i])
		}
		for j := 0; j < size; j++ {
			b.WriteString(`\x`)
			b.WriteByte(hexdigits[s[i+j]>>4])
			b.WriteByte(hexdigits[s[i+j]&0x0f])
		}
		i += size
	}
	if b == nil {
		return s
	}
	return b.String()
}
