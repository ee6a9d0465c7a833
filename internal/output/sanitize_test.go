package output

import (
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestEscapeControl(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"", ""},
		{"a\tb\nc", "a\tb\nc"},
		{"hi\x1b[31mred", `hi\x1b[31mred`},
		{"nul:\x00", `nul:\x00`},
		{"bad:\xff", `bad:\xff`},
		{"bell\afeed", `bell\x07feed`},
		{"\x85nel", `\x85nel`},
		{"\u0085nel", `\xc2\x85nel`},
		{"ünïcode ok", "ünïcode ok"},
	}
	for _, tt := range tests {
		if got := EscapeControl(tt.in); got != tt.want {
			t.Errorf("EscapeControl(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func FuzzEscapeControl(f *testing.F) {
	f.Add("plain")
	f.Add("\x1b[31mred")
	f.Add("nul:\x00")
	f.Add("bad:\xff")
	f.Add("tab\tand\nnewline")
	f.Add("\xc2\x85")

	f.Fuzz(func(t *testing.T, s string) {
		got := EscapeControl(s)

		for i := 0; i < len(got); {
			r, size := utf8.DecodeRuneInString(got[i:])
			if r == utf8.RuneError && size == 1 {
				t.Fatalf("EscapeControl(%q) left invalid byte 0x%02x at %d", s, got[i], i)
			}
			if unicode.IsControl(r) && r != '\n' && r != '\t' {
				t.Fatalf("EscapeControl(%q) left control %#x at %d", s, r, i)
			}
			i += size
		}

		// escaping is idempotent: safe output stays untouched
		if again := EscapeControl(got); again != got {
			t.Fatalf("EscapeControl not idempotent: %q -> %q -> %q", s, got, again)
		}
	})
}
