package proc

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Cmdline returns a printable command line for pid, read from root
// (normally /proc), capped at PathMax-1 bytes like every other procfs
// read here. The kernel separates argv with NUL bytes. On any failure
// the placeholder "???" is returned so diagnostics always carry a name.
func Cmdline(root string, pid int) string {
	f, err := os.Open(filepath.Join(root, strconv.Itoa(pid), "cmdline"))
	if err != nil {
		return "???"
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, PathMax-1))
	if err != nil {
		return "???"
	}
	cmd := strings.TrimSpace(strings.ReplaceAll(string(raw), "\x00", " "))
	if cmd == "" {
		return "???"
	}
	return cmd
}
