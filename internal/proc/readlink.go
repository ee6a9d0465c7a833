// Package proc reads per-process metadata out of a procfs tree.
package proc

import "os"

// PathMax bounds every path this package hands back, matching the kernel's
// limit. A target at or over the bound is treated as unreadable rather
// than truncated into something that could falsely match.
const PathMax = 4096

// ReadSymlink returns the target of path if and only if path currently
// exists and is a symlink. Anything else (gone, not a link, unreadable,
// empty or oversized target) reports ok=false. A process exiting between
// discovery and read lands here constantly and is not an error.
func ReadSymlink(path string) (string, bool) {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return "", false
	}
	target, err := os.Readlink(path)
	if err != nil || target == "" || len(target) >= PathMax {
		return "", false
	}
	return target, true
}
