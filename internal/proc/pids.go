package proc

import (
	"os"
	"strconv"
)

// ListPIDs returns the numeric directory entries of root (normally /proc),
// read fresh on every call. Entries whose names do not parse as a
// non-negative integer are not processes (self, sys, uptime, ...) and are
// skipped. The result is a snapshot: any pid in it may be gone, or reused,
// by the time it is inspected.
func ListPIDs(root string) []int {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var pids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid < 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids
}
