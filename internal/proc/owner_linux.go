//go:build linux

package proc

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"
)

// Owner returns the username owning pid's procfs entry, the bare uid when
// it has no passwd entry, or "unknown" when the process is gone.
func Owner(root string, pid int) string {
	fi, err := os.Stat(filepath.Join(root, strconv.Itoa(pid)))
	if err != nil {
		return "unknown"
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return "unknown"
	}
	uid := strconv.Itoa(int(st.Uid))
	if u, err := user.LookupId(uid); err == nil {
		return u.Username
	}
	return uid
}
