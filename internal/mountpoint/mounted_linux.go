//go:build linux

package mountpoint

import "github.com/moby/sys/mountinfo"

// Mounted reports whether path is currently a mount point. Any failure to
// read the mount table (path gone, procfs unavailable) reads as not mounted.
func Mounted(path string) bool {
	ok, err := mountinfo.Mounted(path)
	return err == nil && ok
}
