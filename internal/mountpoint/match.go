// Package mountpoint decides whether observed paths fall under a mount point.
package mountpoint

import "strings"

// Within reports whether path lies at or under mountPoint.
//
// The comparison is bytewise: no cleaning, no case folding, no symlink
// resolution. When mountPoint does not end in a separator the match must
// land on a component boundary, so "/mnt/sdcard" does not claim
// "/mnt/sdcard2/file". A mountPoint of length <= 1 (the filesystem root)
// never matches anything; every process holds something under /.
func Within(path, mountPoint string) bool {
	n := len(mountPoint)
	if n <= 1 || !strings.HasPrefix(path, mountPoint) {
		return false
	}
	if mountPoint[n-1] == '/' {
		return true
	}
	return len(path) == n || path[n] == '/'
}
