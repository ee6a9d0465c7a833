//go:build linux

package mountpoint

import "testing"

func TestMounted(t *testing.T) {
	if !Mounted("/") {
		t.Error("/ should always be a mount point")
	}
	if Mounted(t.TempDir()) {
		t.Error("a fresh temp dir should not be a mount point")
	}
	if Mounted("/definitely/not/a/real/path") {
		t.Error("a missing path should read as not mounted")
	}
}
