package mountpoint

import "testing"

func TestWithin(t *testing.T) {
	tests := []struct {
		path  string
		mount string
		want  bool
	}{
		{"/mnt/sdcard/file.txt", "/mnt/sdcard", true},
		{"/mnt/sdcard", "/mnt/sdcard", true},
		{"/mnt/sdcard/", "/mnt/sdcard", true},
		{"/mnt/sdcard/a/b/c", "/mnt/sdcard", true},

		// string prefix is not a path prefix
		{"/mnt/sdcard2/file.txt", "/mnt/sdcard", false},
		{"/mnt/sdcardX", "/mnt/sdcard", false},
		{"/mnt/sdcardX", "/mnt/sdcard/", false},
		{"/mnt/sd", "/mnt/sdcard", false},

		// trailing separator on the mount point
		{"/mnt/sdcard/file.txt", "/mnt/sdcard/", true},
		{"/mnt/sdcard", "/mnt/sdcard/", false},

		// the root never matches
		{"/anything", "/", false},
		{"/", "/", false},
		{"/anything", "", false},

		// bytewise, case sensitive
		{"/MNT/sdcard/file", "/mnt/sdcard", false},
		{"/mnt/other/../sdcard/f", "/mnt/sdcard", false},
	}
	for _, tt := range tests {
		if got := Within(tt.path, tt.mount); got != tt.want {
			t.Errorf("Within(%q, %q) = %v, want %v", tt.path, tt.mount, got, tt.want)
		}
	}
}
