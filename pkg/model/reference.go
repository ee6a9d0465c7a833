package model

import "strconv"

// RefKind identifies how a process references a path under a mount point.
type RefKind int

const (
	RefOpenFile RefKind = iota
	RefFileMap
	RefWorkingDir
	RefRoot
	RefExe
)

func (k RefKind) String() string {
	switch k {
	case RefOpenFile:
		return "open file"
	case RefFileMap:
		return "file map"
	case RefWorkingDir:
		return "working directory"
	case RefRoot:
		return "chroot"
	case RefExe:
		return "executable path"
	}
	return "unknown"
}

func (k RefKind) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// Reference is one observed association between a process and a path under
// the mount point being scanned. Only valid for the scan that produced it;
// the descriptor may already be closed by the time anyone reads this.
type Reference struct {
	Kind RefKind `json:"kind"`
	Path string  `json:"path"`
}

// Match records one process found holding a reference into the mount point.
// A process appears at most once per scan even when it holds several
// matching references; Ref is the first one found in check order.
type Match struct {
	PID  int       `json:"pid"`
	User string    `json:"user"`
	Name string    `json:"name"`
	Ref  Reference `json:"ref"`
}
