//go:build linux

// Package scanner hunts down processes holding references into a mount
// point (open descriptors, file maps, working directory, chroot root or
// executable image) so the caller can get it unmounted.
package scanner

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"

	"github.com/Ourobor-OS/system-vold/internal/mountpoint"
	"github.com/Ourobor-OS/system-vold/internal/proc"
	"github.com/Ourobor-OS/system-vold/pkg/model"
)

// Logger is the severity-tagged sink scan diagnostics go to.
type Logger interface {
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

type klogSink struct{}

func (klogSink) Warningf(format string, args ...any) { klog.Warningf(format, args...) }
func (klogSink) Errorf(format string, args ...any)   { klog.Errorf(format, args...) }

// NopLogger drops all diagnostics. Front ends that render matches
// themselves use it to keep the scan quiet.
type NopLogger struct{}

func (NopLogger) Warningf(string, ...any) {}
func (NopLogger) Errorf(string, ...any)   {}

// Scanner walks the process table looking for processes that reference a
// mount point. The zero value scans /proc, logs through klog and delivers
// real signals; tests swap in a fake tree, a recording sink and a stub
// kill. The process table is live kernel state, so every read may race a
// process exiting; all such races degrade to "nothing found".
type Scanner struct {
	// ProcRoot is the procfs tree to scan. Defaults to /proc.
	ProcRoot string

	// Log receives per-match diagnostics. Defaults to klog.
	Log Logger

	// Kill delivers a signal to a pid. Defaults to unix.Kill.
	Kill func(pid int, sig unix.Signal) error
}

func (s *Scanner) procRoot() string {
	if s.ProcRoot != "" {
		return s.ProcRoot
	}
	return "/proc"
}

func (s *Scanner) log() Logger {
	if s.Log != nil {
		return s.Log
	}
	return klogSink{}
}

func (s *Scanner) kill(pid int, sig unix.Signal) error {
	if s.Kill != nil {
		return s.Kill(pid, sig)
	}
	return unix.Kill(pid, sig)
}

func (s *Scanner) pidDir(pid int) string {
	return filepath.Join(s.procRoot(), strconv.Itoa(pid))
}

func (s *Scanner) name(pid int) string {
	return proc.Cmdline(s.procRoot(), pid)
}

// checkFDs reports the first open descriptor of pid that resolves under
// mountPoint. Every entry under fd/ is a symlink to whatever the
// descriptor refers to; anonymous ones (sockets, pipes) never look like
// paths and fall through the matcher.
func (s *Scanner) checkFDs(pid int, mountPoint string) (model.Reference, bool) {
	fdDir := filepath.Join(s.pidDir(pid), "fd")
	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return model.Reference{}, false
	}
	for _, e := range entries {
		target, ok := proc.ReadSymlink(filepath.Join(fdDir, e.Name()))
		if !ok || !mountpoint.Within(target, mountPoint) {
			continue
		}
		s.log().Errorf("process %s (%d) has open file %s", s.name(pid), pid, target)
		return model.Reference{Kind: model.RefOpenFile, Path: target}, true
	}
	return model.Reference{}, false
}

// checkMaps reports the first file mapped by pid that lies under
// mountPoint. The path column of a maps record is everything from the
// first '/' to end of line. A record longer than the buffer is skipped
// whole (a truncated path must never reach the matcher) and the scan
// keeps going with the records after it.
func (s *Scanner) checkMaps(pid int, mountPoint string) (model.Reference, bool) {
	f, err := os.Open(filepath.Join(s.pidDir(pid), "maps"))
	if err != nil {
		return model.Reference{}, false
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, proc.PathMax+128)
	for {
		line, isPrefix, err := r.ReadLine()
		if err != nil {
			return model.Reference{}, false
		}
		if isPrefix {
			// drain the rest of the over-long record
			for isPrefix {
				if _, isPrefix, err = r.ReadLine(); err != nil {
					return model.Reference{}, false
				}
			}
			continue
		}
		i := bytes.IndexByte(line, '/')
		if i < 0 {
			continue
		}
		path := string(line[i:])
		if !mountpoint.Within(path, mountPoint) {
			continue
		}
		s.log().Errorf("process %s (%d) has open file map for %s", s.name(pid), pid, path)
		return model.Reference{Kind: model.RefFileMap, Path: path}, true
	}
}

// checkLink matches one of the cwd/root/exe links of pid.
func (s *Scanner) checkLink(pid int, mountPoint, entry string, kind model.RefKind) (model.Reference, bool) {
	target, ok := proc.ReadSymlink(filepath.Join(s.pidDir(pid), entry))
	if !ok || !mountpoint.Within(target, mountPoint) {
		return model.Reference{}, false
	}
	s.log().Warningf("process %s (%d) has %s in %s", s.name(pid), pid, kind, mountPoint)
	return model.Reference{Kind: kind, Path: target}, true
}

// HoldsReference reports whether pid currently references a path under
// mountPoint, checking open descriptors, then file maps, then the cwd,
// root and exe links. The checks short-circuit, so a process is reported
// at most once per scan no matter how many references it holds. A pid
// that exited since enumeration reads as holding nothing.
func (s *Scanner) HoldsReference(pid int, mountPoint string) (model.Reference, bool) {
	if ref, ok := s.checkFDs(pid, mountPoint); ok {
		return ref, true
	}
	if ref, ok := s.checkMaps(pid, mountPoint); ok {
		return ref, true
	}
	links := []struct {
		entry string
		kind  model.RefKind
	}{
		{"cwd", model.RefWorkingDir},
		{"root", model.RefRoot},
		{"exe", model.RefExe},
	}
	for _, l := range links {
		if ref, ok := s.checkLink(pid, mountPoint, l.entry, l.kind); ok {
			return ref, true
		}
	}
	return model.Reference{}, false
}

// FindHolders scans every live process and returns the ones referencing
// mountPoint, without signaling anything.
func (s *Scanner) FindHolders(mountPoint string) []model.Match {
	var matches []model.Match
	for _, pid := range proc.ListPIDs(s.procRoot()) {
		ref, ok := s.HoldsReference(pid, mountPoint)
		if !ok {
			continue
		}
		matches = append(matches, model.Match{
			PID:  pid,
			User: proc.Owner(s.procRoot(), pid),
			Name: s.name(pid),
			Ref:  ref,
		})
	}
	return matches
}

func (s *Scanner) act(pid int, action model.Action) {
	switch action {
	case model.RequestTerminate:
		s.log().Warningf("sending SIGTERM to process %d", pid)
		_ = s.kill(pid, unix.SIGTERM)
	case model.ForceTerminate:
		s.log().Errorf("sending SIGKILL to process %d", pid)
		_ = s.kill(pid, unix.SIGKILL)
	}
}

// Apply delivers the signal implied by action to an already-collected set
// of matches, for front ends that list holders before signaling them.
// Warn delivers nothing.
func (s *Scanner) Apply(matches []model.Match, action model.Action) {
	for _, m := range matches {
		s.act(m.PID, action)
	}
}

// KillAll makes one pass over the process table and applies action to
// every process holding a reference into mountPoint: Warn logs only,
// RequestTerminate sends SIGTERM, ForceTerminate sends SIGKILL. Signal
// delivery is best effort: a process that already exited, or one we may
// not signal, is skipped without escalation, and the pass always runs to
// completion. There is no wait and no re-scan.
func (s *Scanner) KillAll(mountPoint string, action model.Action) {
	for _, pid := range proc.ListPIDs(s.procRoot()) {
		if _, ok := s.HoldsReference(pid, mountPoint); ok {
			s.act(pid, action)
		}
	}
}

// KillProcessesWithOpenFiles hunts down processes with files open under
// mountPoint and applies action to each. Nothing propagates out: the scan
// runs to completion unconditionally.
func KillProcessesWithOpenFiles(mountPoint string, action model.Action) {
	(&Scanner{}).KillAll(mountPoint, action)
}
