package model

// Action is the policy applied to every process a scan finds holding a
// reference into the mount point.
type Action int

const (
	// Warn logs the matching processes and touches nothing.
	Warn Action = iota
	// RequestTerminate sends SIGTERM to each matching process.
	RequestTerminate
	// ForceTerminate sends SIGKILL to each matching process.
	ForceTerminate
)
