package output

import (
	"encoding/json"
	"io"

	"github.com/Ourobor-OS/system-vold/pkg/model"
)

var (
	colorReset  = ansiString("\033[0m")
	colorRed    = ansiString("\033[31m")
	colorGreen  = ansiString("\033[32m")
	colorYellow = ansiString("\033[33m")
	colorDim    = ansiString("\033[2m")
)

// RenderHolders prints one line per process still referencing mountPoint.
func RenderHolders(w io.Writer, mountPoint string, matches []model.Match, colorEnabled bool) {
	p := NewPrinter(w)

	if len(matches) == 0 {
		if colorEnabled {
			p.Printf("%sNo processes are holding %s%s\n", colorGreen, mountPoint, colorReset)
		} else {
			p.Printf("No processes are holding %s\n", mountPoint)
		}
		return
	}

	if colorEnabled {
		p.Printf("%sProcesses holding %s:%s\n\n", colorYellow, mountPoint, colorReset)
	} else {
		p.Printf("Processes holding %s:\n\n", mountPoint)
	}
	for _, m := range matches {
		if colorEnabled {
			p.Printf("  %s%-7d%s %-12s %s%-18s%s %s  %s(%s)%s\n",
				colorRed, m.PID, colorReset,
				m.User,
				colorYellow, m.Ref.Kind, colorReset,
				m.Name,
				colorDim, m.Ref.Path, colorReset)
		} else {
			p.Printf("  %-7d %-12s %-18s %s  (%s)\n",
				m.PID, m.User, m.Ref.Kind, m.Name, m.Ref.Path)
		}
	}
}

// ToJSON renders the scan result for machine consumption.
func ToJSON(mountPoint string, matches []model.Match) (string, error) {
	if matches == nil {
		matches = []model.Match{}
	}
	out := struct {
		MountPoint string        `json:"mountPoint"`
		Holders    []model.Match `json:"holders"`
	}{MountPoint: mountPoint, Holders: matches}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
