//go:build linux

// Package tui is an interactive browser for the processes currently
// holding a mount point, with a confirm-gated kill flow.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"

	"github.com/Ourobor-OS/system-vold/internal/output"
	"github.com/Ourobor-OS/system-vold/internal/scanner"
	"github.com/Ourobor-OS/system-vold/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type tickMsg time.Time

type matchesMsg []model.Match

type tuiModel struct {
	mountPoint  string
	scan        *scanner.Scanner
	table       table.Model
	matches     []model.Match
	paused      bool
	confirming  bool
	killPID     int
	killSig     unix.Signal
	message     string
	messageTime time.Time
	err         error
	width       int
	height      int
}

// Run blocks until the user quits.
func Run(mountPoint string) error {
	p := tea.NewProgram(initialModel(mountPoint), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func initialModel(mountPoint string) tuiModel {
	m := tuiModel{
		mountPoint: mountPoint,
		// the table shows every match already; keep the scan quiet
		scan: &scanner.Scanner{Log: scanner.NopLogger{}},
	}
	m.initTable()
	return m
}

func (m *tuiModel) initTable() {
	columns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "User", Width: 12},
		{Title: "Reference", Width: 18},
		{Title: "Path", Width: 38},
		{Title: "Process", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	m.table = t
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.refreshData())
}

func tick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) refreshData() tea.Cmd {
	if m.paused {
		return nil
	}
	scan := m.scan
	mount := m.mountPoint
	return func() tea.Msg {
		return matchesMsg(scan.FindHolders(mount))
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.confirming {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "y", "Y":
				_ = unix.Kill(m.killPID, m.killSig)
				m.message = fmt.Sprintf("sent %s to pid %d", sigName(m.killSig), m.killPID)
				m.messageTime = time.Now()
				m.confirming = false
				m.killPID = 0
				return m, m.refreshData()
			case "n", "N", "esc":
				m.confirming = false
				m.killPID = 0
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
			return m, nil
		case "r":
			return m, m.refreshData()
		case "x", "X":
			selected := m.table.SelectedRow()
			if len(selected) > 0 {
				pid, _ := strconv.Atoi(selected[0])
				if pid > 0 {
					m.confirming = true
					m.killPID = pid
					m.killSig = unix.SIGTERM
					if msg.String() == "X" {
						m.killSig = unix.SIGKILL
					}
				}
			}
			return m, nil
		}
	case tickMsg:
		return m, tea.Batch(tick(), m.refreshData())
	case matchesMsg:
		m.matches = msg
		m.updateRows()
	case error:
		m.err = msg
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 14 {
			m.table.SetHeight(m.height - 8)
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *tuiModel) updateRows() {
	rows := make([]table.Row, 0, len(m.matches))
	for _, match := range m.matches {
		rows = append(rows, table.Row{
			strconv.Itoa(match.PID),
			output.EscapeControl(match.User),
			match.Ref.Kind.String(),
			output.EscapeControl(match.Ref.Path),
			output.EscapeControl(match.Name),
		})
	}
	m.table.SetRows(rows)
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Processes holding "+output.EscapeControl(m.mountPoint)) + "\n\n")
	b.WriteString(baseStyle.Render(m.table.View()) + "\n")

	switch {
	case m.confirming:
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Send %s to pid %d? (y/N)", sigName(m.killSig), m.killPID)) + "\n")
	default:
		status := ""
		if m.paused {
			status += "  [paused]"
		}
		if m.message != "" && time.Since(m.messageTime) < 4*time.Second {
			status += "  " + m.message
		}
		b.WriteString(helpStyle.Render("q quit · r rescan · p pause · x SIGTERM · X SIGKILL"+status) + "\n")
	}
	if m.err != nil {
		b.WriteString(helpStyle.Render("error: "+output.EscapeControl(m.err.Error())) + "\n")
	}
	return b.String()
}

func sigName(sig unix.Signal) string {
	if sig == unix.SIGKILL {
		return "SIGKILL"
	}
	return "SIGTERM"
}
