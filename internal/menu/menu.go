package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/oneminch/devmenu/internal/actions"
	"github.com/oneminch/devmenu/internal/output"
	"github.com/oneminch/devmenu/pkg/model"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

// PollFunc runs one full poll cycle (scan, classify, reconcile) and
// returns the resulting snapshot.
type PollFunc func(ctx context.Context) model.Snapshot

type tickMsg time.Time

type snapshotMsg model.Snapshot

type menuModel struct {
	poll     PollFunc
	interval time.Duration

	table          table.Model
	snap           model.Snapshot
	paused         bool
	confirmingStop bool
	stopPID        int
	stopName       string
	message        string
	messageTime    time.Time
	width          int
	height         int
}

func newMenuModel(poll PollFunc, interval time.Duration) menuModel {
	m := menuModel{
		poll:     poll,
		interval: interval,
	}
	m.initTable()
	return m
}

func (m *menuModel) initTable() {
	columns := []table.Column{
		{Title: "Port", Width: 6},
		{Title: "Project", Width: 20},
		{Title: "Version", Width: 10},
		{Title: "PID", Width: 8},
		{Title: "Mem", Width: 8},
		{Title: "CPU", Width: 7},
		{Title: "Command", Width: 44},
	}

	height := m.height - 10
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

func (m menuModel) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.refresh())
}

func (m menuModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m menuModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(m.poll(context.Background()))
	}
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.confirmingStop {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "y", "Y":
				pid := m.stopPID
				m.confirmingStop = false
				m.stopPID = 0
				if err := actions.Stop(pid); err != nil {
					m.setMessage("Stop failed: " + err.Error())
					return m, nil
				}
				m.setMessage(fmt.Sprintf("Stopped pid %d", pid))
				return m, m.refresh()
			case "n", "N", "esc":
				m.confirmingStop = false
				m.stopPID = 0
				return m, nil
			}
		case tickMsg:
			// keep the poll chain alive while the prompt is up
			return m, m.tick()
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// explicit refresh, independent of the ambient interval
			return m, m.refresh()
		case "p":
			m.paused = !m.paused
			return m, nil
		case "o", "enter":
			if e, ok := m.selectedEntry(); ok {
				if err := actions.OpenBrowser(e.Server.Port); err != nil {
					m.setMessage("Open failed: " + err.Error())
				} else {
					m.setMessage(fmt.Sprintf("Opened http://localhost:%d", e.Server.Port))
				}
			}
			return m, nil
		case "g":
			if e, ok := m.selectedEntry(); ok {
				if e.Details.Project == nil || e.Details.Project.RepositoryURL == "" {
					m.setMessage("No repository for " + e.DisplayName())
					return m, nil
				}
				if err := actions.OpenRepo(e.Details.Project.RepositoryURL); err != nil {
					m.setMessage("Open repo failed: " + err.Error())
				} else {
					m.setMessage("Opened repository for " + e.DisplayName())
				}
			}
			return m, nil
		case "x":
			if e, ok := m.selectedEntry(); ok {
				m.confirmingStop = true
				m.stopPID = e.Server.PID
				m.stopName = e.DisplayName()
			}
			return m, nil
		}
	case tickMsg:
		if m.paused {
			return m, m.tick()
		}
		return m, tea.Batch(m.tick(), m.refresh())
	case snapshotMsg:
		m.snap = model.Snapshot(msg)
		m.updateRows()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initTable()
		m.updateRows()
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *menuModel) setMessage(s string) {
	m.message = s
	m.messageTime = time.Now()
}

// selectedEntry maps the cursor row back to a snapshot entry via its pid
// column, so sorting or grouping changes cannot desync the two.
func (m *menuModel) selectedEntry() (model.Entry, bool) {
	row := m.table.SelectedRow()
	if len(row) < 4 {
		return model.Entry{}, false
	}
	pid, err := strconv.Atoi(row[3])
	if err != nil {
		return model.Entry{}, false
	}
	for _, e := range m.snap.Entries {
		if e.Server.PID == pid {
			return e, true
		}
	}
	return model.Entry{}, false
}

func (m *menuModel) updateRows() {
	var rows []table.Row
	for _, group := range m.snap.ByPort() {
		for _, e := range group.Entries {
			version := "-"
			mem := "-"
			cpu := "-"
			if e.Details.Project != nil && e.Details.Project.Version != "" {
				version = e.Details.Project.Version
			}
			if e.Details.MemoryMB != nil {
				mem = fmt.Sprintf("%d MB", *e.Details.MemoryMB)
			}
			if e.Details.CPU != nil {
				cpu = fmt.Sprintf("%.1f%%", *e.Details.CPU)
			}
			rows = append(rows, table.Row{
				strconv.Itoa(group.Port),
				truncate(output.SanitizeTerminal(e.DisplayName()), 20),
				version,
				strconv.Itoa(e.Server.PID),
				mem,
				cpu,
				truncate(output.SanitizeTerminal(e.Server.Command), 44),
			})
		}
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func (m menuModel) View() string {
	var b strings.Builder

	title := "Dev Servers"
	if m.paused {
		title += " (PAUSED)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true).Render(title) + "\n\n")

	if len(m.snap.Entries) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("No dev servers running.") + "\n")
	} else {
		b.WriteString(baseStyle.Render(m.table.View()) + "\n")
	}

	if m.message != "" && time.Since(m.messageTime) < 3*time.Second {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1).
			Render(" "+m.message+" ") + "\n")
	}

	if m.confirmingStop {
		prompt := fmt.Sprintf(" Stop %s (pid %d)? [y/n] ", m.stopName, m.stopPID)
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(0, 1).
			Render(prompt) + "\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	help := "\n  q: quit • r: refresh • o/enter: open browser • g: open repo • x: stop • p: pause"
	b.WriteString(helpStyle.Render(help) + "\n")

	return b.String()
}

// Run drives the interactive menu until the user quits. The ambient poll
// interval keeps the view current; `r` forces an immediate cycle.
func Run(poll PollFunc, interval time.Duration) error {
	p := tea.NewProgram(newMenuModel(poll, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
