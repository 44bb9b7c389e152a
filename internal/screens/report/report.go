package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
	"github.com/saipranav0521/student-attendance-analyzer/internal/router"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/components"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/layout"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/theme"
)

// ReportScreen displays an analysis result.
type ReportScreen struct {
	result *attendance.Result
}

var _ router.Screen = (*ReportScreen)(nil)
var _ router.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for the given result.
func New(result *attendance.Result) *ReportScreen {
	return &ReportScreen{result: result}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Edit subjects"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Back to the form with its rows intact.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder

	safe := res.Status == attendance.StatusSafe
	badge := theme.StatusStyle(safe).Render(res.Status.DisplayName())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
	b.WriteString("\n\n")

	overall := fmt.Sprintf("Overall attendance: %.2f%%", res.OverallPercentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(overall))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d classes attended", res.TotalAttended, res.TotalHeld)))
	b.WriteString("\n\n")

	bar := components.NewBar(res.OverallPercentage, safe, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	action := fmt.Sprintf("%d %s", res.ActionNumber, res.ActionLabel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.StatusStyle(safe).Render(action)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Subjects")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, sub := range res.Subjects {
		line := fmt.Sprintf("  %-20s %4d/%-4d  %6.2f%%",
			sub.Name, sub.Attended, sub.Held, sub.Percentage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
