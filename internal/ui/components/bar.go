package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/theme"
)

// Bar displays a horizontal attendance bar filled to a percentage (0-100)
// and colored by status.
type Bar struct {
	Percent float64
	Safe    bool
	Width   int
}

// NewBar creates a new attendance bar.
func NewBar(percent float64, safe bool, width int) Bar {
	return Bar{
		Percent: percent,
		Safe:    safe,
		Width:   width,
	}
}

// View renders the bar.
func (b Bar) View() string {
	barWidth := b.Width - 8 // room for the trailing percentage
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.Success
	if !b.Safe {
		fill = theme.Error
	}

	bar := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", empty))

	return bar + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %.0f%%", b.Percent))
}
