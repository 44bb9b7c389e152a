package form

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
	"github.com/saipranav0521/student-attendance-analyzer/internal/router"
	"github.com/saipranav0521/student-attendance-analyzer/internal/screens/report"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/components"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/layout"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/theme"
)

const (
	fieldsPerRow = 3
	maxRows      = 12

	nameCharLimit  = 30
	countCharLimit = 4
)

// row is one subject entry line: name, classes held, classes attended.
type row struct {
	inputs [fieldsPerRow]components.TextInput
}

func newRow() row {
	return row{
		inputs: [fieldsPerRow]components.TextInput{
			components.NewTextInput("Subject", false, nameCharLimit),
			components.NewTextInput("Held", true, countCharLimit),
			components.NewTextInput("Attended", true, countCharLimit),
		},
	}
}

// FormScreen collects subject rows and hands them to the analyzer. Rows can
// be added and removed freely; fully blank rows are ignored by the analyzer,
// so an unused trailing row never blocks a result.
type FormScreen struct {
	rows    []row
	button  components.Button
	focus   int // rowIdx*fieldsPerRow + field; buttonIndex() selects the button
	errText string
}

var _ router.Screen = (*FormScreen)(nil)
var _ router.KeyHintProvider = (*FormScreen)(nil)

// New creates a FormScreen with a single empty row.
func New() *FormScreen {
	f := &FormScreen{
		rows: []row{newRow()},
	}
	f.button = components.NewButton("Analyze", false, f.analyze)
	return f
}

func (f *FormScreen) Title() string {
	return "Subjects"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+N", Description: "Add subject"},
		{Key: "Ctrl+D", Description: "Remove subject"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FormScreen) Init() tea.Cmd {
	return f.setFocus(0)
}

func (f *FormScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return f, f.setFocus(f.focus + 1)
	case "shift+tab":
		return f, f.setFocus(f.focus - 1)
	case "ctrl+n":
		return f, f.addRow()
	case "ctrl+d":
		return f, f.removeRow()
	case "enter":
		if f.focus == f.buttonIndex() {
			var cmd tea.Cmd
			f.button, cmd = f.button.Update(msg)
			return f, cmd
		}
		return f, f.setFocus(f.focus + 1)
	}

	return f, f.updateFocused(msg)
}

// buttonIndex is the focus index of the analyze button, one past the last
// input field.
func (f *FormScreen) buttonIndex() int {
	return len(f.rows) * fieldsPerRow
}

// setFocus moves focus to idx, wrapping around past the button.
func (f *FormScreen) setFocus(idx int) tea.Cmd {
	total := f.buttonIndex() + 1
	idx = ((idx % total) + total) % total
	f.focus = idx

	var cmd tea.Cmd
	for r := range f.rows {
		for c := range f.rows[r].inputs {
			if r*fieldsPerRow+c == idx {
				cmd = f.rows[r].inputs[c].Focus()
			} else {
				f.rows[r].inputs[c].Blur()
			}
		}
	}
	f.button.Active = idx == f.buttonIndex()
	return cmd
}

func (f *FormScreen) addRow() tea.Cmd {
	if len(f.rows) >= maxRows {
		return nil
	}
	f.rows = append(f.rows, newRow())
	// Land on the new row's name field.
	return f.setFocus((len(f.rows) - 1) * fieldsPerRow)
}

func (f *FormScreen) removeRow() tea.Cmd {
	if len(f.rows) <= 1 {
		return nil
	}
	f.rows = f.rows[:len(f.rows)-1]
	if f.focus > f.buttonIndex() {
		f.focus = f.buttonIndex()
	}
	return f.setFocus(f.focus)
}

// updateFocused forwards a message to the focused input only.
func (f *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus >= f.buttonIndex() {
		return nil
	}
	r, c := f.focus/fieldsPerRow, f.focus%fieldsPerRow

	var cmd tea.Cmd
	f.rows[r].inputs[c], cmd = f.rows[r].inputs[c].Update(msg)
	return cmd
}

// entries returns the raw form values untouched; parsing, blank-row
// filtering, and validation all belong to the attendance package.
func (f *FormScreen) entries() []attendance.RawEntry {
	entries := make([]attendance.RawEntry, 0, len(f.rows))
	for _, r := range f.rows {
		entries = append(entries, attendance.RawEntry{
			Name:     r.inputs[0].Value(),
			Held:     r.inputs[1].Value(),
			Attended: r.inputs[2].Value(),
		})
	}
	return entries
}

func (f *FormScreen) analyze() tea.Cmd {
	res, err := attendance.Analyze(f.entries())
	if err != nil {
		f.errText = err.Error()
		return nil
	}
	f.errText = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: report.New(res)}
	}
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("How is your attendance holding up?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Enter classes held and attended per subject (%.0f%% needed)", attendance.Threshold)))
	b.WriteString("\n\n")

	for i, r := range f.rows {
		line := fmt.Sprintf("%2d.  %s  %s  %s",
			i+1,
			r.inputs[0].View(),
			r.inputs[1].View(),
			r.inputs[2].View(),
		)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.button.View())
	b.WriteString("\n")

	if f.errText != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render("✗ " + f.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("blank rows are skipped"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
