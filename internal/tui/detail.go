package tui

import (
	"fmt"
	"strings"

	"steeper/internal/brew"

	"github.com/charmbracelet/lipgloss"
)

// renderSessionDetail renders the full record of the selected steep as
// a modal over the history view: the exact save time, both duration
// forms and the complete notes, which the list row truncates.
func (m Model) renderSessionDetail() string {
	s := *m.detail

	wrap := m.width - 16
	if wrap > 54 {
		wrap = 54
	}
	if wrap < 24 {
		wrap = 24
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Steep detail"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render(padRight("saved", 8)))
	b.WriteString(s.CreatedAt.Local().Format("Mon Jan 2 2006 15:04"))
	b.WriteString(m.styles.Muted.Render("  " + formatTimeAgo(s.CreatedAt)))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render(padRight("length", 8)))
	b.WriteString(brew.Format(s.Duration))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %.2f min", s.Minutes())))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("notes"))
	b.WriteString("\n")
	if s.Notes == "" {
		b.WriteString(m.styles.Muted.Render("(none)"))
	} else {
		b.WriteString(m.styles.Notes.Render(wrapText(s.Notes, wrap)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("esc:close"))

	box := m.styles.Dialog.Render(b.String())

	contentHeight := m.height - 6
	if contentHeight < 9 {
		contentHeight = 9
	}
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, box)
}

// wrapText wraps text at word boundaries to fit within width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}

		lineLen := 0
		for _, word := range strings.Fields(line) {
			wordLen := len(word)
			if lineLen+wordLen+1 > width && lineLen > 0 {
				result.WriteString("\n")
				lineLen = 0
			}
			if lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}
			// Break words longer than a whole line
			if wordLen > width {
				word = word[:width-3] + "..."
				wordLen = width
			}
			result.WriteString(word)
			lineLen += wordLen
		}
	}

	return result.String()
}
