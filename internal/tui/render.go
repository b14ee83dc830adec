package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6c7086")).Padding(0, 1)
	focusedCard   = cardStyle.BorderForeground(lipgloss.Color("#a6e3a1"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#6c7086")).Padding(0, 1)
)

func (a *App) render() string {
	leftWidth := max(30, a.width*3/5)
	rightWidth := max(24, a.width-leftWidth-2)

	left := a.renderCards(leftWidth)
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderDetail(rightWidth),
		a.renderArchives(rightWidth),
	)
	if a.showHelp {
		right = a.renderHelp(rightWidth)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var footer string
	if a.commandMode {
		footer = a.input.View() + "\n" + mutedStyle.Render(helpLine(a.keys.prompt()))
	} else {
		footer = mutedStyle.Render(helpLine(a.keys.browse()))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Address Book"),
		body,
		a.renderStatus(),
		footer,
	)
}

func (a *App) renderCards(width int) string {
	if len(a.persons) == 0 {
		return mutedStyle.Render("No persons. Try :loadArchive FILENAME")
	}
	cards := make([]string, 0, len(a.persons))
	for i, p := range a.persons {
		var b strings.Builder
		b.WriteString(nameStyle.Render(fmt.Sprintf("%d. %s", i+1, p.Name)))
		if p.Phone != "" || p.Email != "" {
			b.WriteString("\n" + mutedStyle.Render(strings.TrimSpace(p.Phone+"  "+p.Email)))
		}
		list := a.cards[i]
		if list.Len() == 0 {
			b.WriteString("\n" + mutedStyle.Render("no emergency contacts"))
		}
		for j, ec := range list.Items() {
			line := fmt.Sprintf("  %s (%s) %s", ec.Name, ec.Relationship, ec.Phone)
			if j == list.SelectedIndex() {
				line = selectedStyle.Render("▶" + line[1:])
			}
			b.WriteString("\n" + line)
		}
		style := cardStyle
		if i == a.focus {
			style = focusedCard
		}
		cards = append(cards, style.Width(width-2).Render(b.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (a *App) renderDetail(width int) string {
	title := titleStyle.Render("Emergency contact")
	ec, owner, ok := a.activeContact()
	if !ok {
		return paneStyle.Width(width - 2).Render(title + "\n" + mutedStyle.Render("nothing selected"))
	}
	body := fmt.Sprintf("%s\nName: %s\nPhone: %s\nRelationship: %s\nFor: %s",
		title, ec.Name, ec.Phone, ec.Relationship, owner.Name)
	return paneStyle.Width(width - 2).Render(body)
}

func (a *App) renderArchives(width int) string {
	title := titleStyle.Render("Archives")
	if len(a.archives) == 0 {
		return paneStyle.Width(width - 2).Render(title + "\n" + mutedStyle.Render("none"))
	}
	lines := []string{title}
	for _, e := range a.archives {
		lines = append(lines, fmt.Sprintf("%s %s", e.Name, mutedStyle.Render(fmt.Sprintf("%s  %s", e.ModTime.Format("2006-01-02 15:04"), formatSize(e.Size)))))
	}
	return paneStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (a *App) renderHelp(width int) string {
	return paneStyle.Width(width - 2).Render(titleStyle.Render("Commands") + "\n" + a.registry.Help())
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errorStyle.Render(a.status)
	}
	return okStyle.Render(a.status)
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
