package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night inspired palette.
var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#e0af68")
	colorError   = lipgloss.Color("#f7768e")
	colorMuted   = lipgloss.Color("#565f89")
	colorFg      = lipgloss.Color("#c0caf5")
	colorFgDim   = lipgloss.Color("#a9b1d6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	textStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)

	avatarSpeakingStyle  = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	avatarListeningStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	avatarReadyStyle     = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
)

func renderHeader(title string) string {
	return titleStyle.Render("AIVIA | " + title)
}

func renderFooter(keys, status string) string {
	if strings.TrimSpace(status) == "" {
		status = "ready"
	}
	return labelStyle.Render("KEYS: " + keys + " | " + status)
}

func renderFrame(header, body, footer string) string {
	return strings.Join([]string{header, body, footer}, "\n")
}

func renderPanelTitle(title string, width int) string {
	line := strings.Repeat("─", max(0, width))
	return titleStyle.Render(title) + "\n" + labelStyle.Render(line)
}

func padBodyToHeight(body string, height int) string {
	if height <= 0 {
		return body
	}
	lines := []string{""}
	if strings.TrimSpace(body) != "" {
		lines = strings.Split(body, "\n")
	}
	if len(lines) >= height {
		return body
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
