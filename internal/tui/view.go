package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iutkarshydv/aivia/internal/session"
)

func (m Model) View() string {
	var title, keys, body string
	switch m.state.Screen {
	case session.ScreenRoles:
		title = "ROLES"
		keys = "↑/↓ move  enter select  esc reset  ctrl+c quit"
		body = m.renderRoles()
	case session.ScreenUpload:
		title = "RESUME"
		keys = "↑/↓ browse  enter pick  x remove  s start  esc reset  ctrl+c quit"
		body = m.renderUpload()
	case session.ScreenSetup:
		title = "SETUP"
		keys = "esc reset  ctrl+c quit"
		body = m.renderSetup()
	case session.ScreenInterview:
		title = "INTERVIEW"
		keys = "space start/pause  m mute  e end  esc reset  ctrl+c quit"
		body = m.renderInterview()
	case session.ScreenComplete:
		title = "COMPLETE"
		keys = "enter new session  esc reset  ctrl+c quit"
		body = m.renderComplete()
	}
	status := m.status
	if m.banner != "" {
		status = bannerStyle.Render(m.banner + "  (backspace dismiss)")
	}
	header := renderHeader(title)
	footer := renderFooter(keys, status)
	body = padBodyToHeight(body, m.height-2)
	return renderFrame(header, body, footer)
}

func (m Model) renderRoles() string {
	var b strings.Builder
	b.WriteString(renderPanelTitle("Pick a role to interview for", min(m.width, 60)))
	b.WriteString("\n")
	for i, r := range m.catalog {
		cursor := "  "
		if i == m.roleCursor {
			cursor = "> "
		}
		selected := ""
		if m.state.Role != nil && m.state.Role.ID == r.ID {
			selected = okStyle.Render(" ✓ selected")
		}
		name := titleStyle.Render(r.Icon + " " + r.Name)
		count := labelStyle.Render(fmt.Sprintf("%d questions", len(r.Questions)))
		b.WriteString(fmt.Sprintf("%s%s  %s%s\n", cursor, name, count, selected))
		b.WriteString("    " + dimStyle.Render(r.Description) + "\n")
	}
	return b.String()
}

func (m Model) renderUpload() string {
	var b strings.Builder
	role := "no role"
	if m.state.Role != nil {
		role = m.state.Role.Name
	}
	b.WriteString(renderPanelTitle("Upload your resume · "+role, min(m.width, 60)))
	b.WriteString("\n")
	switch {
	case m.uploading:
		name := ""
		if m.pendingFile != nil {
			name = m.pendingFile.Name
		}
		b.WriteString(textStyle.Render("Uploading "+name) + "\n\n")
		b.WriteString(m.progressBar.ViewAs(float64(m.uploadPct)/100) + "\n")
	case m.state.File != nil:
		b.WriteString(okStyle.Render("✓ "+m.state.File.Name) + "  ")
		b.WriteString(labelStyle.Render(humanize.Bytes(uint64(m.state.File.Size))) + "\n\n")
		b.WriteString(dimStyle.Render("Press s to start the interview, x to remove the file.") + "\n")
	default:
		b.WriteString(dimStyle.Render("PDF, DOC, or DOCX up to 10 MB.") + "\n\n")
		b.WriteString(m.picker.View())
	}
	return b.String()
}

func (m Model) renderSetup() string {
	var b strings.Builder
	b.WriteString(renderPanelTitle("Connecting", min(m.width, 60)))
	b.WriteString("\n")
	for i, label := range setupSteps {
		switch {
		case i < m.setupStep:
			b.WriteString(okStyle.Render("✓ "+label) + "\n")
		case i == m.setupStep:
			b.WriteString(m.spin.View() + textStyle.Render(label) + "\n")
		default:
			b.WriteString(labelStyle.Render("· "+label) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderInterview() string {
	var b strings.Builder
	b.WriteString(renderPanelTitle("Voice interview", min(m.width, 60)))
	b.WriteString("\n")
	b.WriteString(m.renderAvatar() + "\n\n")

	total := m.state.QuestionCount()
	if m.state.Started && m.state.QuestionIndex < total {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Question %d/%d", m.state.QuestionIndex+1, total)) + "\n")
		b.WriteString(textStyle.Render(m.state.CurrentQuestion()) + "\n\n")
	} else if !m.state.Started {
		b.WriteString(dimStyle.Render("Press space to begin.") + "\n\n")
	}
	if m.responseText != "" {
		b.WriteString(dimStyle.Render("You (simulated): ") + textStyle.Render(m.responseText) + "\n\n")
	}
	b.WriteString(labelStyle.Render("Elapsed "+formatDuration(m.state.Elapsed(m.clock))) + "\n")
	if m.state.Muted {
		b.WriteString(bannerStyle.Render("MUTED") + "\n")
	}
	if m.state.Started && !m.state.Active {
		b.WriteString(labelStyle.Render("Paused. Press space to resume.") + "\n")
	}
	return b.String()
}

func (m Model) renderAvatar() string {
	switch m.state.Avatar {
	case session.AvatarSpeaking:
		return avatarSpeakingStyle.Render("● interviewer speaking")
	case session.AvatarListening:
		return avatarListeningStyle.Render("◉ listening to you")
	default:
		return avatarReadyStyle.Render("○ ready")
	}
}

func (m Model) renderComplete() string {
	var b strings.Builder
	b.WriteString(renderPanelTitle("Interview complete", min(m.width, 60)))
	b.WriteString("\n")
	role := ""
	if m.state.Role != nil {
		role = m.state.Role.Name
	}
	card := fmt.Sprintf("Role        %s\nQuestions   %d/%d\nDuration    %s\nSession     %s",
		role,
		m.state.CompletedQuestions(), m.state.QuestionCount(),
		formatDuration(m.state.Elapsed(m.clock)),
		m.state.ID,
	)
	b.WriteString(cardStyle.Render(card) + "\n\n")
	b.WriteString(dimStyle.Render("Press enter to start a new session.") + "\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
