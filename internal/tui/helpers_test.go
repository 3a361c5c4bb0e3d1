package tui

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iutkarshydv/aivia/internal/config"
	"github.com/iutkarshydv/aivia/internal/roles"
	"github.com/iutkarshydv/aivia/internal/session"
)

func newTestModel() Model {
	m := NewModel(roles.Catalog(), config.Default(), zap.NewNop())
	m.rng = rand.New(rand.NewSource(1))
	return m
}

func feed(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func pressKey(m Model, key string) Model {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	}
	return feed(m, msg)
}

func tempResume(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// submitAndFinishUpload drives the cosmetic progress simulation to 100%.
func submitAndFinishUpload(t *testing.T, m Model, path string) Model {
	t.Helper()
	cmd := (&m).submitResume(path)
	if cmd == nil {
		t.Fatal("expected upload to start")
	}
	for i := 0; m.uploading; i++ {
		if i > 50 {
			t.Fatal("upload never completed")
		}
		m = feed(m, uploadTickMsg{seq: m.flowSeq})
	}
	return m
}

// reachInterview walks a fresh model to the voice-interview screen with the
// backend role and a stored resume.
func reachInterview(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 3; i++ {
		m = pressKey(m, "down")
	}
	m = pressKey(m, "enter")
	if m.state.Role == nil || m.state.Role.ID != "backend" {
		t.Fatalf("expected backend selected, got %+v", m.state.Role)
	}
	m = feed(m, roleAdvanceMsg{seq: m.flowSeq})
	if m.state.Screen != session.ScreenUpload {
		t.Fatalf("expected upload screen, got %s", m.state.Screen)
	}
	m = submitAndFinishUpload(t, m, tempResume(t, "resume.docx", 2048))
	m = pressKey(m, "s")
	if m.state.Screen != session.ScreenSetup {
		t.Fatalf("expected setup screen, got %s", m.state.Screen)
	}
	for step := 1; step <= len(setupSteps); step++ {
		m = feed(m, setupStepMsg{seq: m.flowSeq, step: step})
	}
	m = feed(m, setupDoneMsg{seq: m.flowSeq})
	if m.state.Screen != session.ScreenInterview {
		t.Fatalf("expected interview screen, got %s", m.state.Screen)
	}
	return m
}

// runQuestionCycle feeds one full listen/respond/advance cycle.
func runQuestionCycle(m Model) Model {
	m = feed(m, cycleMsg{seq: m.flowSeq, phase: phaseListen})
	m = feed(m, cycleMsg{seq: m.flowSeq, phase: phaseRespond})
	m = feed(m, cycleMsg{seq: m.flowSeq, phase: phaseAdvance})
	return m
}

func assertAvatarValid(t *testing.T, m Model) {
	t.Helper()
	switch m.state.Avatar {
	case session.AvatarReady, session.AvatarListening, session.AvatarSpeaking:
	default:
		t.Fatalf("invalid avatar state %q", m.state.Avatar)
	}
}
