package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iutkarshydv/aivia/internal/session"
	"github.com/iutkarshydv/aivia/internal/upload"
)

// Canned responses shown after the simulated listening phase. They are not
// tied to question content; this is acknowledged mock scope.
var cannedResponses = []string{
	"That's a solid answer. I like how you grounded it in a concrete project.",
	"Interesting. Let's dig into the trade-offs you mentioned in a moment.",
	"Good. Your reasoning about failure modes came through clearly.",
	"Thanks, that gives me a good picture of how you approach the problem.",
	"Nice walkthrough. The debugging instinct you described is exactly what we probe for.",
	"Understood. Let's move on to the next question.",
}

var setupSteps = []string{
	"Analyzing resume",
	"Preparing interview agent",
	"Calibrating voice session",
}

func (m Model) selectRole(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.catalog) {
		return m, nil
	}
	m.state.SelectRole(m.catalog[idx])
	m.roleCursor = idx
	m.flowSeq++
	m.log.Info("role selected", zap.String("role", m.state.Role.ID))
	return m, delayed(m.timings.RoleAdvance, roleAdvanceMsg{seq: m.flowSeq})
}

func (m Model) handleRoleAdvance(msg roleAdvanceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq || m.state.Role == nil {
		return m, nil
	}
	m.state.Screen = session.ScreenUpload
	return m, m.picker.Init()
}

// submitResume validates a picked file and starts the cosmetic progress
// simulation. Validation failure surfaces a banner and mutates nothing.
func (m *Model) submitResume(path string) tea.Cmd {
	file, err := upload.FromPath(path)
	if err != nil {
		m.log.Warn("resume rejected", zap.String("path", path), zap.Error(err))
		return m.showError(err.Error())
	}
	m.flowSeq++
	m.uploading = true
	m.uploadPct = 0
	m.pendingFile = &file
	return delayed(m.timings.UploadTick, uploadTickMsg{seq: m.flowSeq})
}

func (m Model) handleUploadTick(msg uploadTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq || !m.uploading {
		return m, nil
	}
	m.uploadPct += 5 + m.rng.Intn(16)
	if m.uploadPct < 100 {
		return m, delayed(m.timings.UploadTick, uploadTickMsg{seq: m.flowSeq})
	}
	m.uploadPct = 100
	m.uploading = false
	m.state.File = m.pendingFile
	m.pendingFile = nil
	m.log.Info("resume stored",
		zap.String("name", m.state.File.Name),
		zap.Int64("size", m.state.File.Size))
	return m, nil
}

// removeFile clears any stored or in-flight file. Safe to call when nothing
// is stored.
func (m *Model) removeFile() {
	if m.uploading {
		m.flowSeq++
	}
	m.state.File = nil
	m.pendingFile = nil
	m.uploading = false
	m.uploadPct = 0
}

// beginSetup cancels pending flow timers and starts the three-step
// connecting sequence.
func (m *Model) beginSetup() tea.Cmd {
	m.flowSeq++
	m.state.Screen = session.ScreenSetup
	m.setupStep = 0
	m.log.Info("setup sequence started", zap.String("role", m.state.Role.ID))
	return tea.Batch(
		m.spin.Tick,
		delayed(m.timings.SetupStep, setupStepMsg{seq: m.flowSeq, step: 1}),
	)
}

func (m Model) handleSetupStep(msg setupStepMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq {
		return m, nil
	}
	m.setupStep = msg.step
	if msg.step < len(setupSteps) {
		return m, delayed(m.timings.SetupStep, setupStepMsg{seq: m.flowSeq, step: msg.step + 1})
	}
	return m, delayed(m.timings.SetupFinish, setupDoneMsg{seq: m.flowSeq})
}

func (m Model) handleSetupDone(msg setupDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq {
		return m, nil
	}
	m.state.Screen = session.ScreenInterview
	m.state.Avatar = session.AvatarReady
	return m, nil
}

// toggleInterview is the single start/pause control.
func (m Model) toggleInterview() (tea.Model, tea.Cmd) {
	now := time.Now()
	if m.state.Active {
		m.flowSeq++
		m.state.Pause(now)
		m.status = "paused"
		m.log.Info("interview paused",
			zap.String("session", m.state.ID),
			zap.Int("question", m.state.QuestionIndex))
		return m, nil
	}
	if !m.state.Started {
		m.state.Start(now)
		m.log.Info("interview started",
			zap.String("session", m.state.ID),
			zap.String("role", m.state.Role.ID))
	} else {
		m.state.Resume(now)
		m.log.Info("interview resumed", zap.String("session", m.state.ID))
	}
	m.status = ""
	m.clock = now
	m.flowSeq++
	clock := delayed(m.timings.ClockInterval, clockTickMsg{seq: m.flowSeq})
	ask := m.beginQuestion()
	return m, tea.Batch(clock, ask)
}

// beginQuestion enters the asking phase of the current question.
func (m *Model) beginQuestion() tea.Cmd {
	m.state.Avatar = session.AvatarSpeaking
	m.phase = phaseListen
	m.responseText = ""
	return delayed(m.timings.QuestionRead, cycleMsg{seq: m.flowSeq, phase: phaseListen})
}

func (m Model) handleCycle(msg cycleMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq || !m.state.Active {
		return m, nil
	}
	switch msg.phase {
	case phaseListen:
		m.state.Avatar = session.AvatarListening
		m.phase = phaseRespond
		wait := m.timings.ListenMin
		if span := m.timings.ListenMax - m.timings.ListenMin; span > 0 {
			wait += time.Duration(m.rng.Int63n(int64(span)))
		}
		return m, delayed(wait, cycleMsg{seq: m.flowSeq, phase: phaseRespond})
	case phaseRespond:
		m.state.Avatar = session.AvatarSpeaking
		m.responseText = cannedResponses[m.rng.Intn(len(cannedResponses))]
		m.phase = phaseAdvance
		return m, delayed(m.timings.ResponseHold, cycleMsg{seq: m.flowSeq, phase: phaseAdvance})
	case phaseAdvance:
		m.state.QuestionIndex++
		if m.state.QuestionIndex < m.state.QuestionCount() {
			return m, m.beginQuestion()
		}
		return m.finishInterview()
	}
	return m, nil
}

// endInterview stops everything and jumps to completion regardless of where
// the cycle is.
func (m Model) endInterview() (tea.Model, tea.Cmd) {
	return m.finishInterview()
}

func (m Model) finishInterview() (tea.Model, tea.Cmd) {
	m.flowSeq++
	m.state.Pause(time.Now())
	m.state.Screen = session.ScreenComplete
	m.responseText = ""
	m.log.Info("interview complete",
		zap.String("session", m.state.ID),
		zap.Int("questions", m.state.CompletedQuestions()),
		zap.Duration("elapsed", m.state.Elapsed(time.Now())))
	return m, nil
}

func (m Model) handleClockTick(msg clockTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.flowSeq || !m.state.Active {
		return m, nil
	}
	m.clock = time.Now()
	return m, delayed(m.timings.ClockInterval, clockTickMsg{seq: m.flowSeq})
}

// showError surfaces a transient banner; a newer message replaces the
// current one.
func (m *Model) showError(text string) tea.Cmd {
	m.bannerSeq++
	m.banner = text
	return delayed(m.timings.BannerHide, bannerHideMsg{seq: m.bannerSeq})
}
