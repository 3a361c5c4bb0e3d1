package tui

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iutkarshydv/aivia/internal/config"
	"github.com/iutkarshydv/aivia/internal/roles"
	"github.com/iutkarshydv/aivia/internal/session"
	"github.com/iutkarshydv/aivia/internal/upload"
)

type keyMap struct {
	Quit    key.Binding
	Reset   key.Binding
	NavUp   key.Binding
	NavDown key.Binding
	Select  key.Binding
	Start   key.Binding
	Remove  key.Binding
	Toggle  key.Binding
	Mute    key.Binding
	End     key.Binding
	Dismiss key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset"),
		),
		NavUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		NavDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start interview"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove file"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end interview"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "dismiss"),
		),
	}
}

// Model owns all application state and drives the scripted interview flow.
type Model struct {
	state   session.State
	catalog []roles.Role
	timings Timings
	keys    keyMap
	log     *zap.Logger
	rng     *rand.Rand

	width  int
	height int

	// flowSeq guards every flow timer (role advance, upload ticks, setup
	// sequence, question cycle, clock). bannerSeq guards the banner hide
	// timer independently so flow transitions don't pin a banner open.
	flowSeq   int
	bannerSeq int

	roleCursor int

	picker      filepicker.Model
	progressBar progress.Model
	uploading   bool
	uploadPct   int
	pendingFile *upload.File

	setupStep int
	spin      spinner.Model

	phase        cyclePhase
	responseText string
	clock        time.Time

	banner string
	status string
}

func NewModel(catalog []roles.Role, cfg config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if len(catalog) == 0 {
		catalog = roles.Catalog()
	}
	picker := filepicker.New()
	picker.AllowedTypes = upload.AllowedExtensions()
	if cwd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = cwd
	}
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = avatarSpeakingStyle
	return Model{
		state:       session.New(),
		catalog:     catalog,
		timings:     DefaultTimings().Scaled(cfg.Pacing),
		keys:        newKeyMap(),
		log:         log,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		width:       120,
		height:      40,
		picker:      picker,
		progressBar: progress.New(progress.WithDefaultGradient()),
		spin:        spin,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.picker.Height = max(5, m.height-10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case roleAdvanceMsg:
		return m.handleRoleAdvance(msg)
	case uploadTickMsg:
		return m.handleUploadTick(msg)
	case setupStepMsg:
		return m.handleSetupStep(msg)
	case setupDoneMsg:
		return m.handleSetupDone(msg)
	case cycleMsg:
		return m.handleCycle(msg)
	case clockTickMsg:
		return m.handleClockTick(msg)
	case bannerHideMsg:
		if msg.seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Screen != session.ScreenSetup {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.state.Screen == session.ScreenUpload && !m.uploading && m.state.File == nil {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		if m.banner != "" {
			m.banner = ""
			m.bannerSeq++
			return m, nil
		}
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}

	switch m.state.Screen {
	case session.ScreenRoles:
		return m.handleRolesKey(msg)
	case session.ScreenUpload:
		return m.handleUploadKey(msg)
	case session.ScreenInterview:
		return m.handleInterviewKey(msg)
	case session.ScreenComplete:
		if key.Matches(msg, m.keys.Select) {
			return m.reset()
		}
	}
	return m, nil
}

func (m Model) handleRolesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NavDown):
		if m.roleCursor < len(m.catalog)-1 {
			m.roleCursor++
		}
	case key.Matches(msg, m.keys.NavUp):
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectRole(m.roleCursor)
	}
	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Remove):
		m.removeFile()
		return m, nil
	case key.Matches(msg, m.keys.Start):
		if m.state.File == nil {
			return m, m.showError("upload a resume before starting")
		}
		return m, m.beginSetup()
	}
	if m.uploading || m.state.File != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.submitResume(path))
	}
	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		return m, tea.Batch(cmd, m.showError(upload.ErrFileType.Error()))
	}
	return m, cmd
}

func (m Model) handleInterviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleInterview()
	case key.Matches(msg, m.keys.Mute):
		m.state.Muted = !m.state.Muted
		return m, nil
	case key.Matches(msg, m.keys.End):
		return m.endInterview()
	}
	return m, nil
}

// reset tears down every pending timer and reinitializes the session.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.flowSeq++
	m.bannerSeq++
	m.state = session.New()
	m.roleCursor = 0
	m.uploading = false
	m.uploadPct = 0
	m.pendingFile = nil
	m.setupStep = 0
	m.phase = phaseListen
	m.responseText = ""
	m.banner = ""
	m.status = ""
	return m, nil
}
