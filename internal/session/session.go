// Package session holds the mutable interview session record.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/iutkarshydv/aivia/internal/roles"
	"github.com/iutkarshydv/aivia/internal/upload"
)

// Screen names the top-level UI screens.
type Screen string

const (
	ScreenRoles     Screen = "role-selection"
	ScreenUpload    Screen = "resume-upload"
	ScreenSetup     Screen = "interview-setup"
	ScreenInterview Screen = "voice-interview"
	ScreenComplete  Screen = "interview-complete"
)

// Avatar describes the mock assistant's current activity.
type Avatar string

const (
	AvatarReady     Avatar = "ready"
	AvatarListening Avatar = "listening"
	AvatarSpeaking  Avatar = "speaking"
)

// State is the single session record for a running UI. Exactly one exists
// per program run; Reset replaces it wholesale.
type State struct {
	ID            string
	Screen        Screen
	Role          *roles.Role
	File          *upload.File
	Active        bool
	Started       bool
	QuestionIndex int
	StartedAt     time.Time
	Accumulated   time.Duration
	Avatar        Avatar
	Muted         bool
}

// New returns the default session state at the role-selection screen.
func New() State {
	return State{
		Screen: ScreenRoles,
		Avatar: AvatarReady,
	}
}

// SelectRole stores the role, clearing any prior selection.
func (s *State) SelectRole(r roles.Role) {
	role := r
	s.Role = &role
}

// Start begins the interview for the first time: fresh session id, question
// index zeroed, duration clock started.
func (s *State) Start(now time.Time) {
	s.ID = uuid.NewString()
	s.Started = true
	s.Active = true
	s.QuestionIndex = 0
	s.Accumulated = 0
	s.StartedAt = now
}

// Pause stops the clock, banking elapsed time. Question index is preserved
// so a resume continues the same question.
func (s *State) Pause(now time.Time) {
	if s.Active {
		s.Accumulated += now.Sub(s.StartedAt)
	}
	s.Active = false
	s.Avatar = AvatarReady
}

// Resume restarts the clock after a pause.
func (s *State) Resume(now time.Time) {
	s.Active = true
	s.StartedAt = now
}

// Elapsed reports total interview time: banked duration plus the running
// stretch when active.
func (s *State) Elapsed(now time.Time) time.Duration {
	if s.Active {
		return s.Accumulated + now.Sub(s.StartedAt)
	}
	return s.Accumulated
}

// QuestionCount is the selected role's question total, zero when no role is
// selected.
func (s *State) QuestionCount() int {
	if s.Role == nil {
		return 0
	}
	return len(s.Role.Questions)
}

// CompletedQuestions caps the question index at the role's question count
// for display.
func (s *State) CompletedQuestions() int {
	total := s.QuestionCount()
	if s.QuestionIndex > total {
		return total
	}
	return s.QuestionIndex
}

// CurrentQuestion returns the active question text, empty once the index
// runs past the list.
func (s *State) CurrentQuestion() string {
	if s.Role == nil || s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Role.Questions) {
		return ""
	}
	return s.Role.Questions[s.QuestionIndex]
}
