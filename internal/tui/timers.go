package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timings holds every scripted delay. Nothing here is tied to real work;
// the values only pace the demo.
type Timings struct {
	RoleAdvance   time.Duration
	UploadTick    time.Duration
	SetupStep     time.Duration
	SetupFinish   time.Duration
	QuestionRead  time.Duration
	ListenMin     time.Duration
	ListenMax     time.Duration
	ResponseHold  time.Duration
	ClockInterval time.Duration
	BannerHide    time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		RoleAdvance:   400 * time.Millisecond,
		UploadTick:    150 * time.Millisecond,
		SetupStep:     1200 * time.Millisecond,
		SetupFinish:   800 * time.Millisecond,
		QuestionRead:  3 * time.Second,
		ListenMin:     2 * time.Second,
		ListenMax:     5 * time.Second,
		ResponseHold:  2500 * time.Millisecond,
		ClockInterval: time.Second,
		BannerHide:    4 * time.Second,
	}
}

// Scaled multiplies every delay by pacing. The clock stays at one second so
// displayed durations remain real time.
func (t Timings) Scaled(pacing float64) Timings {
	if pacing <= 0 || pacing == 1.0 {
		return t
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * pacing)
	}
	t.RoleAdvance = scale(t.RoleAdvance)
	t.UploadTick = scale(t.UploadTick)
	t.SetupStep = scale(t.SetupStep)
	t.SetupFinish = scale(t.SetupFinish)
	t.QuestionRead = scale(t.QuestionRead)
	t.ListenMin = scale(t.ListenMin)
	t.ListenMax = scale(t.ListenMax)
	t.ResponseHold = scale(t.ResponseHold)
	t.BannerHide = scale(t.BannerHide)
	return t
}

type cyclePhase int

const (
	phaseListen cyclePhase = iota
	phaseRespond
	phaseAdvance
)

// Timer messages carry the flow generation current when they were scheduled.
// A transition that cancels pending work bumps the generation, so stale
// callbacks are dropped on arrival.
type (
	roleAdvanceMsg struct{ seq int }
	uploadTickMsg  struct{ seq int }
	setupStepMsg   struct {
		seq  int
		step int
	}
	setupDoneMsg struct{ seq int }
	cycleMsg     struct {
		seq   int
		phase cyclePhase
	}
	clockTickMsg  struct{ seq int }
	bannerHideMsg struct{ seq int }
)

func delayed(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
