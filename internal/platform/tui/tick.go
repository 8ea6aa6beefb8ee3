// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated step after a stall (suspend, slow SSH link).
const maxFrameDelta = 100 * time.Millisecond

// maxSubStep bounds a single simulation step. At the fastest scroll speeds
// an entity moves less than one collision window per sub-step.
const maxSubStep = time.Second / 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks, clamped to
// [0, maxFrameDelta]. A zero prev yields 0 so the first tick is a no-op step.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	d := now.Sub(prev)
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}

// subSteps splits dt into steps no longer than maxSubStep. A zero dt is
// still one step so the game sees every tick.
func subSteps(dt float64) []float64 {
	limit := maxSubStep.Seconds()
	if dt <= limit {
		return []float64{dt}
	}
	n := int(math.Ceil(dt / limit))
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = dt / float64(n)
	}
	return steps
}
