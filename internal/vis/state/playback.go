package state

import "time"

// PlaybackState drives discrete-timestep playback of a plan: unlike a
// continuous-time simulation, positions only change at integer timesteps,
// but FracIntoStep lets the workspace interpolate smoothly between them
// for rendering.
type PlaybackState struct {
	CurrentStep  int
	FracIntoStep float64 // 0..1 progress toward CurrentStep+1
	MaxStep      int
	StepsPerSec  float64 // playback speed, in timesteps per second
	Playing      bool
	lastUpdate   time.Time
}

// NewPlaybackState creates playback state for a plan with the given
// makespan (final timestep index).
func NewPlaybackState(maxStep int) *PlaybackState {
	return &PlaybackState{
		MaxStep:     maxStep,
		StepsPerSec: 1.0,
		lastUpdate:  time.Now(),
	}
}

// TogglePlay toggles playback, resetting to the start if already at the end.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.CurrentStep >= p.MaxStep {
			p.CurrentStep = 0
			p.FracIntoStep = 0
		}
	}
}

// Reset returns to timestep 0 and stops playback.
func (p *PlaybackState) Reset() {
	p.CurrentStep = 0
	p.FracIntoStep = 0
	p.Playing = false
}

// Advance moves playback forward by the wall-clock time elapsed since the
// last call, in proportion to StepsPerSec.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	p.lastUpdate = now

	p.FracIntoStep += elapsed * p.StepsPerSec
	for p.FracIntoStep >= 1 {
		p.FracIntoStep -= 1
		p.CurrentStep++
		if p.CurrentStep >= p.MaxStep {
			p.CurrentStep = p.MaxStep
			p.FracIntoStep = 0
			p.Playing = false
			break
		}
	}
}

// SetStep jumps directly to timestep t, clamped to [0, MaxStep].
func (p *PlaybackState) SetStep(t int) {
	if t < 0 {
		t = 0
	}
	if t > p.MaxStep {
		t = p.MaxStep
	}
	p.CurrentStep = t
	p.FracIntoStep = 0
}

// StepForward pauses and advances one whole timestep.
func (p *PlaybackState) StepForward() {
	p.Playing = false
	p.SetStep(p.CurrentStep + 1)
}

// StepBack pauses and moves back one whole timestep.
func (p *PlaybackState) StepBack() {
	p.Playing = false
	p.SetStep(p.CurrentStep - 1)
}

// SetSpeed sets the playback speed in timesteps per second, clamped to a
// sane interactive range.
func (p *PlaybackState) SetSpeed(stepsPerSec float64) {
	if stepsPerSec < 0.1 {
		stepsPerSec = 0.1
	}
	if stepsPerSec > 20 {
		stepsPerSec = 20
	}
	p.StepsPerSec = stepsPerSec
}

// Progress returns current position as a fraction in [0, 1].
func (p *PlaybackState) Progress() float64 {
	if p.MaxStep <= 0 {
		return 0
	}
	return (float64(p.CurrentStep) + p.FracIntoStep) / float64(p.MaxStep)
}
