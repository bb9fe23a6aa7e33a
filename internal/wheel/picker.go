package wheel

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSpinning           = errors.New("wheel is spinning")
	ErrNoNames            = errors.New("no names on the wheel")
	ErrAwaitingResolution = errors.New("previous winner not resolved")
	ErrNoWinner           = errors.New("no winner to resolve")
)

// Scheduler is the host's frame and timer facility. Callbacks run on the
// same goroutine that owns the Picker.
type Scheduler interface {
	Now() time.Time
	NextFrame(fn func())
	After(d time.Duration, fn func()) (cancel func())
	Every(d time.Duration, fn func()) (cancel func())
}

// Cue names one of the three sounds.
type Cue int

const (
	CueSpin Cue = iota
	CueCelebration
	CueWinner
)

func (c Cue) String() string {
	switch c {
	case CueSpin:
		return "spin"
	case CueCelebration:
		return "celebration"
	case CueWinner:
		return "winner"
	}
	return "unknown"
}

// Sounds plays cues. Play restarts a cue from its beginning; the spin cue loops.
type Sounds interface {
	Play(c Cue)
	Stop(c Cue)
}

// View is what the picker needs from the screen around the wheel.
type View interface {
	Redraw()
	SetSpinEnabled(enabled bool)
	ShowCelebration(winner string)
	HideCelebration()
	ShowAnnouncement(winner string)
	HideAnnouncement()
	SetScrollLocked(locked bool)
}

// Stage tracks the winner flow that follows a spin.
type Stage int

const (
	StageIdle Stage = iota
	StageSpinning
	StageCelebrating
	StageAnnouncing
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageSpinning:
		return "spinning"
	case StageCelebrating:
		return "celebrating"
	case StageAnnouncing:
		return "announcing"
	}
	return "unknown"
}

// Options configures a Picker. Zero fields fall back to defaults; a nil
// Names seeds the default list while an empty non-nil slice starts empty.
type Options struct {
	Names              []string
	WheelColor         color.Color
	TextColor          color.Color
	SpinSeconds        int
	MinSpinSeconds     int
	MaxSpinSeconds     int
	MinTurns           float64
	MaxTurns           float64
	CelebrationDisplay time.Duration
	Confetti           ConfettiOptions
	Rand               *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		Names:              append([]string(nil), DefaultNames...),
		WheelColor:         color.RGBA{R: 0xFF, G: 0x57, B: 0x33, A: 0xFF},
		TextColor:          color.White,
		SpinSeconds:        5,
		MinSpinSeconds:     1,
		MaxSpinSeconds:     60,
		MinTurns:           5,
		MaxTurns:           10,
		CelebrationDisplay: 5 * time.Second,
		Confetti:           DefaultConfettiOptions(),
	}
}

type session struct {
	id       uuid.UUID
	start    time.Time
	turns    float64
	duration time.Duration
}

// Picker owns the wheel state and runs spins and the winner flow.
// It is not safe for concurrent use; drive it from one goroutine.
type Picker struct {
	names       []string
	rotation    float64
	wheelColor  color.Color
	textColor   color.Color
	spinSeconds int

	minSeconds, maxSeconds int
	minTurns, maxTurns     float64
	display                time.Duration

	stage     Stage
	session   *session
	pending   []string
	winner    string
	hasWinner bool

	sched    Scheduler
	sounds   Sounds
	view     View
	rng      *rand.Rand
	confetti *Confetti
}

func NewPicker(opts Options, sched Scheduler, sounds Sounds, view View) *Picker {
	def := DefaultOptions()
	if opts.Names == nil {
		opts.Names = def.Names
	}
	if opts.WheelColor == nil {
		opts.WheelColor = def.WheelColor
	}
	if opts.TextColor == nil {
		opts.TextColor = def.TextColor
	}
	if opts.MinSpinSeconds <= 0 {
		opts.MinSpinSeconds = def.MinSpinSeconds
	}
	if opts.MaxSpinSeconds < opts.MinSpinSeconds {
		opts.MaxSpinSeconds = max(def.MaxSpinSeconds, opts.MinSpinSeconds)
	}
	if opts.SpinSeconds == 0 {
		opts.SpinSeconds = def.SpinSeconds
	}
	if opts.MaxTurns <= 0 {
		opts.MinTurns, opts.MaxTurns = def.MinTurns, def.MaxTurns
	}
	if opts.CelebrationDisplay <= 0 {
		opts.CelebrationDisplay = def.CelebrationDisplay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	p := &Picker{
		names:      append([]string(nil), opts.Names...),
		wheelColor: opts.WheelColor,
		textColor:  opts.TextColor,
		minSeconds: opts.MinSpinSeconds,
		maxSeconds: opts.MaxSpinSeconds,
		minTurns:   opts.MinTurns,
		maxTurns:   opts.MaxTurns,
		display:    opts.CelebrationDisplay,
		sched:      sched,
		sounds:     sounds,
		view:       view,
		rng:        opts.Rand,
	}
	p.spinSeconds = p.clampSeconds(opts.SpinSeconds)
	p.confetti = NewConfetti(sched, opts.Rand, opts.Confetti)
	return p
}

func (p *Picker) Names() []string { return append([]string(nil), p.names...) }

func (p *Picker) Len() int { return len(p.names) }

func (p *Picker) Rotation() float64 { return p.rotation }

func (p *Picker) Stage() Stage { return p.stage }

func (p *Picker) Spinning() bool { return p.stage == StageSpinning }

func (p *Picker) SpinSeconds() int { return p.spinSeconds }

func (p *Picker) WheelColor() color.Color { return p.wheelColor }

func (p *Picker) TextColor() color.Color { return p.textColor }

func (p *Picker) Confetti() *Confetti { return p.confetti }

// Winner returns the last winner while it awaits Keep or Remove.
func (p *Picker) Winner() (string, bool) { return p.winner, p.hasWinner }

// CanSpin reports whether Spin would start a new session.
func (p *Picker) CanSpin() bool { return p.stage == StageIdle && len(p.names) > 0 }

// Frame snapshots what the renderer needs.
func (p *Picker) Frame() Frame {
	return Frame{
		Names:      p.names,
		Rotation:   p.rotation,
		WheelColor: p.wheelColor,
		TextColor:  p.textColor,
	}
}

// AddNames appends every non-blank line of raw and returns how many were added.
func (p *Picker) AddNames(raw string) (int, error) {
	if err := p.editable(); err != nil {
		return 0, err
	}
	added := ParseNames(raw)
	if len(added) == 0 {
		return 0, nil
	}
	p.names = append(p.names, added...)
	p.namesChanged()
	log.Debug().Int("added", len(added)).Int("total", len(p.names)).Msg("names added")
	return len(added), nil
}

// ReplaceNames swaps the whole list.
func (p *Picker) ReplaceNames(names []string) error {
	if err := p.editable(); err != nil {
		return err
	}
	p.replaceNames(names)
	return nil
}

// QueueNames replaces the list as soon as the picker is idle: now if it
// already is, otherwise once the current spin and its winner are resolved.
// A later call supersedes an earlier queued list.
func (p *Picker) QueueNames(names []string) {
	if p.stage == StageIdle {
		p.pending = nil
		p.replaceNames(names)
		return
	}
	p.pending = append([]string{}, names...)
	log.Debug().Int("total", len(names)).Str("stage", p.stage.String()).Msg("names queued")
}

// Pending reports whether a queued list is waiting for the picker to idle.
func (p *Picker) Pending() bool { return p.pending != nil }

func (p *Picker) replaceNames(names []string) {
	p.names = append([]string(nil), names...)
	p.namesChanged()
	log.Debug().Int("total", len(p.names)).Msg("names replaced")
}

// applyPending runs once the picker settles back in StageIdle.
func (p *Picker) applyPending() {
	if p.pending == nil {
		return
	}
	names := p.pending
	p.pending = nil
	p.replaceNames(names)
}

// editable rejects list edits while a spin or its winner is on screen.
func (p *Picker) editable() error {
	switch p.stage {
	case StageSpinning:
		return ErrSpinning
	case StageCelebrating, StageAnnouncing:
		return ErrAwaitingResolution
	}
	return nil
}

func (p *Picker) ClearNames() error {
	if err := p.editable(); err != nil {
		return err
	}
	p.names = nil
	p.namesChanged()
	log.Debug().Msg("names cleared")
	return nil
}

func (p *Picker) namesChanged() {
	p.view.SetSpinEnabled(p.CanSpin())
	p.view.Redraw()
}

func (p *Picker) SetWheelColor(c color.Color) {
	if c == nil {
		return
	}
	p.wheelColor = c
	p.view.Redraw()
}

func (p *Picker) SetTextColor(c color.Color) {
	if c == nil {
		return
	}
	p.textColor = c
	p.view.Redraw()
}

// SetSpinSeconds clamps n into the configured range and applies it to the next spin.
func (p *Picker) SetSpinSeconds(n int) int {
	p.spinSeconds = p.clampSeconds(n)
	return p.spinSeconds
}

func (p *Picker) clampSeconds(n int) int {
	return min(max(n, p.minSeconds), p.maxSeconds)
}

// Spin starts a new spin session and runs its first frame immediately.
func (p *Picker) Spin() error {
	switch p.stage {
	case StageSpinning:
		return ErrSpinning
	case StageCelebrating, StageAnnouncing:
		return ErrAwaitingResolution
	}
	if len(p.names) == 0 {
		return ErrNoNames
	}

	p.stage = StageSpinning
	p.view.SetSpinEnabled(false)
	p.sounds.Play(CueSpin)

	s := &session{
		id:       uuid.New(),
		start:    p.sched.Now(),
		turns:    drawTurns(p.rng, p.minTurns, p.maxTurns),
		duration: time.Duration(p.spinSeconds) * time.Second,
	}
	p.session = s
	log.Debug().
		Str("session_id", s.id.String()).
		Float64("turns", s.turns).
		Dur("duration", s.duration).
		Int("names", len(p.names)).
		Msg("spin started")

	p.step(s)
	return nil
}

func drawTurns(rng *rand.Rand, minTurns, maxTurns float64) float64 {
	return minTurns + rng.Float64()*(maxTurns-minTurns)
}

// PickInstant settles a spin without animating it. Turns are drawn from rng
// the same way Spin draws them and the winner is the name under the pointer
// at the final rotation.
func PickInstant(names []string, rng *rand.Rand, minTurns, maxTurns float64) (winner string, rotation float64, err error) {
	if len(names) == 0 {
		return "", 0, ErrNoNames
	}
	if maxTurns <= 0 {
		def := DefaultOptions()
		minTurns, maxTurns = def.MinTurns, def.MaxTurns
	}
	rotation = drawTurns(rng, minTurns, maxTurns) * fullTurn
	idx, _ := WinnerIndex(rotation, len(names))
	return names[idx], rotation, nil
}

func (p *Picker) step(s *session) {
	if p.session != s {
		return
	}
	progress := 1.0
	if s.duration > 0 {
		progress = clamp01(float64(p.sched.Now().Sub(s.start)) / float64(s.duration))
	}
	p.rotation = s.turns * fullTurn * EaseOutCubic(progress)
	p.view.Redraw()

	if progress < 1 {
		p.sched.NextFrame(func() { p.step(s) })
		return
	}
	p.finishSpin(s)
}

func (p *Picker) finishSpin(s *session) {
	p.session = nil
	p.stage = StageIdle
	p.view.SetSpinEnabled(p.CanSpin())
	p.sounds.Stop(CueSpin)

	idx, ok := WinnerIndex(p.rotation, len(p.names))
	if !ok {
		log.Warn().Str("session_id", s.id.String()).Msg("spin finished with no names")
		p.applyPending()
		return
	}
	p.announce(p.names[idx], s)
}

func (p *Picker) announce(winner string, s *session) {
	p.winner, p.hasWinner = winner, true
	p.stage = StageCelebrating

	p.view.ShowCelebration(winner)
	p.confetti.Start()
	p.sounds.Play(CueCelebration)
	p.view.SetScrollLocked(true)

	log.Info().
		Str("session_id", s.id.String()).
		Str("winner", winner).
		Float64("rotation", math.Mod(p.rotation, fullTurn)).
		Msg("winner picked")

	p.sched.After(p.display, func() {
		if p.stage != StageCelebrating || p.winner != winner {
			return
		}
		p.view.HideCelebration()
		p.confetti.Stop()
		p.stage = StageAnnouncing
		p.view.ShowAnnouncement(winner)
		p.sounds.Play(CueWinner)
		p.view.SetScrollLocked(true)
	})
}

// RemoveWinner drops every name equal to the announced winner and returns to idle.
func (p *Picker) RemoveWinner() error {
	if !p.resolvable() {
		return ErrNoWinner
	}
	before := len(p.names)
	p.names = RemoveName(p.names, p.winner)
	log.Debug().Str("winner", p.winner).Int("removed", before-len(p.names)).Msg("winner removed")
	p.view.Redraw()
	p.resolve()
	return nil
}

// KeepWinner dismisses the announcement without touching the list.
func (p *Picker) KeepWinner() error {
	if !p.resolvable() {
		return ErrNoWinner
	}
	log.Debug().Str("winner", p.winner).Msg("winner kept")
	p.resolve()
	return nil
}

func (p *Picker) resolvable() bool {
	return p.hasWinner && p.stage == StageAnnouncing
}

func (p *Picker) resolve() {
	p.view.HideAnnouncement()
	p.view.SetScrollLocked(false)
	p.hasWinner = false
	p.stage = StageIdle
	p.view.SetSpinEnabled(p.CanSpin())
	p.applyPending()
}
