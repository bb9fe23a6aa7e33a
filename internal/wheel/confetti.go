package wheel

import (
	"image/color"
	"math/rand"
	"time"
)

// ConfettiOptions sizes the celebration effect.
type ConfettiOptions struct {
	Burst    int
	Cap      int
	Interval time.Duration
	Lifetime time.Duration
	MaxDelay time.Duration
	MinSize  float64
	MaxSize  float64
	Palette  []color.Color
}

// DefaultConfettiOptions mirrors the classic page effect: 150 up front,
// one more every 50ms up to 300 live pieces.
func DefaultConfettiOptions() ConfettiOptions {
	return ConfettiOptions{
		Burst:    150,
		Cap:      300,
		Interval: 50 * time.Millisecond,
		Lifetime: 5 * time.Second,
		MaxDelay: 2 * time.Second,
		MinSize:  5,
		MaxSize:  15,
		Palette: []color.Color{
			color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
			color.RGBA{R: 0xFF, A: 0xFF},
			color.RGBA{G: 0xFF, A: 0xFF},
			color.RGBA{B: 0xFF, A: 0xFF},
			color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF},
			color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF},
			color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF},
		},
	}
}

// Particle is one confetti piece. X is a fraction of the surface width.
type Particle struct {
	ID     uint64
	X      float64
	Delay  time.Duration
	Size   float64
	Color  color.Color
	Round  bool
	Born   time.Time
	Expire time.Duration
}

// Fall reports how far through its fall the particle is at now, in [0,1].
// It is 0 until the particle's delay has passed.
func (p Particle) Fall(now time.Time, lifetime time.Duration) float64 {
	if lifetime <= 0 {
		return 1
	}
	elapsed := now.Sub(p.Born) - p.Delay
	return clamp01(float64(elapsed) / float64(lifetime))
}

type liveParticle struct {
	Particle
	cancel func()
}

// Confetti spawns and expires particles on a Scheduler.
type Confetti struct {
	opts   ConfettiOptions
	sched  Scheduler
	rng    *rand.Rand
	live   []*liveParticle
	nextID uint64
	stop   func()
}

func NewConfetti(sched Scheduler, rng *rand.Rand, opts ConfettiOptions) *Confetti {
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultConfettiOptions().Palette
	}
	if opts.MaxSize < opts.MinSize {
		opts.MaxSize = opts.MinSize
	}
	return &Confetti{opts: opts, sched: sched, rng: rng}
}

// Start fires the opening burst and begins the trickle. Starting an
// active effect restarts the trickle without clearing live pieces.
func (c *Confetti) Start() {
	if c.stop != nil {
		c.stop()
	}
	for i := 0; i < c.opts.Burst && len(c.live) < c.opts.Cap; i++ {
		c.spawn()
	}
	c.stop = c.sched.Every(c.opts.Interval, func() {
		if len(c.live) < c.opts.Cap {
			c.spawn()
		}
	})
}

// Stop cancels the trickle and removes every live particle.
func (c *Confetti) Stop() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	for _, p := range c.live {
		p.cancel()
	}
	c.live = nil
}

func (c *Confetti) Active() bool { return c.stop != nil }

func (c *Confetti) Len() int { return len(c.live) }

func (c *Confetti) Lifetime() time.Duration { return c.opts.Lifetime }

// Particles returns a copy of the live set.
func (c *Confetti) Particles() []Particle {
	out := make([]Particle, len(c.live))
	for i, p := range c.live {
		out[i] = p.Particle
	}
	return out
}

func (c *Confetti) spawn() {
	c.nextID++
	var delay time.Duration
	if c.opts.MaxDelay > 0 {
		delay = time.Duration(c.rng.Int63n(int64(c.opts.MaxDelay)))
	}
	p := &liveParticle{Particle: Particle{
		ID:     c.nextID,
		X:      c.rng.Float64(),
		Delay:  delay,
		Size:   c.opts.MinSize + c.rng.Float64()*(c.opts.MaxSize-c.opts.MinSize),
		Color:  c.opts.Palette[c.rng.Intn(len(c.opts.Palette))],
		Round:  c.rng.Float64() > 0.5,
		Born:   c.sched.Now(),
		Expire: c.opts.Lifetime + delay,
	}}
	id := p.ID
	p.cancel = c.sched.After(p.Expire, func() { c.remove(id) })
	c.live = append(c.live, p)
}

func (c *Confetti) remove(id uint64) {
	for i, p := range c.live {
		if p.ID == id {
			c.live = append(c.live[:i], c.live[i+1:]...)
			return
		}
	}
}
