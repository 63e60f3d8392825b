// Package particles implements the particle emitter and the short-lived
// particles it spawns. An emitter owns its configuration, the collection
// of currently-live particles, and a repeating spawn schedule; each
// particle owns its node, its trajectory, and its destruction logic.
//
// Everything runs on one cooperative execution context: the host loop
// calls Emitter.Update and the shared tween engine's Update once per
// frame, and all lifecycle callbacks fire synchronously from there. No
// locking is performed; callers that drive emitters from multiple
// goroutines must serialize access themselves.
package particles

import (
	"log"

	"github.com/gonewx/sparks/pkg/scene"
	"github.com/gonewx/sparks/pkg/tween"
)

// spawnSchedule is the repeating spawn timer. It exists only while the
// emitter is running; remaining counts the spawns left for a bounded
// schedule, or Unbounded.
type spawnSchedule struct {
	interval  float64
	remaining int
	elapsed   float64
}

// Emitter spawns particles on a repeating schedule and owns the
// collection of live particles. Its states are stopped and running; the
// schedule exists exactly while the emitter is running.
type Emitter struct {
	cfg       EmitterConfig
	particles []*Particle
	spawned   int
	sched     *spawnSchedule
}

// NewEmitter validates cfg eagerly, applies defaults, and returns a
// stopped emitter with an empty live collection. Invalid configuration
// fails with ErrInvalidConfig and no emitter is produced.
func NewEmitter(cfg EmitterConfig) (*Emitter, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	return &Emitter{cfg: cfg}, nil
}

// Running reports whether the spawn schedule is active.
func (e *Emitter) Running() bool {
	return e.sched != nil
}

// Start installs the repeating spawn schedule and performs one immediate
// synchronous spawn, so the first particle appears without waiting a full
// interval; the immediate spawn counts against a bounded amount. callback,
// if non-nil, runs after the first spawn. Starting a running emitter is a
// no-op: no reset, no double-schedule.
func (e *Emitter) Start(callback func()) {
	if e.sched != nil {
		return
	}

	e.sched = &spawnSchedule{
		interval:  e.cfg.SpawnInterval,
		remaining: e.cfg.ParticlesAmount,
	}
	e.tickSchedule()

	if callback != nil {
		callback()
	}
}

// Stop cancels the spawn schedule and resets the spawn counter. Particles
// already spawned keep animating to completion. callback, if non-nil,
// runs after the transition. Stopping a stopped emitter is a no-op.
func (e *Emitter) Stop(callback func()) {
	if e.sched == nil {
		return
	}

	e.sched = nil
	e.spawned = 0

	if callback != nil {
		callback()
	}
}

// Clear destroys every currently-live particle with the given fade
// duration. It does not alter the running state, the spawn counter, or
// the schedule.
func (e *Emitter) Clear(duration float64) {
	// Destroy mutates e.particles; iterate a snapshot.
	live := make([]*Particle, len(e.particles))
	copy(live, e.particles)
	for _, p := range live {
		p.Destroy(duration)
	}
}

// Update advances the spawn schedule by dt seconds, firing one spawn per
// elapsed interval. Stopped emitters ignore Update. The host loop must
// also advance the shared tween engine for particles to move.
func (e *Emitter) Update(dt float64) {
	if e.sched == nil {
		return
	}

	e.sched.elapsed += dt
	for e.sched != nil && e.sched.elapsed >= e.sched.interval {
		e.sched.elapsed -= e.sched.interval
		e.tickSchedule()
	}
}

// tickSchedule fires one scheduled spawn and retires a bounded schedule
// that has reached its count. Exhaustion returns the emitter to the
// stopped state without resetting the spawn counter.
func (e *Emitter) tickSchedule() {
	e.SpawnParticle()

	if e.sched == nil {
		return
	}
	if e.sched.remaining > 0 {
		e.sched.remaining--
		if e.sched.remaining == 0 {
			e.sched = nil
		}
	}
}

// SpawnParticle constructs a particle from the emitter's particle
// options, appends it to the live collection, spawns it, and increments
// the spawn counter. At the spawn that reaches a bounded ParticlesAmount
// it fires OnAllParticlesSpawned, exactly once: the counter equality
// check keeps later manual spawns from re-firing it. The new particle is
// returned, so callers can spawn manually independent of the schedule.
func (e *Emitter) SpawnParticle() *Particle {
	p, err := NewParticle(e, e.cfg.ParticleOptions)
	if err != nil {
		// Particle options were validated with the emitter config, so
		// this is unreachable short of config mutation after creation.
		log.Printf("[Emitter] dropping spawn, particle construction failed: %v", err)
		return nil
	}

	e.particles = append(e.particles, p)
	p.Spawn()
	e.spawned++

	if e.cfg.ParticlesAmount != Unbounded &&
		e.spawned == e.cfg.ParticlesAmount &&
		e.cfg.OnAllParticlesSpawned != nil {
		e.cfg.OnAllParticlesSpawned()
	}
	return p
}

// Particles returns the live collection: particles that have not begun
// destruction, though some may still be fading out visually elsewhere.
// The slice is owned by the emitter; callers must not mutate it.
func (e *Emitter) Particles() []*Particle {
	return e.particles
}

// Spawned returns the spawn counter. Stop resets it to zero.
func (e *Emitter) Spawned() int {
	return e.spawned
}

// Host implementation: the narrow view particles hold on their emitter.

// Origin returns the container particles are created in.
func (e *Emitter) Origin() scene.Container {
	return e.cfg.Origin
}

// Animator returns the shared tween engine.
func (e *Emitter) Animator() *tween.Engine {
	return e.cfg.Animator
}

// Direction returns the central travel angle in degrees.
func (e *Emitter) Direction() float64 {
	return e.cfg.Direction
}

// Spread returns the angular randomization range in degrees.
func (e *Emitter) Spread() float64 {
	return e.cfg.Spread
}

// Distance returns the travel distance in pixels.
func (e *Emitter) Distance() float64 {
	return e.cfg.Distance
}

// ParticleRemoved removes p from the live collection by identity. The
// second removal attempt for the same particle finds nothing, which is
// not an error; destroy stays idempotent.
func (e *Emitter) ParticleRemoved(p *Particle) {
	for i, candidate := range e.particles {
		if candidate == p {
			e.particles = append(e.particles[:i], e.particles[i+1:]...)
			return
		}
	}
}
