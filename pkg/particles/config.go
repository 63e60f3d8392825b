package particles

import (
	"errors"
	"fmt"

	"github.com/gonewx/sparks/pkg/scene"
	"github.com/gonewx/sparks/pkg/tween"
)

// ErrInvalidConfig is returned when an emitter or particle configuration
// fails eager validation. Construction fails entirely rather than
// producing a partially-initialized entity.
var ErrInvalidConfig = errors.New("invalid configuration")

// Unbounded is the ParticlesAmount sentinel for emitters that keep
// spawning until stopped.
const Unbounded = -1

// Configuration defaults applied by NewEmitter for zero-valued fields.
const (
	// DefaultSpawnInterval is the time between spawns in seconds.
	DefaultSpawnInterval = 0.5

	// DefaultDistance is the particle travel distance in pixels.
	DefaultDistance = 100.0

	// DefaultScale is the particle scale multiplier.
	DefaultScale = 1.0

	// DefaultLifetime is the particle movement duration in seconds.
	DefaultLifetime = 1.0
)

// Scalar is a per-particle configuration value that is either a fixed
// number or a generator sampled once per particle at construction time.
// The zero Scalar is "unset" and resolves to the field's default.
type Scalar struct {
	set      bool
	value    float64
	generate func() float64
}

// Fixed returns a Scalar holding a constant value.
func Fixed(v float64) Scalar {
	return Scalar{set: true, value: v}
}

// Generated returns a Scalar that samples fn once per particle. A nil fn
// yields the unset Scalar.
func Generated(fn func() float64) Scalar {
	if fn == nil {
		return Scalar{}
	}
	return Scalar{set: true, generate: fn}
}

// resolve evaluates the scalar, invoking the generator at most once.
// Unset scalars resolve to def.
func (s Scalar) resolve(def float64) float64 {
	if !s.set {
		return def
	}
	if s.generate != nil {
		return s.generate()
	}
	return s.value
}

// ParticleConfig describes how a single particle looks and behaves. It is
// stored on the emitter and applied to every particle it spawns.
type ParticleConfig struct {
	// Scale is the node scale multiplier, resolved once per particle.
	// Unset means DefaultScale.
	Scale Scalar

	// Lifetime is the movement duration in seconds, resolved once per
	// particle. Unset means DefaultLifetime.
	Lifetime Scalar

	// MainClass is the presentation class applied to every particle node.
	MainClass string

	// RandomClasses, if non-empty, contributes one additional class chosen
	// uniformly at random per particle.
	RandomClasses []string

	// TweenOptions is layered onto the movement animation request and may
	// override its defaults (easing, delay, even duration). The completion
	// callback is always the particle's own and cannot be overridden.
	TweenOptions tween.Options

	// DestroyDuration is the fade-out duration in seconds used when the
	// particle destroys itself after its movement completes. Zero removes
	// the node immediately with no animation.
	DestroyDuration float64

	// Lifecycle hooks, each invoked with the particle as argument and each
	// delivered at most once per particle. OnSpawn fires after the node is
	// placed and before movement starts; OnTweenComplete fires on natural
	// movement completion, before destruction begins; OnDestroy fires when
	// destruction is initiated, not after the fade-out completes.
	OnSpawn         func(*Particle)
	OnDestroy       func(*Particle)
	OnTweenComplete func(*Particle)
}

// EmitterConfig describes an emitter. Origin and Animator are required;
// every other field falls back to a documented default when zero.
type EmitterConfig struct {
	// Origin is the container particles are created in. Coordinates are
	// relative to it. Required.
	Origin scene.Container

	// Animator is the tween engine that drives movement and fade
	// animations. Required.
	Animator *tween.Engine

	// ParticlesAmount is the total number of particles to spawn, or
	// Unbounded (-1) for no limit. Zero applies the default, Unbounded.
	ParticlesAmount int

	// SpawnInterval is the number of seconds between spawns. Zero applies
	// DefaultSpawnInterval; negative values are rejected.
	SpawnInterval float64

	// Distance is the travel distance in pixels. Zero applies
	// DefaultDistance; negative values are rejected.
	Distance float64

	// Direction is the central travel angle in degrees, measured from the
	// positive X axis.
	Direction float64

	// Spread is the random travel-angle deviation in degrees: each
	// particle's angle is drawn from [Direction−Spread/2, Direction+Spread/2).
	Spread float64

	// OnAllParticlesSpawned is invoked exactly once, at the spawn that
	// reaches a bounded ParticlesAmount. Never invoked for unbounded
	// emitters.
	OnAllParticlesSpawned func()

	// ParticleOptions configures the particles this emitter spawns.
	ParticleOptions ParticleConfig
}

// validate checks ranges eagerly and normalizes zero-valued fields to
// their defaults. It returns the normalized config.
func (cfg EmitterConfig) validate() (EmitterConfig, error) {
	if cfg.Origin == nil {
		return cfg, fmt.Errorf("emitter requires an origin container: %w", ErrInvalidConfig)
	}
	if cfg.Animator == nil {
		return cfg, fmt.Errorf("emitter requires an animator: %w", ErrInvalidConfig)
	}
	if cfg.ParticlesAmount < Unbounded {
		return cfg, fmt.Errorf("particles amount %d out of range (must be >= -1): %w",
			cfg.ParticlesAmount, ErrInvalidConfig)
	}
	if cfg.SpawnInterval < 0 {
		return cfg, fmt.Errorf("spawn interval %v must be positive: %w",
			cfg.SpawnInterval, ErrInvalidConfig)
	}
	if cfg.Distance < 0 {
		return cfg, fmt.Errorf("distance %v must be non-negative: %w",
			cfg.Distance, ErrInvalidConfig)
	}
	if cfg.Spread < 0 {
		return cfg, fmt.Errorf("spread %v must be non-negative: %w",
			cfg.Spread, ErrInvalidConfig)
	}
	if cfg.ParticleOptions.DestroyDuration < 0 {
		return cfg, fmt.Errorf("destroy duration %v must be non-negative: %w",
			cfg.ParticleOptions.DestroyDuration, ErrInvalidConfig)
	}

	if cfg.ParticlesAmount == 0 {
		cfg.ParticlesAmount = Unbounded
	}
	if cfg.SpawnInterval == 0 {
		cfg.SpawnInterval = DefaultSpawnInterval
	}
	if cfg.Distance == 0 {
		cfg.Distance = DefaultDistance
	}
	return cfg, nil
}
