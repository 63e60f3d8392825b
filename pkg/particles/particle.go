package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/sparks/pkg/geom"
	"github.com/gonewx/sparks/pkg/scene"
	"github.com/gonewx/sparks/pkg/tween"
)

// Host is the narrow emitter view a particle holds instead of a full
// back-pointer: the origin container, the shared animator, the trajectory
// parameters, and a removal notification. The Emitter implements it; the
// emitter keeps exclusive ownership of the live-particle collection.
type Host interface {
	Origin() scene.Container
	Animator() *tween.Engine
	Direction() float64
	Spread() float64
	Distance() float64

	// ParticleRemoved removes p from the host's live collection. Called
	// synchronously when p begins destruction; calling it again for the
	// same particle finds nothing to remove, which is not an error.
	ParticleRemoved(p *Particle)
}

// phase is the particle lifecycle state. Transitions run strictly forward
// (constructed → spawned → moving → destroying → removed), except that
// destruction may interrupt the moving phase.
type phase int

const (
	phaseConstructed phase = iota
	phaseSpawned
	phaseMoving
	phaseDestroying
	phaseRemoved
)

// Particle is one spawned, animated, self-destroying visual entity. It
// owns its node, its trajectory, and the handle to its in-flight movement
// animation; it holds at most one active movement animation at a time.
type Particle struct {
	host Host
	cfg  ParticleConfig

	// Resolved once at construction; generators are never re-invoked.
	scale    float64
	lifetime float64

	node      scene.Node
	start     geom.Vector
	end       geom.Vector
	moveTween *tween.Tween
	phase     phase
}

// NewParticle constructs a particle owned by host. Scale and Lifetime
// generators are evaluated here, exactly once. A nil host fails with
// ErrInvalidConfig.
func NewParticle(host Host, cfg ParticleConfig) (*Particle, error) {
	if host == nil {
		return nil, fmt.Errorf("particle requires an owning emitter: %w", ErrInvalidConfig)
	}
	if cfg.DestroyDuration < 0 {
		return nil, fmt.Errorf("destroy duration %v must be non-negative: %w",
			cfg.DestroyDuration, ErrInvalidConfig)
	}
	return &Particle{
		host:     host,
		cfg:      cfg,
		scale:    cfg.Scale.resolve(DefaultScale),
		lifetime: cfg.Lifetime.resolve(DefaultLifetime),
	}, nil
}

// Spawn creates the particle's node inside the host's origin container,
// computes its trajectory, places the node invisible at the start
// coordinate, fires OnSpawn, and starts the movement animation. Spawning
// more than once is a no-op.
func (p *Particle) Spawn() {
	if p.phase != phaseConstructed {
		return
	}

	origin := p.host.Origin()
	p.node = origin.NewNode()

	if p.cfg.MainClass != "" {
		p.node.AddClass(p.cfg.MainClass)
	}
	if len(p.cfg.RandomClasses) > 0 {
		p.node.AddClass(p.cfg.RandomClasses[rand.Intn(len(p.cfg.RandomClasses))])
	}

	// Uniform start point within the container, shifted by half the
	// node's rendered size so the node is roughly centered on it.
	boundsW, boundsH := origin.Bounds()
	nodeW, nodeH := p.node.Size()
	p.start = geom.Vector{
		X: rand.Float64()*boundsW - nodeW/2,
		Y: rand.Float64()*boundsH - nodeH/2,
	}

	// The random angle offset within the spread is floored to a whole
	// degree, so trajectories are discretized to integer angles. With a
	// zero spread every particle travels exactly along Direction.
	spread := p.host.Spread()
	angle := p.host.Direction() - spread/2 + math.Floor(rand.Float64()*spread)
	p.end = geom.Endpoint(p.start, p.host.Distance(), angle)

	p.node.SetVisible(false)
	p.host.Animator().Set(p.node, tween.Values{
		scene.PropX:       p.start.X,
		scene.PropY:       p.start.Y,
		scene.PropScale:   p.scale,
		scene.PropOpacity: 1,
	})

	p.phase = phaseSpawned
	if p.cfg.OnSpawn != nil {
		p.cfg.OnSpawn(p)
	}
	p.move()
}

// move makes the node visible and starts the movement animation from the
// start to the end coordinate over the particle's lifetime. The caller's
// TweenOptions are layered onto the request; the completion callback is
// always the particle's own: it fires OnTweenComplete and then begins
// destruction with the configured fade duration.
func (p *Particle) move() {
	if p.phase != phaseSpawned {
		return
	}

	p.node.SetVisible(true)
	p.phase = phaseMoving
	p.moveTween = p.host.Animator().Animate(
		p.node,
		tween.Values{scene.PropX: p.end.X, scene.PropY: p.end.Y},
		p.lifetime,
		p.cfg.TweenOptions,
		func() {
			p.moveTween = nil
			if p.cfg.OnTweenComplete != nil {
				p.cfg.OnTweenComplete(p)
			}
			p.Destroy(p.cfg.DestroyDuration)
		},
	)
}

// Destroy tears the particle down: it cancels any in-flight movement
// animation, synchronously removes the particle from the host's live
// collection, fires OnDestroy, and fades the node to invisible over
// duration seconds before removing it (duration <= 0 removes the node
// immediately). Destroying an already-destroyed particle is a harmless
// no-op, so OnDestroy is delivered exactly once.
func (p *Particle) Destroy(duration float64) {
	if p.phase == phaseDestroying || p.phase == phaseRemoved {
		return
	}

	// A constructed-but-never-spawned particle has no node to tear down.
	if p.phase == phaseConstructed {
		p.phase = phaseRemoved
		p.host.ParticleRemoved(p)
		if p.cfg.OnDestroy != nil {
			p.cfg.OnDestroy(p)
		}
		return
	}

	// Cancel movement before the fade starts so two animations never
	// drive the same node concurrently.
	if p.moveTween != nil {
		p.moveTween.Cancel()
		p.moveTween = nil
	}

	p.host.ParticleRemoved(p)
	p.phase = phaseDestroying
	if p.cfg.OnDestroy != nil {
		p.cfg.OnDestroy(p)
	}

	animator := p.host.Animator()
	if duration <= 0 {
		animator.Set(p.node, tween.Values{scene.PropOpacity: 0})
		p.node.Remove()
		p.phase = phaseRemoved
		return
	}

	animator.Animate(p.node, tween.Values{scene.PropOpacity: 0}, duration, tween.Options{}, func() {
		p.node.Remove()
		p.phase = phaseRemoved
	})
}

// Node returns the particle's visual node. Nil until Spawn.
func (p *Particle) Node() scene.Node {
	return p.node
}

// Start returns the spawn coordinate. Zero until Spawn.
func (p *Particle) Start() geom.Vector {
	return p.start
}

// End returns the trajectory endpoint. Zero until Spawn.
func (p *Particle) End() geom.Vector {
	return p.end
}

// Scale returns the scale resolved at construction.
func (p *Particle) Scale() float64 {
	return p.scale
}

// Lifetime returns the movement duration resolved at construction.
func (p *Particle) Lifetime() float64 {
	return p.lifetime
}

// Destroyed reports whether destruction has been initiated. The node may
// still be fading out.
func (p *Particle) Destroyed() bool {
	return p.phase == phaseDestroying || p.phase == phaseRemoved
}
