// Package config loads emitter presets from YAML files. A preset is a
// declarative emitter description: spawn parameters, trajectory, and
// particle appearance, with scale and lifetime given as value strings
// ("1.5" or "[0.5 2]" for a per-particle random range).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/sparks/internal/valuespec"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/scene"
	"github.com/gonewx/sparks/pkg/tween"
)

// ParticlePreset is the particle section of a preset.
type ParticlePreset struct {
	// Scale and Lifetime are value strings parsed by internal/valuespec:
	// a fixed number or a "[min max]" range sampled per particle.
	Scale    string `yaml:"scale"`
	Lifetime string `yaml:"lifetime"`

	MainClass     string   `yaml:"mainClass"`
	RandomClasses []string `yaml:"randomClasses"`

	// DestroyDuration is the fade-out duration in seconds.
	DestroyDuration float64 `yaml:"destroyDuration"`

	// Easing names the movement easing (see tween.EasingByName); unknown
	// names fall back to linear.
	Easing string `yaml:"easing"`

	// Curve is a keyframe value string ("0,0 0.3,0.9 1,1", optionally
	// prefixed with an interpolation keyword). When it parses to a
	// curve it overrides Easing for the movement tween.
	Curve string `yaml:"curve"`

	// Delay postpones each particle's movement by the given seconds.
	Delay float64 `yaml:"delay"`
}

// Preset is one named emitter description.
type Preset struct {
	Name            string         `yaml:"name"`
	ParticlesAmount int            `yaml:"particlesAmount"`
	SpawnInterval   float64        `yaml:"spawnInterval"`
	Distance        float64        `yaml:"distance"`
	Direction       float64        `yaml:"direction"`
	Spread          float64        `yaml:"spread"`
	Particle        ParticlePreset `yaml:"particle"`
}

// presetFile is the YAML document root.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets loads every preset from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	presets, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// ParsePresets parses a YAML preset document and validates it.
func ParsePresets(data []byte) ([]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}
	if err := validatePresets(file.Presets); err != nil {
		return nil, fmt.Errorf("invalid preset file: %w", err)
	}
	return file.Presets, nil
}

// validatePresets rejects unnamed and duplicate presets. Numeric ranges
// are left to the emitter's own eager validation.
func validatePresets(presets []Preset) error {
	if len(presets) == 0 {
		return fmt.Errorf("no presets defined")
	}
	seen := make(map[string]bool, len(presets))
	for i, p := range presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// EmitterConfig converts the preset into an emitter configuration bound
// to the given container and tween engine.
func (p Preset) EmitterConfig(origin scene.Container, animator *tween.Engine) particles.EmitterConfig {
	curve, interpolation := curveFromSpec(p.Particle.Curve)
	return particles.EmitterConfig{
		Origin:          origin,
		Animator:        animator,
		ParticlesAmount: p.ParticlesAmount,
		SpawnInterval:   p.SpawnInterval,
		Distance:        p.Distance,
		Direction:       p.Direction,
		Spread:          p.Spread,
		ParticleOptions: particles.ParticleConfig{
			Scale:           scalarFromSpec(p.Particle.Scale),
			Lifetime:        scalarFromSpec(p.Particle.Lifetime),
			MainClass:       p.Particle.MainClass,
			RandomClasses:   p.Particle.RandomClasses,
			DestroyDuration: p.Particle.DestroyDuration,
			TweenOptions: tween.Options{
				Easing:             tween.EasingByName(p.Particle.Easing),
				Delay:              p.Particle.Delay,
				Curve:              curve,
				CurveInterpolation: interpolation,
			},
		},
	}
}

// scalarFromSpec compiles a value string into a particle Scalar: empty
// stays unset (the emitter default applies), a fixed number stays fixed,
// and a range becomes a generator sampled once per particle.
func scalarFromSpec(s string) particles.Scalar {
	if s == "" {
		return particles.Scalar{}
	}
	min, max, _, _ := valuespec.Parse(s)
	if min == max {
		return particles.Fixed(min)
	}
	return particles.Generated(func() float64 {
		return valuespec.RandomInRange(min, max)
	})
}

// curveFromSpec compiles a keyframe value string into a tween curve.
// Strings without keyframes yield nil, leaving easing in effect.
func curveFromSpec(s string) ([]tween.Keyframe, string) {
	if s == "" {
		return nil, ""
	}
	_, _, keyframes, interpolation := valuespec.Parse(s)
	return keyframes, interpolation
}
