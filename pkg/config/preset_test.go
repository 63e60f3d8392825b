package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/scene"
	"github.com/gonewx/sparks/pkg/tween"
)

const samplePresetYAML = `
presets:
  - name: fountain
    particlesAmount: -1
    spawnInterval: 0.05
    distance: 220
    direction: 270
    spread: 40
    particle:
      scale: "[0.5 1.5]"
      lifetime: "1.2"
      mainClass: spark
      randomClasses: [spark--gold, spark--white]
      destroyDuration: 0.3
      easing: OutCubic
  - name: burst
    particlesAmount: 12
    spawnInterval: 0.01
    distance: 90
    spread: 360
    particle:
      lifetime: "0.6"
      mainClass: ember
`

func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresetYAML))
	if err != nil {
		t.Fatalf("ParsePresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("preset count: got %d, want 2", len(presets))
	}

	fountain := presets[0]
	if fountain.Name != "fountain" || fountain.Direction != 270 || fountain.Spread != 40 {
		t.Errorf("fountain fields: %+v", fountain)
	}
	if fountain.Particle.Scale != "[0.5 1.5]" {
		t.Errorf("fountain scale spec: got %q", fountain.Particle.Scale)
	}
	if len(fountain.Particle.RandomClasses) != 2 {
		t.Errorf("fountain random classes: got %v", fountain.Particle.RandomClasses)
	}

	burst := presets[1]
	if burst.ParticlesAmount != 12 || burst.Particle.MainClass != "ember" {
		t.Errorf("burst fields: %+v", burst)
	}
}

func TestParsePresets_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty document", "presets: []"},
		{"missing name", "presets:\n  - spawnInterval: 0.5"},
		{"duplicate name", "presets:\n  - name: a\n  - name: a"},
		{"malformed yaml", "presets: ["},
	}

	for _, tc := range cases {
		if _, err := ParsePresets([]byte(tc.yaml)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(path, []byte(samplePresetYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("preset count: got %d, want 2", len(presets))
	}

	if _, err := LoadPresets(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

// TestPreset_EmitterConfig verifies the conversion wires a working
// emitter: range scales sample within bounds and fixed lifetimes apply.
func TestPreset_EmitterConfig(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresetYAML))
	if err != nil {
		t.Fatal(err)
	}

	stage := scene.NewStage(200, 200)
	engine := tween.NewEngine()
	cfg := presets[0].EmitterConfig(stage, engine)

	e, err := particles.NewEmitter(cfg)
	if err != nil {
		t.Fatalf("NewEmitter from preset: %v", err)
	}

	for i := 0; i < 20; i++ {
		p := e.SpawnParticle()
		if p.Scale() < 0.5 || p.Scale() > 1.5 {
			t.Fatalf("scale %v outside the [0.5 1.5] preset range", p.Scale())
		}
		if p.Lifetime() != 1.2 {
			t.Fatalf("lifetime: got %v, want 1.2", p.Lifetime())
		}
		if classes := p.Node().Classes(); classes[0] != "spark" {
			t.Fatalf("main class: got %v", classes)
		}
	}
}

// TestPreset_CurveOverridesEasing verifies a keyframe value string in
// the curve field reaches the movement tween options.
func TestPreset_CurveOverridesEasing(t *testing.T) {
	stage := scene.NewStage(100, 100)
	engine := tween.NewEngine()

	p := Preset{Name: "curved"}
	p.Particle.Curve = "EaseOut 0,0 0.6,0.8 1,1"
	cfg := p.EmitterConfig(stage, engine)

	opts := cfg.ParticleOptions.TweenOptions
	if len(opts.Curve) != 3 {
		t.Fatalf("curve keyframes: got %d, want 3", len(opts.Curve))
	}
	if opts.Curve[1].Time != 0.6 || opts.Curve[1].Value != 0.8 {
		t.Errorf("middle keyframe: got %+v", opts.Curve[1])
	}
	if opts.CurveInterpolation != "EaseOut" {
		t.Errorf("interpolation: got %q, want EaseOut", opts.CurveInterpolation)
	}

	// Non-curve strings leave the easing path untouched.
	plain := Preset{Name: "plain"}
	plain.Particle.Easing = "OutQuad"
	if got := plain.EmitterConfig(stage, engine).ParticleOptions.TweenOptions; got.Curve != nil {
		t.Errorf("plain preset grew a curve: %+v", got.Curve)
	}
}

// TestPreset_EmptyScalarKeepsDefaults verifies unset value strings leave
// the emitter defaults in force.
func TestPreset_EmptyScalarKeepsDefaults(t *testing.T) {
	stage := scene.NewStage(100, 100)
	engine := tween.NewEngine()

	p := Preset{Name: "plain"}
	e, err := particles.NewEmitter(p.EmitterConfig(stage, engine))
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	sp := e.SpawnParticle()
	if sp.Scale() != particles.DefaultScale {
		t.Errorf("scale: got %v, want default %v", sp.Scale(), particles.DefaultScale)
	}
	if sp.Lifetime() != particles.DefaultLifetime {
		t.Errorf("lifetime: got %v, want default %v", sp.Lifetime(), particles.DefaultLifetime)
	}
}
