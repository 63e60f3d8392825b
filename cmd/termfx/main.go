// Command termfx runs particle presets in the terminal using tcell.
// It is the lightweight counterpart to cmd/particles for machines
// without a display.
//
// Usage:
//
//	go run ./cmd/termfx [flags]
//
// Flags:
//
//	-presets path   load presets from a YAML file instead of the
//	                embedded defaults
//	-preset name    preset to show on startup
//
// Controls:
//
//	Left/Right  switch preset
//	Space       start/stop the emitter
//	c           clear live particles
//	q/Escape    quit
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/sparks/pkg/config"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/termrender"
	"github.com/gonewx/sparks/pkg/tween"
)

// frameInterval is the simulation step. 30 fps is plenty for cell
// resolution.
const frameInterval = 33 * time.Millisecond

//go:embed presets.yaml
var embeddedPresets []byte

var (
	presetsFlag = flag.String("presets", "", "path to a presets YAML file")
	presetFlag  = flag.String("preset", "", "preset to show on startup")
)

var classPalette = map[string]tcell.Color{
	"spark":         tcell.ColorYellow,
	"spark--gold":   tcell.ColorOrange,
	"spark--white":  tcell.ColorWhite,
	"spark--blue":   tcell.ColorBlue,
	"ember":         tcell.ColorRed,
	"ember--red":    tcell.ColorDarkRed,
	"ember--orange": tcell.ColorOrange,
	"flake":         tcell.ColorLightCyan,
	"mote":          tcell.ColorGray,
	"mote--dim":     tcell.ColorDarkGray,
	"mote--bright":  tcell.ColorWhite,
}

type viewer struct {
	screen  tcell.Screen
	presets []config.Preset
	index   int

	stage   *termrender.Stage
	engine  *tween.Engine
	emitter *particles.Emitter
}

func newViewer(screen tcell.Screen, presets []config.Preset, startWith string) (*viewer, error) {
	v := &viewer{
		screen:  screen,
		presets: presets,
		stage:   termrender.NewStage(screen),
		engine:  tween.NewEngine(),
	}
	for class, c := range classPalette {
		v.stage.MapClass(class, c)
	}
	for i, p := range presets {
		if p.Name == startWith {
			v.index = i
			break
		}
	}
	if err := v.applyPreset(v.index); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *viewer) applyPreset(index int) error {
	if v.emitter != nil {
		v.emitter.Stop(nil)
		v.emitter.Clear(0)
	}
	preset := v.presets[index]
	emitter, err := particles.NewEmitter(preset.EmitterConfig(v.stage, v.engine))
	if err != nil {
		return fmt.Errorf("preset %q: %w", preset.Name, err)
	}
	v.emitter = emitter
	v.index = index
	v.emitter.Start(nil)
	return nil
}

func (v *viewer) switchPreset(delta int) {
	next := (v.index + delta + len(v.presets)) % len(v.presets)
	if err := v.applyPreset(next); err != nil {
		log.Printf("[TermFX] failed to apply preset: %v", err)
	}
}

// handleKey processes one key event and reports whether the viewer
// should keep running.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		v.switchPreset(-1)
	case tcell.KeyRight:
		v.switchPreset(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if v.emitter.Running() {
				v.emitter.Stop(nil)
			} else {
				v.emitter.Start(nil)
			}
		case 'c':
			v.emitter.Clear(0)
		}
	}
	return true
}

// run drives the simulation on a fixed ticker while a goroutine feeds
// terminal events through a channel.
func (v *viewer) run() {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	dt := frameInterval.Seconds()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			v.emitter.Update(dt)
			v.engine.Update(dt)
			v.stage.Draw()
		}
	}
}

func loadPresets() ([]config.Preset, error) {
	if *presetsFlag != "" {
		return config.LoadPresets(*presetsFlag)
	}
	return config.ParsePresets(embeddedPresets)
}

func main() {
	flag.Parse()

	presets, err := loadPresets()
	if err != nil {
		log.Printf("[TermFX] failed to load presets: %v", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("[TermFX] failed to create screen: %v", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Printf("[TermFX] failed to init screen: %v", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v, err := newViewer(screen, presets, *presetFlag)
	if err != nil {
		screen.Fini()
		log.Printf("[TermFX] %v", err)
		os.Exit(1)
	}
	v.run()
}
