// Command particles is an interactive preset viewer for the sparks
// particle library.
//
// Usage:
//
//	go run ./cmd/particles [flags]
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
//	C           clear live particles with a short fade
//	R           clear live particles immediately
//	A           toggle auto-play on preset switch
//	H           toggle the help line
//	Q/Escape    quit
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/sparks/pkg/config"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/render"
	"github.com/gonewx/sparks/pkg/settings"
	"github.com/gonewx/sparks/pkg/tween"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

//go:embed presets.yaml
var embeddedPresets []byte

var (
	presetsFlag = flag.String("presets", "", "path to a presets YAML file")
	presetFlag  = flag.String("preset", "", "preset to show on startup")
)

// classPalette maps the particle classes used by the embedded presets
// to their display colors.
var classPalette = map[string]color.RGBA{
	"spark":         {R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	"spark--gold":   {R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
	"spark--white":  {R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	"spark--blue":   {R: 0x64, G: 0xb5, B: 0xf6, A: 0xff},
	"ember":         {R: 0xff, G: 0x70, B: 0x43, A: 0xff},
	"ember--red":    {R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	"ember--orange": {R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
	"flake":         {R: 0xe0, G: 0xf7, B: 0xfa, A: 0xff},
	"mote":          {R: 0xb0, G: 0xbe, B: 0xc5, A: 0xff},
	"mote--dim":     {R: 0x78, G: 0x90, B: 0x9c, A: 0xff},
	"mote--bright":  {R: 0xec, G: 0xef, B: 0xf1, A: 0xff},
}

type viewerGame struct {
	presets []config.Preset
	index   int

	stage    *render.Stage
	engine   *tween.Engine
	emitter  *particles.Emitter
	settings *settings.Manager

	status string
}

func newViewerGame(presets []config.Preset, sm *settings.Manager, startWith string) (*viewerGame, error) {
	g := &viewerGame{
		presets:  presets,
		stage:    render.NewStage(screenWidth, screenHeight),
		engine:   tween.NewEngine(),
		settings: sm,
	}
	for class, c := range classPalette {
		g.stage.MapClass(class, c)
	}
	if startWith != "" {
		for i, p := range presets {
			if p.Name == startWith {
				g.index = i
				break
			}
		}
	}
	if err := g.applyPreset(g.index); err != nil {
		return nil, err
	}
	return g, nil
}

// applyPreset tears down the current emitter and builds one from the
// preset at the given index.
func (g *viewerGame) applyPreset(index int) error {
	if g.emitter != nil {
		g.emitter.Stop(nil)
		g.emitter.Clear(0)
	}
	preset := g.presets[index]
	emitter, err := particles.NewEmitter(preset.EmitterConfig(g.stage, g.engine))
	if err != nil {
		return fmt.Errorf("preset %q: %w", preset.Name, err)
	}
	g.emitter = emitter
	g.index = index
	g.settings.Settings().LastPreset = preset.Name
	if g.settings.Settings().AutoPlay {
		g.emitter.Start(nil)
		g.status = "running"
	} else {
		g.status = "stopped"
	}
	return nil
}

func (g *viewerGame) switchPreset(delta int) {
	next := (g.index + delta + len(g.presets)) % len(g.presets)
	if err := g.applyPreset(next); err != nil {
		log.Printf("[Viewer] failed to apply preset: %v", err)
	}
}

func (g *viewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.switchPreset(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.switchPreset(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.emitter.Running() {
			g.emitter.Stop(func() { g.status = "stopped" })
		} else {
			g.emitter.Start(func() { g.status = "running" })
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.emitter.Clear(0.2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.emitter.Clear(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.settings.Settings().AutoPlay = !g.settings.Settings().AutoPlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.settings.Settings().ShowHelp = !g.settings.Settings().ShowHelp
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.emitter.Update(dt)
	g.engine.Update(dt)
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	g.stage.Draw(screen)

	preset := g.presets[g.index]
	msg := fmt.Sprintf("%s (%d/%d)  %s  live=%d spawned=%d",
		preset.Name, g.index+1, len(g.presets), g.status,
		len(g.emitter.Particles()), g.emitter.Spawned())
	if g.settings.Settings().ShowHelp {
		msg += "\nleft/right: preset  space: start/stop  c: clear  a: autoplay  h: help  q: quit"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
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
		log.Printf("[Viewer] failed to load presets: %v", err)
		os.Exit(1)
	}

	gm, err := gdata.Open(gdata.Config{AppName: "sparks_viewer"})
	if err != nil {
		log.Printf("[Viewer] Warning: persistent settings unavailable: %v", err)
		gm = nil
	}
	sm := settings.NewManager(gm)

	startWith := sm.Settings().LastPreset
	if *presetFlag != "" {
		startWith = *presetFlag
	}

	game, err := newViewerGame(presets, sm, startWith)
	if err != nil {
		log.Printf("[Viewer] %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sparks - particle preset viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("[Viewer] %v", err)
		os.Exit(1)
	}
	if err := sm.Save(); err != nil {
		log.Printf("[Viewer] Warning: failed to save settings: %v", err)
	}
}
