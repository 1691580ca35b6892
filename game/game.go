package game

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/ecsdemos/ecs"
)

// WindowConfig is applied to the ebiten window before the run loop starts.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// FitToCanvas makes the logical screen follow the window (or browser
	// canvas) size instead of staying at Width x Height.
	FitToCanvas bool
	// Debug prints frame counters over the scene.
	Debug bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:       "ecs demo",
		Width:       1280,
		Height:      720,
		Resizable:   true,
		FitToCanvas: true,
	}
}

// Context is the state handed to startup callbacks.
type Context struct {
	World *ecs.World
	// UI is drawn over the world when set.
	UI           *ebitenui.UI
	ClearColor   color.Color
	ScreenWidth  int
	ScreenHeight int
}

// StartupFunc runs once before the first frame's systems.
type StartupFunc func(ctx *Context) error

// App is an ebiten.Game that runs startup callbacks once, then the world's
// systems every tick.
type App struct {
	cfg      WindowConfig
	ctx      *Context
	startups []StartupFunc
	started  bool
	frames   int
}

func NewApp(cfg WindowConfig) *App {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultWindowConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	return &App{
		cfg: cfg,
		ctx: &Context{
			World:        ecs.NewWorld(),
			ClearColor:   color.Black,
			ScreenWidth:  cfg.Width,
			ScreenHeight: cfg.Height,
		},
	}
}

func (a *App) AddStartup(fn StartupFunc) {
	if fn == nil {
		return
	}
	a.startups = append(a.startups, fn)
}

// AddSystem appends a per-frame system; systems run in the order added.
func (a *App) AddSystem(s ecs.System) {
	a.ctx.World.AddSystem(s)
}

func (a *App) Context() *Context {
	return a.ctx
}

func (a *App) World() *ecs.World {
	return a.ctx.World
}

// Run applies the window config and blocks in ebiten's run loop.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game: run: %w", err)
	}
	return nil
}

func (a *App) startup() error {
	for i, fn := range a.startups {
		if err := fn(a.ctx); err != nil {
			return fmt.Errorf("game: startup %d: %w", i, err)
		}
	}
	a.started = true
	return nil
}

func (a *App) Update() error {
	if !a.started {
		if err := a.startup(); err != nil {
			return err
		}
	}
	a.frames++

	a.ctx.World.Update()
	if a.ctx.UI != nil {
		a.ctx.UI.Update()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.ctx.ClearColor != nil {
		screen.Fill(a.ctx.ClearColor)
	}
	a.ctx.World.Draw(screen)
	if a.ctx.UI != nil {
		a.ctx.UI.Draw(screen)
	}
	if a.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", a.frames, ebiten.ActualFPS()))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.cfg.Width, a.cfg.Height
	if a.cfg.FitToCanvas && outsideWidth > 0 && outsideHeight > 0 {
		w, h = outsideWidth, outsideHeight
	}
	a.ctx.ScreenWidth, a.ctx.ScreenHeight = w, h
	return w, h
}
