package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/ecsdemos/assets"
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/entity"
	"github.com/milk9111/ecsdemos/ecs/system"
	"github.com/milk9111/ecsdemos/game"
	"github.com/milk9111/ecsdemos/prefabs"
	"github.com/milk9111/ecsdemos/ui"
)

func main() {
	cfg := game.DefaultWindowConfig()
	flag.StringVar(&cfg.Title, "title", "ui layout", "window title")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "allow resizing the window")
	flag.BoolVar(&cfg.FitToCanvas, "fit", cfg.FitToCanvas, "size the screen to the window or browser canvas")
	flag.BoolVar(&cfg.Debug, "debug", false, "print frame counters")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	wheelUnit := flag.String("wheel-unit", "line", "how to read wheel deltas: line or pixel")
	flag.Parse()

	unit, err := parseWheelUnit(*wheelUnit)
	if err != nil {
		log.Fatal(err)
	}

	spec, err := prefabs.LoadUISpec()
	if err != nil {
		log.Fatal(err)
	}

	app := game.NewApp(cfg)
	scroll := system.NewScrollSystem(spec.Scroll.LinePixels)
	scene := &uiScene{}

	app.AddStartup(func(ctx *game.Context) error {
		if _, err := entity.NewCamera(ctx.World); err != nil {
			return err
		}
		fonts, err := ui.LoadFonts()
		if err != nil {
			return err
		}
		images, err := assets.LoadImages(assets.Logo)
		if err != nil {
			return err
		}
		scene.ctx = ctx
		scene.res = entity.UIResources{Fonts: fonts, Images: images}
		return scene.build(spec)
	})

	app.AddSystem(system.NewInputSystem(unit))
	app.AddSystem(system.NewLayoutSyncSystem())
	app.AddSystem(scroll)
	app.AddSystem(system.NewScrollApplySystem())

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Fatalf("watch %s: %v", prefabs.Dir, err)
		}
		defer watcher.Close()

		reload := system.NewWatcherReloadSystem(watcher)
		reload.Handle(prefabs.UIFile, func(*ecs.World) error {
			next, err := prefabs.LoadUISpec()
			if err != nil {
				return err
			}
			if err := scene.build(next); err != nil {
				return err
			}
			scroll.LinePixels = next.Scroll.LinePixels
			return nil
		})
		app.AddSystem(reload)
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// uiScene owns the built UI tree so a reload can replace it.
type uiScene struct {
	ctx  *game.Context
	res  entity.UIResources
	tree *entity.UITree
}

func (s *uiScene) build(spec *prefabs.UISpec) error {
	if s.ctx == nil {
		return fmt.Errorf("ui scene: not started")
	}
	tree, err := entity.BuildUITree(s.ctx.World, spec.Root, s.res)
	if err != nil {
		return err
	}
	s.tree.Destroy(s.ctx.World)
	s.tree = tree
	s.ctx.UI = &ebitenui.UI{Container: tree.Root}
	s.ctx.ClearColor = spec.ClearColor.Or(s.ctx.ClearColor)
	return nil
}

func parseWheelUnit(s string) (ecs.MouseScrollUnit, error) {
	switch s {
	case "line":
		return ecs.MouseScrollLine, nil
	case "pixel":
		return ecs.MouseScrollPixel, nil
	default:
		return 0, fmt.Errorf("unknown wheel unit %q", s)
	}
}
