package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
	"github.com/milk9111/ecsdemos/ecs/entity"
	"github.com/milk9111/ecsdemos/ecs/system"
	"github.com/milk9111/ecsdemos/game"
	"github.com/milk9111/ecsdemos/prefabs"
)

func main() {
	cfg := game.DefaultWindowConfig()
	flag.StringVar(&cfg.Title, "title", "sprite movement", "window title")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "allow resizing the window")
	flag.BoolVar(&cfg.FitToCanvas, "fit", cfg.FitToCanvas, "size the screen to the window or browser canvas")
	flag.BoolVar(&cfg.Debug, "debug", false, "print frame counters")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	flag.Parse()

	spec, err := prefabs.LoadMovementSpec()
	if err != nil {
		log.Fatal(err)
	}

	app := game.NewApp(cfg)
	movement := system.NewPlayerMovementSystem(spec.MoveSpeed)

	app.AddStartup(func(ctx *game.Context) error {
		if _, err := entity.SpawnScene(ctx.World, spec.Entities); err != nil {
			return fmt.Errorf("spawn %s: %w", prefabs.MovementFile, err)
		}
		if cam, ok := ctx.World.First(component.CameraComponent.Kind()); ok {
			if c, ok := ecs.Get(ctx.World, cam, component.CameraComponent.Kind()); ok {
				ctx.ClearColor = c.ClearColor
			}
		}
		return nil
	})

	app.AddSystem(system.NewInputSystem(ecs.MouseScrollLine))
	app.AddSystem(movement)
	app.AddSystem(system.NewRenderSystem())

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Fatalf("watch %s: %v", prefabs.Dir, err)
		}
		defer watcher.Close()

		reload := system.NewWatcherReloadSystem(watcher)
		reload.Handle(prefabs.MovementFile, func(*ecs.World) error {
			next, err := prefabs.LoadMovementSpec()
			if err != nil {
				return err
			}
			movement.Speed = next.MoveSpeed
			return nil
		})
		app.AddSystem(reload)
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
