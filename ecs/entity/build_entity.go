package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
	"github.com/milk9111/ecsdemos/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"camera_tag": addCameraTag,
	"input":      addInput,
	"transform":  addTransform,
	"sprite":     addSprite,
	"camera":     addCamera,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"input",
	"transform",
	"sprite",
	"camera",
}

// BuildEntity creates an entity from a prefab's component map. The entity is
// destroyed again if any component fails to build.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	scaleX, scaleY := spec.ScaleX, spec.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: spec.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("sprite size %vx%v is negative", spec.Width, spec.Height)
	}
	width, height := spec.Width, spec.Height
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  spec.Color.Or(color.White),
		Width:  width,
		Height: height,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return err
	}
	viewHeight := spec.ViewHeight
	if viewHeight <= 0 {
		viewHeight = prefabs.DefaultViewHeight
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		ViewHeight: viewHeight,
		ClearColor: spec.ClearColor.Or(color.Black),
	})
}
