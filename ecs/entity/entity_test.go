package entity

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
	"github.com/milk9111/ecsdemos/prefabs"
)

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	for name, has := range map[string]bool{
		"player tag": ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"input":      ecs.Has(w, e, component.InputComponent.Kind()),
		"transform":  ecs.Has(w, e, component.TransformComponent.Kind()),
		"sprite":     ecs.Has(w, e, component.SpriteComponent.Kind()),
	} {
		if !has {
			t.Errorf("player is missing %s", name)
		}
	}
	if ecs.Has(w, e, component.CameraTagComponent.Kind()) {
		t.Errorf("player has a camera tag")
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 0 || tr.Y != 0 || tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Errorf("transform = %+v, want origin with unit scale", *tr)
	}

	sp, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if sp.Width != 1 || sp.Height != 1 {
		t.Errorf("sprite size = %vx%v, want 1x1", sp.Width, sp.Height)
	}
	want := color.NRGBA{R: 0x80, G: 0x80, B: 0xff, A: 0xff}
	if sp.Color != want {
		t.Errorf("sprite color = %v, want %v", sp.Color, want)
	}
}

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 2, -3)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 2 || tr.Y != -3 || tr.ScaleX != 1 {
		t.Errorf("transform = %+v", *tr)
	}
}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	if !ecs.Has(w, e, component.CameraTagComponent.Kind()) {
		t.Fatalf("camera tag missing")
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		t.Fatalf("camera component missing")
	}
	if cam.ViewHeight != 10 {
		t.Errorf("view height = %v, want 10", cam.ViewHeight)
	}
	if cam.ClearColor != (color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}) {
		t.Errorf("clear color = %v", cam.ClearColor)
	}
}

func TestSpawnMovementScene(t *testing.T) {
	spec, err := prefabs.LoadMovementSpec()
	if err != nil {
		t.Fatalf("LoadMovementSpec: %v", err)
	}
	w := ecs.NewWorld()
	ents, err := SpawnScene(w, spec.Entities)
	if err != nil {
		t.Fatalf("SpawnScene: %v", err)
	}
	if len(ents) != 2 {
		t.Fatalf("spawned %d entities, want 2", len(ents))
	}
	if got := len(w.Query(component.PlayerTagComponent.Kind())); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if _, ok := w.First(component.CameraTagComponent.Kind()); !ok {
		t.Errorf("no camera spawned")
	}
}

func TestBuildEntityErrors(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	files := map[string]string{
		"empty.yaml":    "name: empty\n",
		"unknown.yaml":  "components:\n  rigid_body: {}\n",
		"negative.yaml": "components:\n  sprite:\n    width: -1\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"empty.yaml", "unknown.yaml", "negative.yaml", "missing.yaml"} {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := BuildEntity(w, name); err == nil {
				t.Fatalf("expected error")
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Errorf("%d entities left after a failed build", n)
			}
		})
	}

	if _, err := BuildEntity(nil, "player.yaml"); err == nil {
		t.Errorf("expected error for nil world")
	}
}
