package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
	"github.com/milk9111/ecsdemos/prefabs"
)

// RenderSystem draws every Transform+Sprite entity as a solid quad seen
// through the first camera. The camera shows ViewHeight world units
// vertically, centred on its transform, with y pointing up.
type RenderSystem struct {
	camEntity ecs.Entity
	pixel     *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// view is a camera projection for one screen size.
type view struct {
	camX, camY float64
	// scale is pixels per world unit.
	scale   float64
	centerX float64
	centerY float64
}

func newView(camX, camY, viewHeight float64, screenW, screenH int) view {
	if viewHeight <= 0 {
		viewHeight = prefabs.DefaultViewHeight
	}
	return view{
		camX:    camX,
		camY:    camY,
		scale:   float64(screenH) / viewHeight,
		centerX: float64(screenW) / 2,
		centerY: float64(screenH) / 2,
	}
}

func (v view) worldToScreen(x, y float64) (float64, float64) {
	return v.centerX + (x-v.camX)*v.scale, v.centerY - (y-v.camY)*v.scale
}

// Update re-resolves the camera when the cached entity is gone.
func (r *RenderSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	if r.camEntity.Valid() && !w.IsAlive(r.camEntity) {
		r.camEntity = 0
	}
}

// camera returns the position and view height of the first camera entity.
func (r *RenderSystem) camera(w *ecs.World) (x, y, viewHeight float64) {
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	if t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		viewHeight = cam.ViewHeight
	}
	return x, y, viewHeight
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	b := screen.Bounds()
	camX, camY, viewHeight := r.camera(w)
	v := newView(camX, camY, viewHeight, b.Dx(), b.Dy())

	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.SpriteComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, s *component.Sprite) {
			sx, sy := t.ScaleX, t.ScaleY
			if sx == 0 {
				sx = 1
			}
			if sy == 0 {
				sy = 1
			}
			px, py := v.worldToScreen(t.X, t.Y)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-0.5, -0.5)
			op.GeoM.Scale(s.Width*sx*v.scale, s.Height*sy*v.scale)
			// Screen y points down, so a counter-clockwise world rotation is negated.
			op.GeoM.Rotate(-t.Rotation)
			op.GeoM.Translate(px, py)
			if s.Color != nil {
				op.ColorScale.ScaleWithColor(s.Color)
			}
			screen.DrawImage(r.pixel, op)
		},
	)
}
