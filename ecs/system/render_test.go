package system

import "testing"

func TestViewWorldToScreen(t *testing.T) {
	// 800x600 screen showing 10 world units vertically: 60 pixels per unit.
	tests := []struct {
		name  string
		camX  float64
		camY  float64
		x, y  float64
		wantX float64
		wantY float64
	}{
		{name: "origin is centre", wantX: 400, wantY: 300},
		{name: "up is up", y: 1, wantX: 400, wantY: 240},
		{name: "right is right", x: 2, wantX: 520, wantY: 300},
		{name: "top edge", y: 5, wantX: 400, wantY: 0},
		{name: "camera offset", camX: 1, camY: -1, x: 1, y: -1, wantX: 400, wantY: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(tt.camX, tt.camY, 10, 800, 600)
			gotX, gotY := v.worldToScreen(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("worldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewScaleFollowsHeight(t *testing.T) {
	if got := newView(0, 0, 10, 1920, 1080).scale; got != 108 {
		t.Errorf("scale = %v, want 108", got)
	}
	// Width does not change the vertical extent.
	if got := newView(0, 0, 10, 400, 1080).scale; got != 108 {
		t.Errorf("narrow scale = %v, want 108", got)
	}
	if got := newView(0, 0, 0, 800, 600).scale; got != 60 {
		t.Errorf("default view height scale = %v, want 60", got)
	}
}
