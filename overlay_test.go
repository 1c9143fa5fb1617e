package tannen

import "testing"

func TestOverlayConfigDefaults(t *testing.T) {
	c := OverlayConfig{}.withDefaults()
	if c.Width != 200 || c.Height != 280 {
		t.Errorf("default size = %dx%d, want 200x280", c.Width, c.Height)
	}
	if c.MarginRight != 50 || c.MarginBottom != 100 {
		t.Errorf("default margins = %d right, %d bottom, want 50, 100", c.MarginRight, c.MarginBottom)
	}
	if c.ShowFPS {
		t.Error("ShowFPS should default to off")
	}
}

func TestOverlayConfigExplicitValuesKept(t *testing.T) {
	c := OverlayConfig{Width: 300, Height: 400, MarginRight: 10, MarginBottom: 20}.withDefaults()
	if c.Width != 300 || c.Height != 400 || c.MarginRight != 10 || c.MarginBottom != 20 {
		t.Errorf("explicit config mangled: %+v", c)
	}
}

func TestWindowPosition(t *testing.T) {
	tests := []struct {
		name       string
		monW, monH int
		wantX      int
		wantY      int
	}{
		{"1080p", 1920, 1080, 1670, 700},
		{"4k", 3840, 2160, 3590, 1780},
		{"small laptop", 1366, 768, 1116, 388},
	}
	cfg := OverlayConfig{}.withDefaults()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := windowPosition(tt.monW, tt.monH, cfg)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("windowPosition(%d, %d) = (%d, %d), want (%d, %d)",
					tt.monW, tt.monH, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
