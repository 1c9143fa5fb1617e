package tannen

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default surface geometry: a small portrait rectangle tucked against the
// bottom-right corner of the primary monitor.
const (
	defaultWidth        = 200
	defaultHeight       = 280
	defaultMarginRight  = 50
	defaultMarginBottom = 100

	fadeInSeconds = 1.2
)

// OverlayConfig describes the overlay surface. The zero value selects the
// reference geometry (200×280, 50px right / 100px bottom margins).
type OverlayConfig struct {
	Width        int
	Height       int
	MarginRight  int
	MarginBottom int
	// ShowFPS draws a frame-rate readout in the corner. Off by default.
	ShowFPS bool
}

func (c OverlayConfig) withDefaults() OverlayConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.MarginRight <= 0 {
		c.MarginRight = defaultMarginRight
	}
	if c.MarginBottom <= 0 {
		c.MarginBottom = defaultMarginBottom
	}
	return c
}

// windowPosition returns the top-left corner placing the surface against the
// monitor's bottom-right corner with the configured margins.
func windowPosition(monW, monH int, c OverlayConfig) (int, int) {
	return monW - c.Width - c.MarginRight, monH - c.Height - c.MarginBottom
}

// Overlay owns the render loop state: the compiled scene kernel, the
// monotonic clock, and the launch fade. It implements ebiten.Game.
//
// There are no process-wide globals; everything is released when Run returns.
type Overlay struct {
	cfg    OverlayConfig
	ctx    context.Context
	shader *ebiten.Shader

	start    time.Time
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions

	fade      *gween.Tween
	fadeAlpha float32
	fadeDone  bool
}

// NewOverlay compiles the scene kernel and prepares a driver whose loop stops
// when ctx is canceled.
func NewOverlay(ctx context.Context, cfg OverlayConfig) (*Overlay, error) {
	shader, err := NewSceneShader()
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	o := &Overlay{
		cfg:    cfg,
		ctx:    ctx,
		shader: shader,
		start:  time.Now(),
		uniforms: map[string]any{
			"Resolution":  []float32{float32(cfg.Width), float32(cfg.Height)},
			"LightPos":    LightPosUniform(),
			"LightColors": LightColorUniform(),
		},
		fade: gween.New(0, 1, fadeInSeconds, ease.InOutSine),
	}
	return o, nil
}

// Elapsed returns seconds since the overlay was created. Monotonic, starts
// near zero, never pauses.
func (o *Overlay) Elapsed() float64 {
	return time.Since(o.start).Seconds()
}

// Update checks for a stop request between frames and advances the launch
// fade. Per-frame shading cannot fail, so this is the only exit point.
func (o *Overlay) Update() error {
	if o.ctx != nil && o.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !o.fadeDone {
		o.fadeAlpha, o.fadeDone = o.fade.Update(float32(1.0 / float64(ebiten.TPS())))
	}
	return nil
}

// Draw submits one full-surface evaluation of the scene kernel. The screen is
// cleared to transparent by the runtime each frame; the kernel's output is
// composited source-over so the desktop stays visible outside the tree.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.uniforms["Time"] = float32(o.Elapsed())
	o.shaderOp.Uniforms = o.uniforms
	o.shaderOp.ColorScale.Reset()
	o.shaderOp.ColorScale.ScaleAlpha(o.fadeAlpha)
	screen.DrawRectShader(o.cfg.Width, o.cfg.Height, o.shader, &o.shaderOp)

	if o.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

// Layout fixes the logical resolution for the process lifetime.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.cfg.Width, o.cfg.Height
}

// RunOverlay creates the transparent always-on-top surface, prints the
// startup banner, and drives the display loop until ctx is canceled or the
// window is closed. Returns nil on a clean stop.
func RunOverlay(ctx context.Context, cfg OverlayConfig) error {
	o, err := NewOverlay(ctx, cfg)
	if err != nil {
		return err
	}
	cfg = o.cfg

	monW, monH := ebiten.Monitor().Size()
	posX, posY := windowPosition(monW, monH, cfg)

	ebiten.SetWindowTitle("Christmas Tree")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowPosition(posX, posY)

	fmt.Printf("\033[38;5;46m\U0001F384 Christmas tree overlay running\033[0m\n")
	fmt.Printf("   Position: %d, %d\n", posX, posY)
	fmt.Printf("   Size: %d x %d\n", cfg.Width, cfg.Height)
	fmt.Printf("   Press Ctrl+C to stop\n\n")

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
		SkipTaskbar:       true,
		X11ClassName:      "tannen",
		X11InstanceName:   "tannen",
	}
	if err := ebiten.RunGameWithOptions(o, opts); err != nil {
		return fmt.Errorf("overlay loop: %w", err)
	}

	fmt.Printf("\n\033[38;5;196m\U0001F384 Christmas tree stopped. Crăciun Fericit!\033[0m\n")
	return nil
}
