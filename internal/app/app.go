package app

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	xclipboard "golang.design/x/clipboard"

	"glaze/internal/platform"
	"glaze/internal/ui"
	"glaze/internal/widget"
)

type Config struct {
	Width         int
	Height        int
	Title         string
	Scale         float32
	TimerTicks    int  // update ticks between timer events
	OutlineDamage bool // frame serviced damage rectangles
}

// App is the ebiten front end: it owns the shell, translates the game
// loop's callbacks into platform events, and presents the composed
// framebuffer.
type App struct {
	cfg    Config
	theme  ui.Theme
	shell  *Shell
	canvas *ebiten.Image
	tick   uint64

	banner   *widget.Widget
	gradient *widget.Widget
	pulse    *widget.Widget
	blend    *widget.Widget

	imageClipboard bool
	deferred       error
}

func New(cfg Config) (*App, error) {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	if cfg.Title == "" {
		cfg.Title = "glaze"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TimerTicks <= 0 {
		cfg.TimerTicks = 12
	}

	theme := ui.DefaultTheme()
	a := &App{
		cfg:   cfg,
		theme: theme,
		shell: NewShell(cfg.Width, cfg.Height, theme),
	}
	a.shell.Relayout = a.relayout
	a.shell.OutlineDamage = cfg.OutlineDamage

	banner, err := ui.NewBanner(cfg.Title, theme, 30)
	if err != nil {
		return nil, err
	}
	l := ui.ComputeLayout(cfg.Width, cfg.Height, theme, cfg.Scale)
	if a.banner, err = a.shell.CreateWidget(l.Banner, banner); err != nil {
		return nil, err
	}
	if a.gradient, err = a.shell.CreateWidget(l.Gradient, ui.NewGradientPanel(theme.PanelBorder)); err != nil {
		return nil, err
	}
	if a.pulse, err = a.shell.CreateWidget(l.Pulse, ui.NewPulse(theme.PanelBorder)); err != nil {
		return nil, err
	}
	if a.blend, err = a.shell.CreateWidget(l.Blend, ui.NewBlendGrid(theme.PanelBorder)); err != nil {
		return nil, err
	}

	if err := xclipboard.Init(); err != nil {
		slog.Warn("image clipboard unavailable", "err", err)
	} else {
		a.imageClipboard = true
	}
	return a, nil
}

func (a *App) relayout(w, h int) error {
	l := ui.ComputeLayout(w, h, a.theme, a.cfg.Scale)
	if err := a.banner.Resize(l.Banner); err != nil {
		return err
	}
	if err := a.gradient.Resize(l.Gradient); err != nil {
		return err
	}
	if err := a.pulse.Resize(l.Pulse); err != nil {
		return err
	}
	return a.blend.Resize(l.Blend)
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(480, 360, -1, -1)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run event loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	if a.deferred != nil {
		return a.deferred
	}
	a.tick++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.tick%uint64(a.cfg.TimerTicks) == 0 {
		if err := a.shell.HandleEvent(platform.Event{Type: platform.EventTimer, Tick: a.tick}); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if err := a.shell.HandleEvent(platform.Event{Type: platform.EventMouseDown, X: x, Y: y}); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyColorUnderCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.copyFramePNG()
	}
	return nil
}

// Draw presents the shell's framebuffer. The paint pipeline only runs
// when damage accumulated; otherwise the cached canvas is shown again.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	sw, sh := a.shell.Size()
	if w != sw || h != sh {
		if err := a.shell.HandleEvent(platform.Event{Type: platform.EventResize, Width: w, Height: h}); err != nil {
			a.deferred = err
			return
		}
		a.canvas = nil
	}
	if a.canvas == nil {
		a.canvas = ebiten.NewImage(w, h)
	}
	if !a.shell.Damage().Empty() {
		if err := a.shell.Paint(a.shell.Damage()); err != nil {
			a.deferred = err
			return
		}
		a.canvas.WritePixels(a.shell.FrameBuffer().Pixels)
	}
	screen.DrawImage(a.canvas, nil)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

func (a *App) copyColorUnderCursor() {
	x, y := ebiten.CursorPosition()
	c := a.shell.FrameBuffer().PixelAt(x, y)
	hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	if err := clipboard.WriteAll(hex); err != nil {
		slog.Warn("copy color", "err", err)
		return
	}
	slog.Info("copied color", "hex", hex, "x", x, "y", y)
}

func (a *App) copyFramePNG() {
	if !a.imageClipboard {
		slog.Warn("image clipboard unavailable")
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.shell.FrameBuffer().Image()); err != nil {
		slog.Warn("encode frame", "err", err)
		return
	}
	xclipboard.Write(xclipboard.FmtImage, buf.Bytes())
	slog.Info("copied frame", "bytes", buf.Len())
}
