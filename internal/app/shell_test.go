package app

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"glaze/internal/platform"
	"glaze/internal/platform/headless"
	"glaze/internal/ui"
)

type countContent struct {
	calls int
	c     gg.RGBA
}

func (c *countContent) Draw(dc *gg.Context) error {
	c.calls++
	dc.ClearWithColor(c.c)
	return nil
}

// sparseContent paints a 10x10 red badge and leaves the rest of its
// buffer transparent.
type sparseContent struct{}

func (sparseContent) Draw(dc *gg.Context) error {
	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawRectangle(0, 0, 10, 10)
	return dc.Fill()
}

type animCountContent struct {
	countContent
}

func (a *animCountContent) Tick(uint64) bool { return true }

func newTestWindow(t *testing.T, w, h int) *headless.Window {
	t.Helper()
	win, err := headless.New().CreateWindow(platform.WindowConfig{Title: "test", WidthPx: w, HeightPx: h})
	if err != nil {
		t.Fatal(err)
	}
	return win.(*headless.Window)
}

func TestLoopPaintScenario(t *testing.T) {
	shell := NewShell(400, 400, ui.DefaultTheme())
	content := &countContent{c: gg.RGB(1, 0, 0)}
	if _, err := shell.CreateWidget(image.Rect(0, 0, 400, 400), content); err != nil {
		t.Fatal(err)
	}

	win := newTestWindow(t, 400, 400)
	win.Push(platform.Event{Type: platform.EventPaint, Damaged: image.Rect(0, 0, 400, 400)})
	win.Push(platform.Event{Type: platform.EventPaint, Damaged: image.Rect(0, 0, 50, 50)})
	win.Close()

	if err := shell.Loop(win); err != nil {
		t.Fatal(err)
	}
	if content.calls != 1 {
		t.Fatalf("expected exactly 1 draw across both paints, got %d", content.calls)
	}
	frame := win.LastFrame()
	if frame == nil {
		t.Fatalf("nothing presented")
	}
	red := color.RGBA{R: 255, A: 255}
	if got := frame.PixelAt(399, 399); got != red {
		t.Fatalf("full blit missing: %v", got)
	}
	if got := frame.PixelAt(25, 25); got != red {
		t.Fatalf("partial blit missing: %v", got)
	}
}

func TestLoopTimerInvalidatesAndRepaints(t *testing.T) {
	shell := NewShell(200, 200, ui.DefaultTheme())
	content := &animCountContent{countContent{c: gg.Blue}}
	if _, err := shell.CreateWidget(image.Rect(10, 10, 110, 110), content); err != nil {
		t.Fatal(err)
	}

	// Drain the initial full paint first.
	if err := shell.Paint(shell.Damage()); err != nil {
		t.Fatal(err)
	}
	if content.calls != 1 {
		t.Fatalf("setup paint count: %d", content.calls)
	}

	win := newTestWindow(t, 200, 200)
	win.Push(platform.Event{Type: platform.EventTimer, Tick: 1})
	win.Close()
	if err := shell.Loop(win); err != nil {
		t.Fatal(err)
	}
	if content.calls != 2 {
		t.Fatalf("timer must trigger one redraw, draws=%d", content.calls)
	}
	if win.Presents() != 1 {
		t.Fatalf("expected 1 present, got %d", win.Presents())
	}
}

func TestLoopWindowResizeRelayouts(t *testing.T) {
	shell := NewShell(400, 400, ui.DefaultTheme())
	content := &countContent{c: gg.RGB(0, 1, 0)}
	w, err := shell.CreateWidget(image.Rect(0, 0, 400, 400), content)
	if err != nil {
		t.Fatal(err)
	}
	shell.Relayout = func(width, height int) error {
		return w.Resize(image.Rect(0, 0, width, height))
	}

	win := newTestWindow(t, 400, 400)
	win.Push(platform.Event{Type: platform.EventResize, Width: 800, Height: 600})
	win.Close()
	if err := shell.Loop(win); err != nil {
		t.Fatal(err)
	}

	if width, height := shell.Size(); width != 800 || height != 600 {
		t.Fatalf("shell size %dx%d", width, height)
	}
	if shell.FrameBuffer().W != 800 || shell.FrameBuffer().H != 600 {
		t.Fatalf("framebuffer %dx%d", shell.FrameBuffer().W, shell.FrameBuffer().H)
	}
	if w.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Fatalf("widget bounds %v", w.Bounds())
	}
	frame := win.LastFrame()
	if got := frame.PixelAt(799, 599); (got != color.RGBA{G: 255, A: 255}) {
		t.Fatalf("resized widget not repainted to the new extent: %v", got)
	}
}

func TestDestroyEventRemovesWidgetAndRepaintsGround(t *testing.T) {
	theme := ui.DefaultTheme()
	shell := NewShell(200, 200, theme)
	keep := &countContent{c: gg.RGB(1, 0, 0)}
	if _, err := shell.CreateWidget(image.Rect(0, 0, 50, 50), keep); err != nil {
		t.Fatal(err)
	}
	gone := &countContent{c: gg.Blue}
	doomed, err := shell.CreateWidget(image.Rect(100, 100, 150, 150), gone)
	if err != nil {
		t.Fatal(err)
	}
	if err := shell.Paint(shell.Damage()); err != nil {
		t.Fatal(err)
	}

	win := newTestWindow(t, 200, 200)
	win.Push(platform.Event{Type: platform.EventDestroy, Handle: uint64(doomed.Handle())})
	win.Close()
	if err := shell.Loop(win); err != nil {
		t.Fatal(err)
	}

	if shell.Registry().Len() != 1 {
		t.Fatalf("expected 1 registered widget, got %d", shell.Registry().Len())
	}
	frame := win.LastFrame()
	if got := frame.PixelAt(125, 125); got != theme.Background {
		t.Fatalf("vacated area not repainted: %v", got)
	}
	if got := frame.PixelAt(25, 25); (got != color.RGBA{R: 255, A: 255}) {
		t.Fatalf("surviving widget damaged: %v", got)
	}
}

func TestPaintKeepsGroundUnderSparseContent(t *testing.T) {
	theme := ui.DefaultTheme()
	shell := NewShell(100, 100, theme)
	if _, err := shell.CreateWidget(image.Rect(0, 0, 50, 50), sparseContent{}); err != nil {
		t.Fatal(err)
	}
	if err := shell.Paint(shell.Damage()); err != nil {
		t.Fatal(err)
	}

	fb := shell.FrameBuffer()
	if got := fb.PixelAt(5, 5); (got != color.RGBA{R: 255, A: 255}) {
		t.Fatalf("badge missing: %v", got)
	}
	// The widget covers (0,0)-(50,50) but paints only the badge; the
	// window background must survive under the rest of its bounds.
	if got := fb.PixelAt(40, 40); got != theme.Background {
		t.Fatalf("background lost under unpainted widget area: %v", got)
	}
}

func TestPaintOutlinesDamageWhenEnabled(t *testing.T) {
	theme := ui.DefaultTheme()
	shell := NewShell(100, 100, theme)
	shell.OutlineDamage = true
	if err := shell.Paint(image.Rect(10, 10, 60, 60)); err != nil {
		t.Fatal(err)
	}

	fb := shell.FrameBuffer()
	outline := color.RGBA{R: 255, B: 255, A: 255}
	if got := fb.PixelAt(10, 10); got != outline {
		t.Fatalf("frame corner missing: %v", got)
	}
	if got := fb.PixelAt(59, 59); got != outline {
		t.Fatalf("frame far corner missing: %v", got)
	}
	if got := fb.PixelAt(30, 30); got != theme.Background {
		t.Fatalf("frame leaked into the interior: %v", got)
	}
}

func TestMouseDownRoutesToTopmostWidget(t *testing.T) {
	shell := NewShell(200, 200, ui.DefaultTheme())
	panel := ui.NewGradientPanel(ui.DefaultTheme().PanelBorder)
	w, err := shell.CreateWidget(image.Rect(20, 20, 120, 120), panel)
	if err != nil {
		t.Fatal(err)
	}
	if err := shell.Paint(shell.Damage()); err != nil {
		t.Fatal(err)
	}

	if err := shell.HandleEvent(platform.Event{Type: platform.EventMouseDown, X: 60, Y: 60}); err != nil {
		t.Fatal(err)
	}
	if !w.Dirty() {
		t.Fatalf("pressed widget must be invalidated")
	}
	if shell.Damage().Empty() {
		t.Fatalf("press must accumulate damage")
	}

	// Clicks outside every widget fall through.
	if err := shell.HandleEvent(platform.Event{Type: platform.EventMouseDown, X: 190, Y: 190}); err != nil {
		t.Fatal(err)
	}
}

func TestPaintClampsDamageToWindow(t *testing.T) {
	shell := NewShell(100, 100, ui.DefaultTheme())
	content := &countContent{c: gg.Red}
	if _, err := shell.CreateWidget(image.Rect(0, 0, 100, 100), content); err != nil {
		t.Fatal(err)
	}
	if err := shell.Paint(image.Rect(-50, -50, 500, 500)); err != nil {
		t.Fatal(err)
	}
	if content.calls != 1 {
		t.Fatalf("expected 1 draw, got %d", content.calls)
	}
	if !shell.Damage().Empty() {
		t.Fatalf("damage must be serviced")
	}
}

func TestDispatchUnknownHandleUsesDefault(t *testing.T) {
	shell := NewShell(100, 100, ui.DefaultTheme())
	ev := platform.Event{Type: platform.EventKeyDown, Handle: 42, Key: "F1"}
	if err := shell.HandleEvent(ev); err != nil {
		t.Fatal(err)
	}
}
