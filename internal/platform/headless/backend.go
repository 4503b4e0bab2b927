// Package headless is a windowless backend driven by scripted events. The
// shell's event loop and paint pipeline run against it in tests exactly as
// they do against a real window.
package headless

import (
	"glaze/internal/platform"
	"glaze/internal/render"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return &Window{
		title: cfg.Title,
		w:     cfg.WidthPx,
		h:     cfg.HeightPx,
	}, nil
}

// Window records presented frames and replays pushed events. Once the
// scripted queue drains and the window is closed, PollEvents reports
// EventClose so a pumping loop terminates.
type Window struct {
	title    string
	w        int
	h        int
	queue    []platform.Event
	closed   bool
	presents int
	last     *render.FrameBuffer
}

// Push appends scripted events for the next poll.
func (w *Window) Push(evs ...platform.Event) {
	for _, ev := range evs {
		if ev.Type == platform.EventResize && ev.Handle == 0 {
			w.w, w.h = ev.Width, ev.Height
		}
	}
	w.queue = append(w.queue, evs...)
}

func (w *Window) PollEvents() []platform.Event {
	if len(w.queue) == 0 {
		if w.closed {
			return []platform.Event{{Type: platform.EventClose}}
		}
		return nil
	}
	batch := w.queue
	w.queue = nil
	return batch
}

func (w *Window) SizePx() (int, int) { return w.w, w.h }

func (w *Window) SetTitle(title string) {
	w.title = title
}

func (w *Window) Present(fb *render.FrameBuffer) error {
	w.presents++
	snap := render.NewFrameBuffer(fb.W, fb.H)
	copy(snap.Pixels, fb.Pixels)
	w.last = snap
	return nil
}

func (w *Window) Close() { w.closed = true }

// Presents reports how many frames the shell has pushed out.
func (w *Window) Presents() int { return w.presents }

// LastFrame returns a copy of the most recently presented framebuffer,
// nil before the first present.
func (w *Window) LastFrame() *render.FrameBuffer { return w.last }
