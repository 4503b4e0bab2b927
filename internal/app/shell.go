package app

import (
	"image"
	"image/color"

	"glaze/internal/platform"
	"glaze/internal/render"
	"glaze/internal/ui"
	"glaze/internal/widget"
)

// Shell owns the widget registry, the visible framebuffer and the damage
// accumulator, and turns platform events into paint cycles. It is the
// platform-independent half of the application: the ebiten front end and
// the headless test backend both drive it, one event at a time, on a
// single thread.
type Shell struct {
	reg    *widget.Registry
	fb     *render.FrameBuffer
	theme  ui.Theme
	damage image.Rectangle
	width  int
	height int

	// Relayout runs after the window client area changes, before the
	// full-window invalidate. It repositions widgets for the new size.
	Relayout func(w, h int) error

	// OutlineDamage frames each serviced damage rectangle so partial
	// repaints are visible while debugging.
	OutlineDamage bool
}

// damageOutline is the frame color used when OutlineDamage is on.
var damageOutline = color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}

func NewShell(w, h int, theme ui.Theme) *Shell {
	return &Shell{
		reg:    widget.NewRegistry(),
		fb:     render.NewFrameBuffer(w, h),
		theme:  theme,
		width:  w,
		height: h,
		damage: image.Rect(0, 0, w, h),
	}
}

func (s *Shell) Registry() *widget.Registry       { return s.reg }
func (s *Shell) FrameBuffer() *render.FrameBuffer { return s.fb }
func (s *Shell) Size() (int, int)                 { return s.width, s.height }
func (s *Shell) Damage() image.Rectangle          { return s.damage }

// CreateWidget allocates a widget, registers it and schedules its first
// paint.
func (s *Shell) CreateWidget(bounds image.Rectangle, content widget.Drawable) (*widget.Widget, error) {
	w, err := widget.New(s.reg.NextHandle(), bounds, content)
	if err != nil {
		return nil, err
	}
	s.reg.Add(w)
	s.Invalidate(bounds)
	return w, nil
}

// DestroyWidget drops the registry entry and releases the widget's
// buffers. The vacated area repaints on the next cycle.
func (s *Shell) DestroyWidget(h widget.Handle) {
	w := s.reg.Remove(h)
	if w == nil {
		return
	}
	s.Invalidate(w.Bounds())
	w.Close()
}

// Invalidate grows the damage region to include r, clipped to the window.
func (s *Shell) Invalidate(r image.Rectangle) {
	s.damage = s.damage.Union(r.Intersect(image.Rect(0, 0, s.width, s.height)))
}

func (s *Shell) InvalidateAll() {
	s.damage = image.Rect(0, 0, s.width, s.height)
}

// HandleEvent processes one platform event to completion.
func (s *Shell) HandleEvent(ev platform.Event) error {
	switch ev.Type {
	case platform.EventResize:
		if ev.Handle == 0 {
			return s.resizeWindow(ev.Width, ev.Height)
		}
		w, ok := s.reg.Lookup(widget.Handle(ev.Handle))
		if !ok {
			return nil
		}
		old := w.Bounds()
		if err := w.HandleEvent(ev); err != nil {
			return err
		}
		s.Invalidate(old.Union(w.Bounds()))
		return nil
	case platform.EventPaint:
		return s.Paint(ev.Damaged)
	case platform.EventDestroy:
		s.DestroyWidget(widget.Handle(ev.Handle))
		return nil
	case platform.EventTimer:
		s.reg.Each(func(w *widget.Widget) {
			_ = w.HandleEvent(ev)
			if w.Dirty() {
				s.Invalidate(w.Bounds())
			}
		})
		return nil
	case platform.EventMouseDown:
		w, ok := s.reg.HitTest(image.Pt(ev.X, ev.Y))
		if !ok {
			return nil
		}
		if err := w.HandleEvent(ev); err != nil {
			return err
		}
		if w.Dirty() {
			s.Invalidate(w.Bounds())
		}
		return nil
	}
	return s.reg.Dispatch(ev, func(platform.Event) error { return nil })
}

func (s *Shell) resizeWindow(w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	s.width, s.height = w, h
	s.fb = render.NewFrameBuffer(w, h)
	if s.Relayout != nil {
		if err := s.Relayout(w, h); err != nil {
			return err
		}
	}
	s.InvalidateAll()
	return nil
}

// Paint fills the damaged area with the window background, then runs each
// widget's paint cycle against it in z-order. Dirty widgets redraw; clean
// ones only blit. The accumulated damage is considered serviced after a
// successful pass.
func (s *Shell) Paint(damaged image.Rectangle) error {
	damaged = damaged.Intersect(image.Rect(0, 0, s.width, s.height))
	if damaged.Empty() {
		s.damage = image.Rectangle{}
		return nil
	}
	s.fb.FillRect(damaged.Min.X, damaged.Min.Y, damaged.Dx(), damaged.Dy(), s.theme.Background)
	var err error
	s.reg.Each(func(w *widget.Widget) {
		if err != nil {
			return
		}
		err = w.Paint(damaged, s.fb)
	})
	if err != nil {
		return err
	}
	if s.OutlineDamage {
		s.fb.StrokeRect(damaged.Min.X, damaged.Min.Y, damaged.Dx(), damaged.Dy(), 1, damageOutline)
	}
	s.damage = image.Rectangle{}
	return nil
}

// Loop pumps a window's events, painting and presenting whenever a paint
// request arrives or damage accumulates, until the window reports
// EventClose. Each event is handled to completion before the next.
func (s *Shell) Loop(win platform.Window) error {
	for {
		quit := false
		painted := false
		for _, ev := range win.PollEvents() {
			if ev.Type == platform.EventClose {
				quit = true
				continue
			}
			if err := s.HandleEvent(ev); err != nil {
				return err
			}
			if ev.Type == platform.EventPaint {
				painted = true
			}
		}
		if !s.damage.Empty() {
			if err := s.Paint(s.damage); err != nil {
				return err
			}
			painted = true
		}
		if painted {
			if err := win.Present(s.fb); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}
