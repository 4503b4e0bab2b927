package widget

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"glaze/internal/platform"
	"glaze/internal/render"
)

// Drawable renders widget content into the widget's off-screen context.
// Implementations draw in buffer-local coordinates starting at (0, 0) and
// must not retain the context.
type Drawable interface {
	Draw(dc *gg.Context) error
}

// Animator is implemented by content that advances on timer events.
// Tick reports whether the content changed and needs a redraw.
type Animator interface {
	Tick(tick uint64) bool
}

// Presser is implemented by content that reacts to a mouse press. The
// coordinates are buffer-local. The return value reports whether the
// content changed.
type Presser interface {
	Press(x, y int) bool
}

type Handle uint64

// Widget is one drawable window region. It owns exactly one paint buffer
// sized to its bounds, and explicitly owns its children; children keep
// their own buffers and bounds in window coordinates.
type Widget struct {
	handle   Handle
	bounds   image.Rectangle
	buf      *render.PaintBuffer
	content  Drawable
	children []*Widget
}

// New allocates a widget and its paint buffer. Allocation failure is
// fatal for the widget: no partially built widget is returned.
func New(h Handle, bounds image.Rectangle, content Drawable) (*Widget, error) {
	w := &Widget{handle: h, bounds: bounds, content: content, buf: &render.PaintBuffer{}}
	if err := w.buf.Allocate(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, fmt.Errorf("widget %d: %w", h, err)
	}
	return w, nil
}

func (w *Widget) Handle() Handle          { return w.handle }
func (w *Widget) Bounds() image.Rectangle { return w.bounds }
func (w *Widget) Content() Drawable       { return w.content }
func (w *Widget) Dirty() bool             { return w.buf.Dirty() }
func (w *Widget) Children() []*Widget     { return w.children }

// AddChild transfers ownership of c to w. The child keeps painting into
// its own buffer; w only controls its lifetime.
func (w *Widget) AddChild(c *Widget) {
	w.children = append(w.children, c)
}

// Invalidate marks the cached content stale.
func (w *Widget) Invalidate() {
	w.buf.MarkDirty()
}

// Resize moves the widget and swaps its buffer for one matching the new
// bounds. The old buffer is released before the new allocation.
func (w *Widget) Resize(bounds image.Rectangle) error {
	w.bounds = bounds
	if err := w.buf.Resize(bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("widget %d: %w", w.handle, err)
	}
	return nil
}

// Paint services one paint request for the window-space rectangle
// damaged. Only the intersection with the widget's bounds is blitted;
// the content redraws only if the widget is dirty. Children paint after
// the parent so they stack on top.
func (w *Widget) Paint(damaged image.Rectangle, dst *render.FrameBuffer) error {
	clip := damaged.Intersect(w.bounds)
	if !clip.Empty() {
		local := clip.Sub(w.bounds.Min)
		if err := w.buf.PaintCycle(local, w.draw, dst, w.bounds.Min); err != nil {
			return err
		}
	}
	for _, c := range w.children {
		if err := c.Paint(damaged, dst); err != nil {
			return err
		}
	}
	return nil
}

func (w *Widget) draw(dc *gg.Context) error {
	if w.content == nil {
		return nil
	}
	return Scoped(dc, w.content.Draw)
}

// HandleEvent routes a widget-targeted platform event.
func (w *Widget) HandleEvent(ev platform.Event) error {
	switch ev.Type {
	case platform.EventResize:
		return w.Resize(image.Rect(ev.X, ev.Y, ev.X+ev.Width, ev.Y+ev.Height))
	case platform.EventTimer:
		if a, ok := w.content.(Animator); ok && a.Tick(ev.Tick) {
			w.Invalidate()
		}
	case platform.EventMouseDown:
		if p, ok := w.content.(Presser); ok && p.Press(ev.X-w.bounds.Min.X, ev.Y-w.bounds.Min.Y) {
			w.Invalidate()
		}
	}
	return nil
}

// Close releases the widget's buffer and those of all owned children.
// Safe to call more than once.
func (w *Widget) Close() {
	for _, c := range w.children {
		c.Close()
	}
	w.buf.Release()
}
