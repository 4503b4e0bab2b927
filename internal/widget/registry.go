package widget

import (
	"image"

	"glaze/internal/platform"
)

// Registry is the shell-owned table from native handle to widget. Every
// live handle has exactly one entry; entries leave when the underlying
// window is destroyed. Iteration order is insertion order, which doubles
// as paint z-order (later widgets on top).
type Registry struct {
	widgets map[Handle]*Widget
	order   []Handle
	next    Handle
}

func NewRegistry() *Registry {
	return &Registry{widgets: make(map[Handle]*Widget)}
}

// NextHandle hands out a fresh, never-reused handle.
func (r *Registry) NextHandle() Handle {
	r.next++
	return r.next
}

func (r *Registry) Add(w *Widget) {
	if _, ok := r.widgets[w.Handle()]; ok {
		return
	}
	r.widgets[w.Handle()] = w
	r.order = append(r.order, w.Handle())
}

// Remove drops the entry and returns the widget so the caller can release
// its resources.
func (r *Registry) Remove(h Handle) *Widget {
	w, ok := r.widgets[h]
	if !ok {
		return nil
	}
	delete(r.widgets, h)
	for i, other := range r.order {
		if other == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return w
}

func (r *Registry) Lookup(h Handle) (*Widget, bool) {
	w, ok := r.widgets[h]
	return w, ok
}

func (r *Registry) Len() int { return len(r.widgets) }

// Each visits widgets in insertion order.
func (r *Registry) Each(fn func(*Widget)) {
	for _, h := range r.order {
		fn(r.widgets[h])
	}
}

// HitTest finds the topmost widget containing pt.
func (r *Registry) HitTest(pt image.Point) (*Widget, bool) {
	for i := len(r.order) - 1; i >= 0; i-- {
		w := r.widgets[r.order[i]]
		if pt.In(w.Bounds()) {
			return w, true
		}
	}
	return nil, false
}

// Dispatch routes ev to the widget owning ev.Handle. Events with no
// matching widget go to fallback, the platform's default handler.
func (r *Registry) Dispatch(ev platform.Event, fallback func(platform.Event) error) error {
	if w, ok := r.widgets[Handle(ev.Handle)]; ok {
		return w.HandleEvent(ev)
	}
	return fallback(ev)
}
