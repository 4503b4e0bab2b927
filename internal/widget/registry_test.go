package widget

import (
	"image"
	"testing"

	"glaze/internal/platform"
)

func mustWidget(t *testing.T, r *Registry, bounds image.Rectangle) *Widget {
	t.Helper()
	w, err := New(r.NextHandle(), bounds, &fillContent{})
	if err != nil {
		t.Fatal(err)
	}
	r.Add(w)
	return w
}

func TestRegistryOneEntryPerHandle(t *testing.T) {
	r := NewRegistry()
	w := mustWidget(t, r, image.Rect(0, 0, 10, 10))
	defer w.Close()
	r.Add(w)

	if r.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", r.Len())
	}
	got, ok := r.Lookup(w.Handle())
	if !ok || got != w {
		t.Fatalf("lookup returned %v, %v", got, ok)
	}
}

func TestRegistryRemoveOnDestroy(t *testing.T) {
	r := NewRegistry()
	w := mustWidget(t, r, image.Rect(0, 0, 10, 10))

	removed := r.Remove(w.Handle())
	if removed != w {
		t.Fatalf("remove returned wrong widget")
	}
	removed.Close()

	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
	if r.Remove(w.Handle()) != nil {
		t.Fatalf("second remove must return nil")
	}
}

func TestRegistryHandlesNeverReused(t *testing.T) {
	r := NewRegistry()
	a := r.NextHandle()
	b := r.NextHandle()
	if a == b {
		t.Fatalf("handle reuse: %d", a)
	}
}

func TestRegistryEachInInsertionOrder(t *testing.T) {
	r := NewRegistry()
	first := mustWidget(t, r, image.Rect(0, 0, 10, 10))
	defer first.Close()
	second := mustWidget(t, r, image.Rect(0, 0, 20, 20))
	defer second.Close()

	var seen []Handle
	r.Each(func(w *Widget) { seen = append(seen, w.Handle()) })
	if len(seen) != 2 || seen[0] != first.Handle() || seen[1] != second.Handle() {
		t.Fatalf("unexpected order: %v", seen)
	}
}

func TestRegistryHitTestPrefersTopmost(t *testing.T) {
	r := NewRegistry()
	below := mustWidget(t, r, image.Rect(0, 0, 100, 100))
	defer below.Close()
	above := mustWidget(t, r, image.Rect(40, 40, 60, 60))
	defer above.Close()

	if w, ok := r.HitTest(image.Pt(50, 50)); !ok || w != above {
		t.Fatalf("expected topmost widget at overlap")
	}
	if w, ok := r.HitTest(image.Pt(10, 10)); !ok || w != below {
		t.Fatalf("expected lower widget outside overlap")
	}
	if _, ok := r.HitTest(image.Pt(200, 200)); ok {
		t.Fatalf("hit outside all widgets")
	}
}

func TestDispatchFallsBackForUnknownHandle(t *testing.T) {
	r := NewRegistry()
	w := mustWidget(t, r, image.Rect(0, 0, 10, 10))
	defer w.Close()

	fellBack := false
	ev := platform.Event{Type: platform.EventKeyDown, Handle: 999}
	if err := r.Dispatch(ev, func(platform.Event) error {
		fellBack = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !fellBack {
		t.Fatalf("unknown handle must hit the default handler")
	}

	fellBack = false
	ev.Handle = uint64(w.Handle())
	if err := r.Dispatch(ev, func(platform.Event) error {
		fellBack = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if fellBack {
		t.Fatalf("known handle must not hit the default handler")
	}
}
