package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

var (
	// ErrNotAllocated is returned when a paint cycle is requested against a
	// buffer that has been released or never allocated.
	ErrNotAllocated = errors.New("render: paint buffer not allocated")

	// ErrBadSize is returned for allocations with non-positive dimensions.
	ErrBadSize = errors.New("render: non-positive buffer size")
)

// PaintBuffer owns an off-screen vector surface matched to a widget's
// client area. Content is redrawn only while the dirty flag is set; every
// paint cycle blits exactly the damaged rectangle to the visible surface,
// so repeated partial invalidations cost a copy, not a redraw.
//
// A PaintBuffer is touched only by the thread running the event loop.
type PaintBuffer struct {
	w, h        int
	dc          *gg.Context
	needsRedraw bool
	allocated   bool
}

// Allocate acquires the off-screen surface and its drawing context. The
// new buffer starts dirty. Allocating over a live buffer is a misuse;
// callers resize through Resize, which releases first.
func (b *PaintBuffer) Allocate(w, h int) error {
	if b.allocated {
		return fmt.Errorf("render: allocate over live %dx%d buffer", b.w, b.h)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render: allocate %dx%d: %w", w, h, ErrBadSize)
	}
	b.dc = gg.NewContext(w, h)
	b.w, b.h = w, h
	b.allocated = true
	b.needsRedraw = true
	return nil
}

// Release disposes the drawing context and surface. The allocated flag
// guards against double-free: a second Release without an intervening
// Allocate is a no-op.
func (b *PaintBuffer) Release() {
	if !b.allocated {
		return
	}
	_ = b.dc.Close()
	b.dc = nil
	b.w, b.h = 0, 0
	b.allocated = false
}

// Resize releases the current buffer and allocates a new one at the given
// dimensions. The old surface is always freed before the new allocation,
// so at most one buffer is ever live.
func (b *PaintBuffer) Resize(w, h int) error {
	b.Release()
	return b.Allocate(w, h)
}

// MarkDirty flags the cached content as stale. The next paint cycle will
// redraw before blitting.
func (b *PaintBuffer) MarkDirty() {
	b.needsRedraw = true
}

func (b *PaintBuffer) Dirty() bool     { return b.needsRedraw }
func (b *PaintBuffer) Allocated() bool { return b.allocated }

// Size reports the off-screen surface dimensions, zero when released.
func (b *PaintBuffer) Size() (w, h int) { return b.w, b.h }

// PaintCycle services one paint request. If the buffer is dirty, draw is
// invoked against a transparent-cleared context and the flag is lowered;
// otherwise the cached pixels stand. Either way, exactly the buffer-local
// rectangle damaged is then blitted into dst with the buffer's top-left
// at origin.
func (b *PaintBuffer) PaintCycle(damaged image.Rectangle, draw func(*gg.Context) error, dst *FrameBuffer, origin image.Point) error {
	if !b.allocated {
		return ErrNotAllocated
	}
	if b.needsRedraw {
		b.dc.ClearWithColor(gg.Transparent)
		if err := draw(b.dc); err != nil {
			return fmt.Errorf("render: redraw %dx%d buffer: %w", b.w, b.h, err)
		}
		b.needsRedraw = false
	}
	if err := b.dc.FlushGPU(); err != nil {
		return fmt.Errorf("render: flush %dx%d buffer: %w", b.w, b.h, err)
	}
	dst.BlitFrom(b.dc.ResizeTarget(), damaged, origin)
	return nil
}

// Context exposes the bound drawing context, nil when released. Intended
// for tests and for content that measures against the buffer size.
func (b *PaintBuffer) Context() *gg.Context {
	return b.dc
}
