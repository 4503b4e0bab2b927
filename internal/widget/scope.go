package widget

import "github.com/gogpu/gg"

// Scoped runs fn with the context's graphics state saved on entry and
// restored on exit, even when fn panics. Content can scale, clip and
// retarget brushes freely without leaking state into siblings.
func Scoped(dc *gg.Context, fn func(*gg.Context) error) error {
	dc.Push()
	defer dc.Pop()
	return fn(dc)
}
