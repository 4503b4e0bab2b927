package platform

import (
	"image"

	"glaze/internal/render"
)

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventCreate
	EventDestroy
	EventClose
	EventPaint
	EventResize
	EventTimer
	EventKeyDown
	EventMouseMove
	EventMouseDown
)

// Event is one delivery from the windowing backend. Handle selects the
// target widget; zero addresses the window itself. Damaged is meaningful
// only for EventPaint, Width/Height only for EventResize, Tick only for
// EventTimer.
type Event struct {
	Type    EventType
	Handle  uint64
	Width   int
	Height  int
	X       int
	Y       int
	Damaged image.Rectangle
	Tick    uint64
	Key     string
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

// Window is the shell's view of a native window: an event source plus a
// surface that accepts finished frames. PollEvents may block until the
// backend has something to deliver; each returned batch is handled to
// completion before the next poll.
type Window interface {
	PollEvents() []Event
	SizePx() (int, int)
	Present(fb *render.FrameBuffer) error
	SetTitle(title string)
	Close()
}
