package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// FrameBuffer is the visible-surface pixel store. Widgets never draw into
// it directly; their paint buffers blit finished pixels here and the
// platform backend presents it.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// BlitFrom composites the buffer-local rectangle local from src over the
// framebuffer, placed so that src's origin lands at origin. Paint buffers
// clear to transparent before each redraw, so pixels the content never
// touched leave the framebuffer (the window background underneath) intact.
// Rows outside either surface are clipped. Nothing outside the requested
// rectangle is touched.
func (fb *FrameBuffer) BlitFrom(src *gg.Pixmap, local image.Rectangle, origin image.Point) {
	local = local.Intersect(image.Rect(0, 0, src.Width(), src.Height()))
	if local.Empty() {
		return
	}
	data := src.Data()
	stride := src.Width() * 4
	for y := local.Min.Y; y < local.Max.Y; y++ {
		dy := y + origin.Y
		if dy < 0 || dy >= fb.H {
			continue
		}
		x0, x1 := local.Min.X, local.Max.X
		dx := x0 + origin.X
		if dx < 0 {
			x0 -= dx
			dx = 0
		}
		if over := x1 + origin.X - fb.W; over > 0 {
			x1 -= over
		}
		if x1 <= x0 {
			continue
		}
		srcOff := y*stride + x0*4
		dstOff := (dy*fb.W + dx) * 4
		for x := x0; x < x1; x++ {
			compositeOver(fb.Pixels[dstOff:dstOff+4], data[srcOff:srcOff+4])
			srcOff += 4
			dstOff += 4
		}
	}
}

// compositeOver blends one straight-alpha RGBA source pixel over dst in
// place.
func compositeOver(dst, src []uint8) {
	sa := uint32(src[3])
	switch sa {
	case 255:
		copy(dst, src)
		return
	case 0:
		return
	}
	inv := 255 - sa
	db := uint32(dst[3]) * inv / 255
	outA := sa + db
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	dst[0] = uint8((uint32(src[0])*sa + uint32(dst[0])*db) / outA)
	dst[1] = uint8((uint32(src[1])*sa + uint32(dst[1])*db) / outA)
	dst[2] = uint8((uint32(src[2])*sa + uint32(dst[2])*db) / outA)
	dst[3] = uint8(outA)
}

// PixelAt returns the color stored at (x, y), or zero outside the buffer.
func (fb *FrameBuffer) PixelAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[i], G: fb.Pixels[i+1], B: fb.Pixels[i+2], A: fb.Pixels[i+3]}
}

// Image wraps the pixel store as an image.RGBA sharing the same memory.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: image.Rect(0, 0, fb.W, fb.H)}
}
