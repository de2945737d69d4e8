// Package term draws the console UI onto a raw framebuffer.
package term

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"ramos/hal"
)

var _ drivers.Displayer = (*Compositor)(nil)

// Palette of the console chrome.
var (
	ColorBackground = color.RGBA{R: 12, G: 16, B: 26, A: 0xFF}
	ColorWindow     = color.RGBA{R: 26, G: 34, B: 52, A: 0xFF}
	ColorText       = color.RGBA{R: 214, G: 214, B: 214, A: 0xFF}
	ColorTitle      = color.RGBA{R: 118, G: 189, B: 230, A: 0xFF}
	ColorPrompt     = color.RGBA{R: 136, G: 224, B: 144, A: 0xFF}
)

const (
	margin         = 20
	titleBarHeight = 24
	lineHeight     = 10
	chromeHeight   = 64
	glyphWidth     = 8
	glyphHeight    = 8

	titleText = "RAMOS :: meme UEFI shell"
)

// Compositor repaints the whole console frame from scratch on every
// observable state change. There is no dirty tracking; the screen is
// small and bounded. It implements drivers.Displayer so glyphs can
// draw through it.
type Compositor struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter
	rgb  bool
}

// New returns a compositor drawing to fb with the given font.
func New(fb hal.Framebuffer, font tinyfont.Fonter) *Compositor {
	return &Compositor{
		fb:   fb,
		font: font,
		rgb:  fb.Format() == hal.PixelFormatRGBX8888,
	}
}

// Size implements drivers.Displayer.
func (c *Compositor) Size() (x, y int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

// SetPixel implements drivers.Displayer. Out of range writes are
// dropped, never an error.
func (c *Compositor) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.fb.Width() || iy < 0 || iy >= c.fb.Height() {
		return
	}
	buf := c.fb.Buffer()
	off := (iy*c.fb.Stride() + ix) * 4
	if off+3 > len(buf) {
		return
	}
	c.writeColor(buf, off, col)
}

// Display implements drivers.Displayer.
func (c *Compositor) Display() error { return c.fb.Present() }

// FillRect writes col into every cell of the rectangle. Cells whose
// byte offset falls outside the buffer are skipped.
func (c *Compositor) FillRect(x, y, w, h int, col color.RGBA) {
	fw := c.fb.Width()
	fh := c.fb.Height()
	x0 := clampInt(x, 0, fw)
	y0 := clampInt(y, 0, fh)
	x1 := clampInt(x+w, 0, fw)
	y1 := clampInt(y+h, 0, fh)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	buf := c.fb.Buffer()
	stride := c.fb.Stride()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := (row + px) * 4
			if off+3 > len(buf) {
				continue
			}
			c.writeColor(buf, off, col)
		}
	}
}

// DrawText renders s left to right from (x, y), painting each 8x8
// cell background first so unsupported runes come out blank. It stops
// once the next glyph's right edge would reach the framebuffer width;
// the rest of the string is dropped without wrapping.
func (c *Compositor) DrawText(x, y int, s string, fg, bg color.RGBA) {
	cursorX := x
	for _, r := range s {
		if cursorX+glyphWidth >= c.fb.Width() {
			break
		}
		c.FillRect(cursorX, y, glyphWidth, glyphHeight, bg)
		c.font.GetGlyph(r).Draw(c, int16(cursorX), int16(y+glyphHeight-1), fg)
		cursorX += glyphWidth
	}
}

// Redraw paints the whole frame: backdrop, console window, title bar,
// the scrollback tail, and the prompt line under it.
func (c *Compositor) Redraw(scrollback []string, prompt string) {
	w := c.fb.Width()
	h := c.fb.Height()
	c.FillRect(0, 0, w, h, ColorBackground)

	winW := w - 2*margin
	winH := h - 2*margin
	c.FillRect(margin, margin, winW, winH, ColorWindow)
	c.FillRect(margin, margin, winW, titleBarHeight, ColorTitle)
	c.DrawText(margin+8, margin+6, titleText, ColorText, ColorTitle)

	startY := margin + 32
	maxLines := (winH - chromeHeight) / lineHeight
	if maxLines < 0 {
		maxLines = 0
	}
	start := 0
	if len(scrollback) > maxLines {
		start = len(scrollback) - maxLines
	}
	for i, line := range scrollback[start:] {
		c.DrawText(margin+8, startY+i*lineHeight, line, ColorText, ColorWindow)
	}

	c.DrawText(margin+8, startY+maxLines*lineHeight, prompt, ColorPrompt, ColorWindow)
}

func (c *Compositor) writeColor(buf []byte, off int, col color.RGBA) {
	if c.rgb {
		buf[off+0] = col.R
		buf[off+1] = col.G
		buf[off+2] = col.B
		return
	}
	buf[off+0] = col.B
	buf[off+1] = col.G
	buf[off+2] = col.R
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
