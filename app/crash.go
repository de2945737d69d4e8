package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"ramos/term"
)

var (
	crashBackground = color.RGBA{R: 96, G: 24, B: 24, A: 0xFF}
	crashText       = color.RGBA{R: 236, G: 226, B: 226, A: 0xFF}
)

// crash latches the console into a halted state, logs the panic and
// paints a final frame. The frame stays up until the host ends the
// run; later steps are no-ops.
func (c *console) crash(value any) {
	c.crashed = true
	c.h.Logger().WriteLineString(fmt.Sprintf("ramos: panic: %v", value))
	stack := stackLines()
	for _, line := range stack {
		c.h.Logger().WriteLineString(line)
	}
	drawCrashScreen(c.comp, value, stack)
}

func drawCrashScreen(c *term.Compositor, value any, stack []string) {
	w16, h16 := c.Size()
	w, h := int(w16), int(h16)
	c.FillRect(0, 0, w, h, crashBackground)

	lines := []string{"RAMOS panic", "", fmt.Sprint(value)}
	if len(stack) > 0 {
		lines = append(lines, "", "stack:")
		lines = append(lines, stack...)
	}

	cols := (w - 16) / 8
	if cols < 1 {
		cols = 1
	}
	y := 8
	for _, line := range lines {
		for {
			if y+8 > h {
				_ = c.Display()
				return
			}
			chunk := line
			if len(chunk) > cols {
				chunk = chunk[:cols]
			}
			c.DrawText(8, y, chunk, crashText, crashBackground)
			y += 10
			if len(line) <= cols {
				break
			}
			line = strings.TrimLeft(line[cols:], " ")
			if line == "" {
				break
			}
		}
	}
	_ = c.Display()
}

func stackLines() []string {
	var out []string
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
