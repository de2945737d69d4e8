package app

import (
	"ramos/fonts/font8x8ascii"
	"ramos/hal"
	"ramos/shell"
	"ramos/state"
	"ramos/term"
)

// console owns one interactive session: the scrollback, the command
// interpreter and the compositor that paints them.
type console struct {
	h       hal.HAL
	sh      *shell.Shell
	interp  *shell.Interp
	comp    *term.Compositor
	events  <-chan hal.KeyEvent
	crashed bool
}

// New boots a console on h and returns its per-tick step function.
func New(h hal.HAL) func() error {
	c := newConsole(h)
	return c.step
}

func newConsole(h hal.HAL) *console {
	h.Logger().WriteLineString("ramos: booting")

	sh := shell.New()
	st := state.Load(h.Storage(), sh.Println)
	c := &console{
		h:      h,
		sh:     sh,
		interp: shell.NewInterp(sh, st, h.Storage(), h.Power()),
		comp:   term.New(h.Display().Framebuffer(), font8x8ascii.Font),
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			c.events = kbd.Events()
		}
	}

	sh.Println("Welcome to RAMOS meme OS (UEFI)")
	sh.Println("Type 'help' for commands.")
	if !st.HintsShown {
		sh.Println("Hint: the vault remembers the curious.")
		st.HintsShown = true
	}
	c.redraw()
	return c
}

// step drains the key events already pending and returns; it never
// blocks. Commands run to completion inside the step.
func (c *console) step() error {
	if c.crashed {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			c.crash(v)
		}
	}()

	for {
		select {
		case ev := <-c.events:
			c.handle(ev)
			c.redraw()
		default:
			return nil
		}
	}
}

func (c *console) handle(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyEnter:
		c.interp.Commit()
	case hal.KeyBackspace:
		c.sh.Backspace()
	case hal.KeyEscape:
		c.sh.ClearInput()
	default:
		if ev.Rune != 0 {
			c.sh.PushChar(ev.Rune)
		}
	}
}

func (c *console) redraw() {
	c.comp.Redraw(c.sh.Lines(), c.interp.Prompt()+c.sh.Input())
	_ = c.comp.Display()
}
