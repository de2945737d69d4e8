package app

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ramos/hal"
)

type recordingLogger struct{ lines []string }

func (l *recordingLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *recordingLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*4)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Stride() int             { return f.w }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatBGRX8888 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

type testKeyboard struct{ ch chan hal.KeyEvent }

func (k *testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testDisplay struct{ fb *testFB }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type testInput struct{ kbd *testKeyboard }

func (i testInput) Keyboard() hal.Keyboard { return i.kbd }

type latchPower struct{ resets []hal.ResetKind }

func (p *latchPower) Reset(kind hal.ResetKind) { p.resets = append(p.resets, kind) }

type testHAL struct {
	logger *recordingLogger
	fb     *testFB
	kbd    *testKeyboard
	store  hal.Storage
	power  *latchPower
}

func newTestHAL(dir string) *testHAL {
	return &testHAL{
		logger: &recordingLogger{},
		fb:     newTestFB(640, 480),
		kbd:    &testKeyboard{ch: make(chan hal.KeyEvent, 64)},
		store:  hal.NewDirStorage(dir),
		power:  &latchPower{},
	}
}

func (t *testHAL) Logger() hal.Logger   { return t.logger }
func (t *testHAL) Display() hal.Display { return testDisplay{t.fb} }
func (t *testHAL) Input() hal.Input     { return testInput{t.kbd} }
func (t *testHAL) Storage() hal.Storage { return t.store }
func (t *testHAL) Power() hal.Power     { return t.power }

func typeLine(h *testHAL, line string) {
	for _, r := range line {
		h.kbd.ch <- hal.KeyEvent{Rune: r}
	}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEnter}
}

func TestBootFreshSession(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)

	want := []string{
		"No prior state found. Fresh session.",
		"Welcome to RAMOS meme OS (UEFI)",
		"Type 'help' for commands.",
		"Hint: the vault remembers the curious.",
	}
	if diff := cmp.Diff(want, c.sh.Lines()); diff != "" {
		t.Fatalf("boot scrollback (-want +got):\n%s", diff)
	}
	if len(h.logger.lines) == 0 || h.logger.lines[0] != "ramos: booting" {
		t.Fatalf("boot log = %v", h.logger.lines)
	}
	if !c.interp.State().HintsShown {
		t.Fatalf("hint flag not set after boot")
	}
	if h.fb.presents == 0 {
		t.Fatalf("boot did not present a frame")
	}
}

func TestHintOnlyOnFirstBoot(t *testing.T) {
	dir := t.TempDir()
	c1 := newConsole(newTestHAL(dir))
	c1.interp.Execute("save")

	c2 := newConsole(newTestHAL(dir))
	want := []string{
		"Welcome to RAMOS meme OS (UEFI)",
		"Type 'help' for commands.",
	}
	if diff := cmp.Diff(want, c2.sh.Lines()); diff != "" {
		t.Fatalf("second boot scrollback (-want +got):\n%s", diff)
	}
}

func TestStepRunsCommands(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)
	booted := len(c.sh.Lines())

	typeLine(h, "help")
	if err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	got := c.sh.Lines()[booted:]
	want := []string{
		"ramos@ramos:> help",
		"Commands: help, about, clear, echo, set, get, vars, save, load, reboot, shutdown",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("help flow (-want +got):\n%s", diff)
	}
}

func TestStepRedrawsPerEventOnly(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)

	base := h.fb.presents
	if err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presents != base {
		t.Fatalf("idle step presented a frame")
	}

	h.kbd.ch <- hal.KeyEvent{Rune: 'a'}
	h.kbd.ch <- hal.KeyEvent{Rune: 'b'}
	if err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := h.fb.presents - base; got != 2 {
		t.Fatalf("presents after two events = %d; want 2", got)
	}
	if c.sh.Input() != "ab" {
		t.Fatalf("input = %q; want %q", c.sh.Input(), "ab")
	}
}

func TestEditingKeys(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)

	for _, r := range "abc" {
		h.kbd.ch <- hal.KeyEvent{Rune: r}
	}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyBackspace}
	c.step()
	if c.sh.Input() != "ab" {
		t.Fatalf("input after backspace = %q", c.sh.Input())
	}

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape}
	c.step()
	if c.sh.Input() != "" {
		t.Fatalf("input after escape = %q", c.sh.Input())
	}
}

func TestRebootLatchesColdReset(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)

	typeLine(h, "reboot")
	c.step()
	want := []hal.ResetKind{hal.ResetCold}
	if diff := cmp.Diff(want, h.power.resets); diff != "" {
		t.Fatalf("reset requests (-want +got):\n%s", diff)
	}
}

type armedStorage struct {
	inner hal.Storage
	armed bool
}

func (s *armedStorage) Volume() (hal.Dir, error) {
	if s.armed {
		panic("volume detached")
	}
	return s.inner.Volume()
}

func TestStepRecoversPanics(t *testing.T) {
	h := newTestHAL(t.TempDir())
	st := &armedStorage{inner: h.store}
	h.store = st
	c := newConsole(h)

	st.armed = true
	typeLine(h, "save")
	if err := c.step(); err != nil {
		t.Fatalf("step returned %v; want nil after crash", err)
	}
	if !c.crashed {
		t.Fatalf("console did not latch the crash")
	}
	found := false
	for _, line := range h.logger.lines {
		if line == "ramos: panic: volume detached" {
			found = true
		}
	}
	if !found {
		t.Fatalf("panic not logged: %v", h.logger.lines)
	}
}

func TestCrashHaltsConsole(t *testing.T) {
	h := newTestHAL(t.TempDir())
	c := newConsole(h)

	c.crash(fmt.Errorf("boom"))
	if h.logger.lines[1] != "ramos: panic: boom" {
		t.Fatalf("panic log = %v", h.logger.lines[:2])
	}
	if got := h.fb.buf[0]; got != crashBackground.B {
		t.Fatalf("corner byte after crash = %d; want %d", got, crashBackground.B)
	}

	h.kbd.ch <- hal.KeyEvent{Rune: 'x'}
	if err := c.step(); err != nil {
		t.Fatalf("halted step: %v", err)
	}
	if c.sh.Input() != "" {
		t.Fatalf("halted console still took input: %q", c.sh.Input())
	}
}
