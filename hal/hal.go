package hal

import "io"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatBGRX8888 is 32bpp: blue, green, red, reserved.
	PixelFormatBGRX8888 PixelFormat = iota + 1
	// PixelFormatRGBX8888 is 32bpp: red, green, blue, reserved.
	PixelFormatRGBX8888
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Stride is in pixels, not bytes, and may exceed Width. The fourth
// byte of each pixel is reserved and never interpreted.
type Framebuffer interface {
	Width() int
	Height() int
	Stride() int
	Format() PixelFormat
	Buffer() []byte
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a key press. Printable input carries the rune with
// KeyUnknown; editing keys carry a code with a zero rune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// File is an open regular file on the boot volume.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Flush() error
}

// Dir is a directory handle on the boot volume.
type Dir interface {
	// EnsureDir opens the named subdirectory, creating it if absent.
	EnsureDir(name string) (Dir, error)
	// Open opens an existing regular file for reading.
	Open(name string) (File, error)
	// Create opens the named regular file for writing, truncating it.
	Create(name string) (File, error)
}

// Storage provides access to the boot volume.
type Storage interface {
	Volume() (Dir, error)
}

// ResetKind selects how Power.Reset leaves the system.
type ResetKind uint8

const (
	// ResetCold restarts the system from scratch.
	ResetCold ResetKind = iota + 1
	// ResetShutdown powers the system off.
	ResetShutdown
)

// Power requests machine resets. Reset is fire-and-forget: callers do
// not observe a result, and on real firmware it does not return.
type Power interface {
	Reset(kind ResetKind)
}

// HAL provides the only contact point between the console and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Storage() Storage
	Power() Power
}
