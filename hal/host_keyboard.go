package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// poll translates the current ebiten input state into key events.
// Only presses are reported; a full channel drops events.
func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		emit(KeyEvent{Code: KeyEnter})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEvent{Code: KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		emit(KeyEvent{Code: KeyBackspace})
	}
}
