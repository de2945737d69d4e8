package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"ramos/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale    int
	StateDir string
}

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes or the
// console powers off.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	h := newHost(cfg.StateDir)

	g := &hostGame{h: h, newApp: newApp, step: newApp(h)}
	ebiten.SetWindowTitle("RAMOS (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	newApp  func(HAL) func() error
	step    func() error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	if kind, ok := g.h.pw.take(); ok {
		switch kind {
		case ResetShutdown:
			return ebiten.Termination
		case ResetCold:
			g.h.logger.WriteLineString("hal: cold reset")
			g.step = g.newApp(g.h)
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	bgr := fb.Format() == PixelFormatBGRX8888
	for y := 0; y < fb.height; y++ {
		si := y * fb.stride * 4
		di := y * fb.width * 4
		for x := 0; x < fb.width; x++ {
			cb, cg, cr := src[si], src[si+1], src[si+2]
			if !bgr {
				cb, cr = cr, cb
			}
			dst[di+0] = cr
			dst[di+1] = cg
			dst[di+2] = cb
			dst[di+3] = 0xFF
			si += 4
			di += 4
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
