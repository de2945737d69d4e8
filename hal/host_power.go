package hal

import "sync"

// hostPower latches reset requests for the runners to act on after
// the current step. Firmware resets never return; on the host the
// nearest equivalent is finishing the tick and letting the runner
// tear down or restart the console.
type hostPower struct {
	mu      sync.Mutex
	pending ResetKind
}

func (p *hostPower) Reset(kind ResetKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == 0 {
		p.pending = kind
	}
}

func (p *hostPower) take() (ResetKind, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kind := p.pending
	p.pending = 0
	return kind, kind != 0
}
