// Package shell holds the console's visible state and interprets
// committed command lines.
package shell

// Shell is the operator-visible console state: the scrollback plus
// the line being edited.
type Shell struct {
	lines []string
	input []rune
}

func New() *Shell { return &Shell{} }

// Println appends one line to the scrollback.
func (s *Shell) Println(line string) { s.lines = append(s.lines, line) }

// Lines returns the scrollback for rendering.
func (s *Shell) Lines() []string { return s.lines }

// Input returns the uncommitted input line.
func (s *Shell) Input() string { return string(s.input) }

// PushChar appends a printable ASCII character or space to the input
// line. Anything else is dropped silently.
func (s *Shell) PushChar(r rune) {
	if r < 0x20 || r > 0x7e {
		return
	}
	s.input = append(s.input, r)
}

// Backspace removes the last input character, if any.
func (s *Shell) Backspace() {
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// ClearInput discards the uncommitted input line.
func (s *Shell) ClearInput() { s.input = s.input[:0] }

// TakeInput returns the input line and resets it to empty.
func (s *Shell) TakeInput() string {
	out := string(s.input)
	s.input = s.input[:0]
	return out
}

// Clear empties the scrollback.
func (s *Shell) Clear() { s.lines = s.lines[:0] }
