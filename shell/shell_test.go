package shell

import "testing"

func TestPushCharFilter(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{' ', " "},
		{'a', "a"},
		{'~', "~"},
		{0x1f, ""},
		{0x7f, ""},
		{'\n', ""},
		{'й', ""},
	}
	for _, tt := range tests {
		s := New()
		s.PushChar(tt.r)
		if got := s.Input(); got != tt.want {
			t.Fatalf("PushChar(%q) left input %q; want %q", tt.r, got, tt.want)
		}
	}
}

func TestBackspace(t *testing.T) {
	s := New()
	s.Backspace()
	if got := s.Input(); got != "" {
		t.Fatalf("backspace on empty input produced %q", got)
	}
	s.PushChar('h')
	s.PushChar('i')
	s.Backspace()
	if got := s.Input(); got != "h" {
		t.Fatalf("input = %q; want %q", got, "h")
	}
}

func TestTakeInputResets(t *testing.T) {
	s := New()
	for _, r := range "help" {
		s.PushChar(r)
	}
	if got := s.TakeInput(); got != "help" {
		t.Fatalf("TakeInput = %q; want %q", got, "help")
	}
	if got := s.Input(); got != "" {
		t.Fatalf("input after take = %q; want empty", got)
	}
}

func TestClearInput(t *testing.T) {
	s := New()
	for _, r := range "doomed" {
		s.PushChar(r)
	}
	s.ClearInput()
	if got := s.Input(); got != "" {
		t.Fatalf("input after clear = %q; want empty", got)
	}
}

func TestClearScrollback(t *testing.T) {
	s := New()
	s.Println("one")
	s.Println("two")
	s.Clear()
	if got := s.Lines(); len(got) != 0 {
		t.Fatalf("scrollback after clear = %v; want empty", got)
	}
}
