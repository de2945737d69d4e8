package state

import (
	"io"
	"strings"
	"unicode/utf8"

	"ramos/hal"
)

// State file location on the boot volume.
const (
	dirEFI    = "EFI"
	dirRAMOS  = "RAMOS"
	stateFile = "state.txt"
)

// Encode renders s as line-oriented text: kv records in sorted key
// order, history records in insertion order, then the hint marker
// when set.
func Encode(s *State) []byte {
	var b strings.Builder
	for _, k := range s.VarNames() {
		b.WriteString("kv:")
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.Vars[k])
		b.WriteByte('\n')
	}
	for _, h := range s.History {
		b.WriteString("h:")
		b.WriteString(h)
		b.WriteByte('\n')
	}
	if s.HintsShown {
		b.WriteString("hint:1\n")
	}
	return []byte(b.String())
}

// Decode parses the text form. Lines matching no record kind are
// skipped, a kv line without '=' is skipped, and the first '=' splits
// key from value. Content that is not valid UTF-8 decodes as empty.
// The result is seeded when the content carried no vault key.
func Decode(content []byte) *State {
	if !utf8.Valid(content) {
		content = nil
	}
	s := New()
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, "kv:"):
			if k, v, ok := strings.Cut(line[len("kv:"):], "="); ok {
				s.Vars[k] = v
			}
		case strings.HasPrefix(line, "h:"):
			s.History = append(s.History, line[len("h:"):])
		case strings.HasPrefix(line, "hint:"):
			s.HintsShown = true
		}
	}
	if _, ok := s.Vars["_vault"]; !ok {
		s.Seed()
	}
	return s
}

// Save writes s to EFI/RAMOS/state.txt on the volume, truncating
// prior content. Directories are created as needed.
func Save(store hal.Storage, s *State) error {
	vol, err := store.Volume()
	if err != nil {
		return err
	}
	efi, err := vol.EnsureDir(dirEFI)
	if err != nil {
		return err
	}
	dir, err := efi.EnsureDir(dirRAMOS)
	if err != nil {
		return err
	}
	f, err := dir.Create(stateFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(Encode(s)); err != nil {
		return err
	}
	return f.Flush()
}

// Load reads the state file from the volume. Every failure path ends
// in a usable seeded state; when no prior file could be opened the
// fresh-session notice goes through notify.
func Load(store hal.Storage, notify func(string)) *State {
	vol, err := store.Volume()
	if err != nil {
		return freshState(notify)
	}
	efi, err := vol.EnsureDir(dirEFI)
	if err != nil {
		return freshState(notify)
	}
	dir, err := efi.EnsureDir(dirRAMOS)
	if err != nil {
		return freshState(notify)
	}
	f, err := dir.Open(stateFile)
	if err != nil {
		return freshState(notify)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		content = nil
	}
	return Decode(content)
}

// Exists reports whether a state file is present on the volume. It
// creates missing parent directories along the way.
func Exists(store hal.Storage) bool {
	vol, err := store.Volume()
	if err != nil {
		return false
	}
	efi, err := vol.EnsureDir(dirEFI)
	if err != nil {
		return false
	}
	dir, err := efi.EnsureDir(dirRAMOS)
	if err != nil {
		return false
	}
	f, err := dir.Open(stateFile)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func freshState(notify func(string)) *State {
	if notify != nil {
		notify("No prior state found. Fresh session.")
	}
	s := New()
	s.Seed()
	return s
}
