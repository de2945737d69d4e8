// Package state holds the console's persisted session state and its
// on-disk text codec.
package state

import "sort"

const vaultPayload = "UkFNT1N7RjB1bmRfM3ZlbjNfenJfc3Qwbmx5X2luX3RoZV9mdXR1cmV9"

// State is everything the console persists across sessions. Vars
// always carries the user and host identity keys; keys starting with
// an underscore are hidden from listings but not from get/set.
type State struct {
	Vars       map[string]string
	History    []string
	HintsShown bool
}

// New returns a fresh state carrying the default identity vars.
func New() *State {
	return &State{
		Vars: map[string]string{
			"user": "ramos",
			"host": "ramos",
		},
	}
}

// Seed plants the vault payload and its two hint history lines. Every
// bootstrap path that found no vault runs it, so a live state always
// carries the hidden payload.
func (s *State) Seed() {
	s.Vars["_vault"] = vaultPayload
	s.History = append(s.History,
		"echo the vault lives under hidden keys",
		"echo base64 unlocks forgotten things",
	)
}

// VarNames returns the var keys in sorted order.
func (s *State) VarNames() []string {
	names := make([]string, 0, len(s.Vars))
	for k := range s.Vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// VarOr returns the named var, or fallback when it is unset.
func (s *State) VarOr(key, fallback string) string {
	if v, ok := s.Vars[key]; ok {
		return v
	}
	return fallback
}
