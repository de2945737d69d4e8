package state

import "testing"

func TestDecodeLenientVaultPayload(t *testing.T) {
	got, ok := DecodeLenient("UkFNT1N7RjB1bmRfM3ZlbjNfenJfc3Qwbmx5X2luX3RoZV9mdXR1cmV9")
	if !ok {
		t.Fatalf("vault payload failed to decode")
	}
	if want := "RAMOS{F0und_3ven3_zr_st0nly_in_the_future}"; got != want {
		t.Fatalf("decoded %q; want %q", got, want)
	}
}

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "", true},
		{"Zm9v", "foo", true},
		// The first '=' ends the input even with valid symbols after it.
		{"Zm9v=YmFy", "foo", true},
		// Non-alphabet bytes are skipped, not rejected.
		{"Zm\n9 v!", "foo", true},
		{"Zm9", "fo", true},
		{"Zm", "f", true},
		// A lone trailing symbol contributes nothing.
		{"Z", "", true},
		// 0xFF output is not UTF-8.
		{"//", "", false},
	}
	for _, tt := range tests {
		got, ok := DecodeLenient(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("DecodeLenient(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
