package state

import (
	"strings"
	"unicode/utf8"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// DecodeLenient decodes base64 the forgiving way: bytes outside the
// alphabet are skipped, the first '=' ends the input, and a trailing
// group of 3 or 2 symbols still yields its 2 or 1 bytes. The decoded
// bytes must form valid UTF-8, otherwise ok is false. This leniency
// is load-bearing for vault payloads; do not swap in a strict
// decoder.
func DecodeLenient(in string) (out string, ok bool) {
	var dec []byte
	var chunk [4]byte
	n := 0
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b == '=' {
			break
		}
		pos := strings.IndexByte(base64Alphabet, b)
		if pos < 0 {
			continue
		}
		chunk[n] = byte(pos)
		n++
		if n == 4 {
			dec = append(dec,
				chunk[0]<<2|chunk[1]>>4,
				chunk[1]<<4|chunk[2]>>2,
				chunk[2]<<6|chunk[3],
			)
			n = 0
		}
	}
	switch n {
	case 3:
		dec = append(dec, chunk[0]<<2|chunk[1]>>4, chunk[1]<<4|chunk[2]>>2)
	case 2:
		dec = append(dec, chunk[0]<<2|chunk[1]>>4)
	}
	if !utf8.Valid(dec) {
		return "", false
	}
	return string(dec), true
}
