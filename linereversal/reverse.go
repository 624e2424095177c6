package linereversal

import "strings"

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
	}
	return b.String()
}

// ReverseBytes reverses b in place: byte i swaps with byte len(b)-1-i.
// Zero- and one-byte slices are left alone.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
