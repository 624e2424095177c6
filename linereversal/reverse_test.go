package linereversal

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseBytes(t *testing.T) {
	t.Run("abc with newline", func(t *testing.T) {
		b := []byte("abc\n")
		ReverseBytes(b)
		assert.Equal(t, []byte("\ncba"), b)
	})

	t.Run("hello with newline", func(t *testing.T) {
		b := []byte("hello\n")
		ReverseBytes(b)
		assert.Equal(t, []byte("\nolleh"), b)
	})

	t.Run("empty and single byte are no-ops", func(t *testing.T) {
		ReverseBytes(nil)

		b := []byte{}
		ReverseBytes(b)
		assert.Empty(t, b)

		one := []byte("x")
		ReverseBytes(one)
		assert.Equal(t, []byte("x"), one)
	})

	t.Run("even and odd lengths", func(t *testing.T) {
		even := []byte("abcd")
		ReverseBytes(even)
		assert.Equal(t, []byte("dcba"), even)

		odd := []byte("abcde")
		ReverseBytes(odd)
		assert.Equal(t, []byte("edcba"), odd)
	})

	t.Run("reversing twice restores the original", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 3, 64, 1023, 1024, 4096} {
			b := make([]byte, n)
			_, err := rand.Read(b)
			require.NoError(t, err)
			orig := append([]byte(nil), b...)

			ReverseBytes(b)
			ReverseBytes(b)
			assert.Equal(t, orig, b, "length %d", n)
		}
	})
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "olleh", Reverse("hello"))
	assert.Equal(t, "\ncba", Reverse("abc\n"))

	t.Run("matches in-place reversal", func(t *testing.T) {
		for _, s := range []string{"", "a", "ab", "hello\n", "line one\nline two\n"} {
			b := []byte(s)
			ReverseBytes(b)
			assert.Equal(t, string(b), Reverse(s))
		}
	})
}

func BenchmarkReverseBytes(b *testing.B) {
	buf := make([]byte, 1024)
	for i := 0; i < b.N; i++ {
		ReverseBytes(buf)
	}
}
