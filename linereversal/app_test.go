package linereversal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	t.Run("hello", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Handler(strings.NewReader("hello\n"), &out))
		assert.Equal(t, "\nolleh\n", out.String())
	})

	t.Run("abc", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Handler(strings.NewReader("abc\n"), &out))
		assert.Equal(t, "\ncba\n", out.String())
	})

	t.Run("multi-line input reverses as one buffer", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Handler(strings.NewReader("one\ntwo\n"), &out))
		assert.Equal(t, "\nowt\neno\n", out.String())
	})

	t.Run("empty input still prints the trailing newline", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Handler(strings.NewReader(""), &out))
		assert.Equal(t, "\n", out.String())
	})
}

func TestAppFirstLineOnly(t *testing.T) {
	app := App{FirstLineOnly: true}

	var out bytes.Buffer
	require.NoError(t, app.Run(strings.NewReader("abc\ndef\n"), &out))
	assert.Equal(t, "\ncba\n", out.String())
}

func TestAppLimit(t *testing.T) {
	t.Run("input at the limit", func(t *testing.T) {
		app := App{Limit: 6}
		var out bytes.Buffer
		require.NoError(t, app.Run(strings.NewReader("hello\n"), &out))
		assert.Equal(t, "\nolleh\n", out.String())
	})

	t.Run("input past the limit", func(t *testing.T) {
		app := App{Limit: 3}
		var out bytes.Buffer
		err := app.Run(strings.NewReader("hello\n"), &out)
		require.ErrorIs(t, err, ErrTooLong)
		assert.Empty(t, out.String(), "nothing is written on failure")
	})
}
