// Package linereversal reads one logical chunk of text from an input
// stream, reverses its bytes in place, and writes the result followed by a
// newline.
package linereversal

import "io"

// App configures the read-reverse-write pipeline.
//
// FirstLineOnly stops accepting input at the first newline; the newline
// itself is kept, so it comes out first. Limit caps the accepted input
// size in bytes (0 = unlimited); past it the run fails with ErrTooLong
// rather than truncating.
type App struct {
	FirstLineOnly bool
	Limit         int
}

func (a *App) Run(in io.Reader, out io.Writer) error {
	buf := NewBuffer(a.Limit)

	var err error
	if a.FirstLineOnly {
		_, err = buf.ReadLine(in)
	} else {
		_, err = buf.ReadFrom(in)
	}
	if err != nil {
		return err
	}

	b := buf.Bytes()
	ReverseBytes(b)

	if _, err := out.Write(b); err != nil {
		return err
	}
	_, err = out.Write([]byte{'\n'})
	return err
}

// Handler runs the default pipeline: read everything, reverse, print.
func Handler(in io.Reader, out io.Writer) error {
	app := App{}
	return app.Run(in, out)
}
