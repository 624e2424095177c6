package linereversal

import (
	"bytes"
	"errors"
	"io"
)

// ChunkSize bounds a single read. The buffer itself grows past it as
// needed.
const ChunkSize = 1024

var ErrTooLong = errors.New("input exceeds byte limit")

// Buffer accumulates input across bounded reads. A limit of 0 accepts
// anything; otherwise accepting more than limit bytes fails with ErrTooLong
// instead of silently truncating.
type Buffer struct {
	limit int
	buf   []byte
}

func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

func (b *Buffer) Write(p []byte) (int, error) {
	if b.limit > 0 && len(b.buf)+len(p) > b.limit {
		return 0, ErrTooLong
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// ReadFrom keeps reading chunks until end-of-data. Input delivered across
// several partial reads accumulates exactly like one read of the
// concatenated bytes.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	chunk := make([]byte, ChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if _, werr := b.Write(chunk[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ReadLine accepts input only up to and including the first newline. If
// end-of-data arrives first, everything read so far is the line.
func (b *Buffer) ReadLine(r io.Reader) (int64, error) {
	var total int64
	chunk := make([]byte, ChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			take := chunk[:n]
			done := false
			if i := bytes.IndexByte(take, '\n'); i >= 0 {
				take = take[:i+1]
				done = true
			}
			if _, werr := b.Write(take); werr != nil {
				return total, werr
			}
			total += int64(len(take))
			if done {
				return total, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
