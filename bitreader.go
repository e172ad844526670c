package huffcode

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const noByte = -1

// BitReader reads single bits from a stream written by BitWriter.  The first
// byte of the stream declares how many bits at the end of the final byte are
// padding; those bits are never returned.
//
// BitReader keeps one byte of lookahead so that it knows which byte is the
// final one.
//
type BitReader struct {
	r       io.ByteReader
	closer  io.Closer
	current int
	next    int
	numBits int
	padding int
	closed  bool
}

// NewBitReader returns a BitReader that reads from r.  The BitReader takes
// ownership of r: if r is an io.Closer, Close will close it, and so will
// NewBitReader itself if it fails.
//
// An empty r is a valid, empty stream.
//
func NewBitReader(r io.Reader) (*BitReader, error) {
	c, _ := r.(io.Closer)
	return newBitReader(r, c)
}

func newBitReader(r io.Reader, c io.Closer) (*BitReader, error) {
	br := &BitReader{closer: c}
	if byteReader, ok := r.(io.ByteReader); ok {
		br.r = byteReader
	} else {
		br.r = bufio.NewReader(r)
	}

	err := br.init()
	if err != nil {
		_ = br.Close()
		return nil, err
	}
	return br, nil
}

func (br *BitReader) init() error {
	var err error
	if br.padding, err = br.readByte(); err != nil {
		return err
	}
	if br.padding >= byteSize {
		return errors.Wrapf(ErrCorrupt, "padding count %d > %d", br.padding, byteSize-1)
	}
	if br.next, err = br.readByte(); err != nil {
		return err
	}
	return br.advance()
}

// Padding returns the number of padding bits declared by the stream header.
// It is 0 for an empty stream.
func (br *BitReader) Padding() int {
	if br.padding == noByte {
		return 0
	}
	return br.padding
}

// HasNext returns true iff there is at least one more bit to read.
func (br *BitReader) HasNext() bool {
	if br.closed || br.current == noByte {
		return false
	}
	onlyPadding := br.next == noByte && byteSize-br.numBits == br.padding
	return !onlyPadding
}

// Next returns the next bit.  It fails with ErrExhausted if there is none.
func (br *BitReader) Next() (uint, error) {
	if br.closed {
		return 0, ErrClosed
	}
	if !br.HasNext() {
		return 0, ErrExhausted
	}

	bit := uint(br.current & 1)
	br.current >>= 1
	br.numBits++
	if br.numBits == byteSize {
		if err := br.advance(); err != nil {
			return 0, err
		}
	}
	return bit, nil
}

// Close releases the underlying reader.  Calls after the first do nothing.
func (br *BitReader) Close() error {
	if br.closed {
		return nil
	}
	br.closed = true
	if br.closer == nil {
		return nil
	}
	return errors.Wrap(br.closer.Close(), "close compressed stream")
}

func (br *BitReader) advance() error {
	br.current = br.next
	br.numBits = 0
	if br.current == noByte {
		return nil
	}
	var err error
	br.next, err = br.readByte()
	return err
}

func (br *BitReader) readByte() (int, error) {
	b, err := br.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return noByte, nil
	}
	if err != nil {
		return noByte, errors.Wrap(err, "read compressed stream")
	}
	return int(b), nil
}
