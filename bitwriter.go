package huffcode

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const byteSize = 8

// BitWriter packs single bits into bytes, least significant bit first.
//
// Because the stream begins with a count of the padding bits in its final
// byte, nothing reaches the underlying writer until Close.  Close writes the
// header and all data, then closes the underlying writer if it is an
// io.Closer.
//
type BitWriter struct {
	w       io.Writer
	closer  io.Closer
	debug   io.Writer
	buf     bytes.Buffer
	current byte
	numBits uint
	closed  bool
}

// NewBitWriter returns a BitWriter that writes to w.  The BitWriter takes
// ownership of w: if w is an io.Closer, Close will close it.
func NewBitWriter(w io.Writer) *BitWriter {
	c, _ := w.(io.Closer)
	return newBitWriter(w, c)
}

func newBitWriter(w io.Writer, c io.Closer) *BitWriter {
	return &BitWriter{w: w, closer: c}
}

// SetDebug makes every subsequent bit also be written to w as an ASCII '0' or
// '1'.  This does not change the binary output.  A nil w turns it off.
func (bw *BitWriter) SetDebug(w io.Writer) {
	bw.debug = w
}

// WriteBit appends one bit, which must be 0 or 1.
func (bw *BitWriter) WriteBit(bit uint) error {
	if bw.closed {
		return ErrClosed
	}
	if bit > 1 {
		return errors.Wrapf(ErrInvalidBit, "%d", bit)
	}
	if bw.debug != nil {
		if _, err := bw.debug.Write([]byte{'0' + byte(bit)}); err != nil {
			return errors.Wrap(err, "write debug output")
		}
	}

	bw.current |= byte(bit) << bw.numBits
	bw.numBits++
	if bw.numBits == byteSize {
		bw.buf.WriteByte(bw.current)
		bw.current = 0
		bw.numBits = 0
	}
	return nil
}

// WriteCode appends every bit of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	for i := byte(0); i < hc.Size; i++ {
		if err := bw.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// Padding returns the number of padding bits that Close would add to fill
// the final byte.
func (bw *BitWriter) Padding() uint {
	if bw.numBits == 0 {
		return 0
	}
	return byteSize - bw.numBits
}

// Close writes the padding count and the packed data, then releases the
// underlying writer.  Calls after the first do nothing.
func (bw *BitWriter) Close() error {
	if bw.closed {
		return nil
	}
	bw.closed = true

	padding := bw.Padding()
	if bw.numBits != 0 {
		bw.buf.WriteByte(bw.current)
		bw.current = 0
		bw.numBits = 0
	}

	_, err := bw.w.Write([]byte{byte(padding)})
	if err == nil {
		_, err = bw.buf.WriteTo(bw.w)
	}
	err = errors.Wrap(err, "write compressed stream")

	if bw.closer != nil {
		if cerr := bw.closer.Close(); err == nil {
			err = errors.Wrap(cerr, "close compressed stream")
		}
	}
	return err
}
