package huffcode

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Translate decodes bits from br using this tree and writes the decoded
// symbols to w, until br has no more bits.
//
// Translate fails with ErrExhausted if the bits run out in the middle of a
// code, and with ErrCorrupt if the bits lead to a branch that the tree does
// not have.
//
func (t *Tree) Translate(br *BitReader, w io.ByteWriter) error {
	for br.HasNext() {
		if t.root == noNode {
			return errors.Wrap(ErrCorrupt, "stream has data but the code tree is empty")
		}

		index := t.root
		var hc Code
		for !t.nodes[index].isLeaf() {
			if !br.HasNext() {
				return errors.Wrapf(ErrExhausted, "stream ends in the middle of code %s", hc)
			}
			bit, err := br.Next()
			if err != nil {
				return err
			}
			hc = hc.Append(bit)
			index = t.child(index, bit)
			if index == noNode {
				return errors.Wrapf(ErrCorrupt, "code %s does not match any symbol", hc)
			}
		}

		if err := w.WriteByte(byte(t.nodes[index].symbol)); err != nil {
			return errors.Wrap(err, "write decompressed output")
		}
	}
	return nil
}

// EncodeTo reads bytes from r until EOF and writes the code for each one to
// bw.  It fails with ErrMissingCode at the first byte that has no code.
func (ct *CodeTable) EncodeTo(bw *BitWriter, r io.ByteReader) error {
	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read source")
		}

		hc, err := ct.Encode(Symbol(b))
		if err != nil {
			return err
		}
		if err := bw.WriteCode(hc); err != nil {
			return err
		}
	}
}

// WriteCodeTable counts the byte frequencies of src, builds a Huffman tree
// from them, and saves that tree to dst as a text code table.
func WriteCodeTable(dst io.Writer, src io.Reader) (*Tree, error) {
	freqs, err := CountFrequencies(src)
	if err != nil {
		return nil, err
	}
	t := NewTree(&freqs)
	if err := t.Save(dst); err != nil {
		return nil, err
	}
	return t, nil
}

// Compress encodes src with the codes of t and writes the compressed stream
// to dst.  If debug is not nil, every bit is also echoed to it as an ASCII
// '0' or '1'.
//
// Compress does not close dst.  Nothing is written to dst if encoding fails.
//
func Compress(dst io.Writer, src io.Reader, t *Tree, debug io.Writer) error {
	bw := newBitWriter(dst, nil)
	bw.SetDebug(debug)

	ct := t.Codes()
	if err := ct.EncodeTo(bw, bufio.NewReader(src)); err != nil {
		return err
	}
	return bw.Close()
}

// Decompress decodes the compressed stream src with t and writes the result
// to dst.  Decompress does not close either stream.
func Decompress(dst io.Writer, src io.Reader, t *Tree) error {
	br, err := newBitReader(src, nil)
	if err != nil {
		return err
	}
	defer br.Close()

	w := bufio.NewWriter(dst)
	if err := t.Translate(br, w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write decompressed output")
}
