package huffcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// MaxCodeSize is the maximum number of bits in a Code.  A Huffman tree over
// NumSymbols leaves is never deeper than NumSymbols-1.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits: the path from the root of a Tree to one
// of its leaves, where 0 means "go left" and 1 means "go right".
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	if size < 64 {
		bits &= (uint64(1) << size) - 1
	}
	var hc Code
	hc.Size = size
	hc.Bits[0] = bits
	return hc
}

// ParseCode parses a string of '0' and '1' digits, first bit first.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > MaxCodeSize {
		return hc, errors.Wrapf(ErrMalformedTable, "code is %d bits long, max %d", len(str), MaxCodeSize)
	}
	for i := 0; i < len(str); i++ {
		bit, ok := parseDigit(str[i])
		if !ok {
			return hc, errors.Wrapf(ErrMalformedTable, "code %q: invalid character %q at index %d", str, str[i], i)
		}
		hc = hc.Append(bit)
	}
	return hc, nil
}

// Bit returns the bit at the given index, which must be less than Size.
func (hc Code) Bit(index byte) uint {
	assert.Assertf(index < hc.Size, "index %d >= size %d", index, hc.Size)
	return uint(hc.Bits[index/64]>>(index%64)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code is already %d bits long", hc.Size)
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	hc.Bits[hc.Size/64] |= uint64(bit) << (hc.Size % 64)
	hc.Size++
	return hc
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are equal
// to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Text returns the bits of this Code as '0' and '1' digits, in the form used
// by the text code table.
func (hc Code) Text() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Text())
}

var _ fmt.Stringer = Code{}
