// Package huffcode implements byte-oriented Huffman coding: building a prefix
// code from symbol frequencies, saving that code as a text table, and packing
// coded bits into a compact byte stream (and back again).
//
// The code table is line-oriented.  Each symbol takes two lines: its decimal
// value (0-255), then its path from the root of the tree as a string of '0'
// (left) and '1' (right) digits.
//
//     97
//     0
//     98
//     10
//     99
//     11
//
// The compressed stream begins with a single byte holding the number of zero
// padding bits (0-7) in its final byte, followed by the packed data.  Bits are
// packed least significant bit first.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
