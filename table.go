package huffcode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// CodeTable maps each symbol to its code.  Symbols without a code have a
// zero-length Code.
type CodeTable [NumSymbols]Code

// Encode returns the code for the given symbol.  It fails with
// ErrMissingCode if the symbol has no code.
func (ct *CodeTable) Encode(symbol Symbol) (Code, error) {
	if !symbol.IsValid() {
		return Code{}, errors.Wrapf(ErrMissingCode, "symbol %d is out of range", symbol)
	}
	hc := ct[symbol]
	if hc.Size == 0 {
		return hc, errors.Wrapf(ErrMissingCode, "no code for symbol %d (%q)", symbol, rune(symbol))
	}
	return hc, nil
}

// Save writes the tree to w as a text code table.  Leaves are written in
// left-to-right order, two lines each: the symbol's decimal value, then its
// code as '0' and '1' digits.  Nothing is written for an empty tree.
func (t *Tree) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	err := t.walk(func(symbol Symbol, _ uint64, hc Code) error {
		_, err := fmt.Fprintf(bw, "%d\n%s\n", symbol, hc.Text())
		return err
	})
	if err == nil {
		err = bw.Flush()
	}
	return errors.Wrap(err, "write code table")
}

// LoadTree reads a text code table, as written by Save, and reconstructs the
// tree it describes.  The order of the entries does not matter.
//
// LoadTree fails with ErrMalformedTable if the input has an odd number of
// lines, if a symbol is not a decimal integer in the range 0..255 or appears
// twice, if a code is empty or contains anything other than '0' and '1', or
// if one code is a prefix of another.
//
func LoadTree(r io.Reader) (*Tree, error) {
	t := &Tree{root: noNode}

	var seen [NumSymbols]bool
	var lineNum int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		symbolLine := sc.Text()
		if !sc.Scan() {
			break
		}
		lineNum++
		codeLine := sc.Text()

		value, err := strconv.Atoi(symbolLine)
		if err != nil || value < 0 || value > int(MaxSymbol) {
			return nil, errors.Wrapf(ErrMalformedTable, "line %d: invalid symbol %q", lineNum-1, symbolLine)
		}
		symbol := Symbol(value)
		if seen[symbol] {
			return nil, errors.Wrapf(ErrMalformedTable, "line %d: duplicate symbol %d", lineNum-1, symbol)
		}
		seen[symbol] = true

		hc, err := ParseCode(codeLine)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		if hc.Size == 0 {
			return nil, errors.Wrapf(ErrMalformedTable, "line %d: empty code for symbol %d", lineNum, symbol)
		}

		if err := t.insert(symbol, hc); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read code table")
	}
	if lineNum%2 != 0 {
		return nil, errors.Wrapf(ErrMalformedTable, "odd number of lines (%d)", lineNum)
	}
	return t, nil
}

// insert adds a leaf for symbol at the end of the path hc, creating internal
// nodes along the way as needed.
func (t *Tree) insert(symbol Symbol, hc Code) error {
	if t.root == noNode {
		t.root = t.addInternal(0, noNode, noNode)
	}

	index := t.root
	last := hc.Size - 1
	for i := byte(0); i < last; i++ {
		bit := hc.Bit(i)
		next := t.child(index, bit)
		if next == noNode {
			next = t.addInternal(0, noNode, noNode)
			t.setChild(index, bit, next)
		} else if t.nodes[next].isLeaf() {
			return errors.Wrapf(ErrMalformedTable, "code %s for symbol %d passes through the leaf for symbol %d", hc, symbol, t.nodes[next].symbol)
		}
		index = next
	}

	bit := hc.Bit(last)
	if existing := t.child(index, bit); existing != noNode {
		if t.nodes[existing].isLeaf() {
			return errors.Wrapf(ErrMalformedTable, "code %s for symbol %d is already used by symbol %d", hc, symbol, t.nodes[existing].symbol)
		}
		return errors.Wrapf(ErrMalformedTable, "code %s for symbol %d is a prefix of other codes", hc, symbol)
	}
	t.setChild(index, bit, t.addLeaf(symbol, 0))
	return nil
}
