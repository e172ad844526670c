package huffcode

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree over the byte alphabet.  Leaves hold symbols;
// every other node is internal.  The path from the root to a leaf, 0 for
// left and 1 for right, is the code for that leaf's symbol.
//
// A Tree is built either from frequencies (NewTree) or from a text code table
// (LoadTree), and is read-only after that.
//
type Tree struct {
	nodes []node
	root  nodeIndex
}

type nodeIndex int32

const noNode = nodeIndex(-1)

type node struct {
	symbol Symbol
	freq   uint64
	left   nodeIndex
	right  nodeIndex
}

func (n node) isLeaf() bool {
	return n.symbol != InvalidSymbol
}

// NewTree builds a Huffman tree from the given frequencies.  Symbols with a
// frequency of 0 are left out of the tree.
//
// Nodes are merged lowest frequency first.  Ties are broken by creation
// order: leaves in symbol order, then merged nodes in the order they were
// created.  Of the two nodes removed in each step, the first becomes the left
// child and the second becomes the right child.
//
// If exactly one symbol has a non-zero frequency, its leaf is placed as the
// left child of an internal root with no right child, giving it the code "0".
// If no symbol has a non-zero frequency, the tree is empty.
//
func NewTree(freqs *FrequencyTable) *Tree {
	numLeaves := freqs.Len()
	t := &Tree{
		nodes: make([]node, 0, 2*numLeaves),
		root:  noNode,
	}

	h := nodeHeap{tree: t, list: make([]nodeIndex, 0, numLeaves)}
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			h.list = append(h.list, t.addLeaf(symbol, freq))
		}
	}

	switch numLeaves {
	case 0:
		return t
	case 1:
		only := h.list[0]
		t.root = t.addInternal(t.nodes[only].freq, only, noNode)
		return t
	}

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeIndex)
		b := heap.Pop(&h).(nodeIndex)

		// Compute freqSum using saturating addition
		freqSum := t.nodes[a].freq + t.nodes[b].freq
		if freqSum < t.nodes[a].freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, t.addInternal(freqSum, a, b))
	}
	t.root = heap.Pop(&h).(nodeIndex)

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree over %d leaves has %d nodes", numLeaves, len(t.nodes))
	return t
}

// IsEmpty returns true iff the tree has no leaves.
func (t *Tree) IsEmpty() bool {
	return t.root == noNode
}

// Codes returns the code for every symbol in the tree.  Symbols that are not
// in the tree have a zero-length Code.
func (t *Tree) Codes() *CodeTable {
	ct := new(CodeTable)
	t.walk(func(symbol Symbol, _ uint64, hc Code) error {
		ct[symbol] = hc
		return nil
	})
	return ct
}

// MaxDepth returns the length of the longest code in the tree.
func (t *Tree) MaxDepth() byte {
	var depth byte
	t.walk(func(_ Symbol, _ uint64, hc Code) error {
		if depth < hc.Size {
			depth = hc.Size
		}
		return nil
	})
	return depth
}

// Dump writes a programmer-readable debugging dump of the Tree's leaves, in
// left-to-right order, to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMaxDepth() = %d\n", t.MaxDepth())
	t.walk(func(symbol Symbol, freq uint64, hc Code) error {
		fmt.Fprintf(&buf, "\tLeaf(%d) = {%s, %d}\n", symbol, hc, freq)
		return nil
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Print writes a sideways drawing of the tree to the given writer: the root
// is on the left, right subtrees are drawn above their parent and left
// subtrees below.
func (t *Tree) Print(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if t.root != noNode {
		t.print(&buf, t.root, 0, "---")
	}
	return buf.WriteTo(w)
}

func (t *Tree) print(buf *bytes.Buffer, index nodeIndex, depth int, edge string) {
	const indent = "    "
	n := t.nodes[index]
	if n.isLeaf() {
		fmt.Fprintf(buf, "%s%s%d %s\n", strings.Repeat(indent, depth), edge, n.symbol, strconv.Quote(string([]byte{byte(n.symbol)})))
		return
	}
	if n.right != noNode {
		t.print(buf, n.right, depth+1, "/--")
	}
	fmt.Fprintf(buf, "%s%s<\n", strings.Repeat(indent, depth), edge)
	if n.left != noNode {
		t.print(buf, n.left, depth+1, "\\--")
	}
}

// walk visits every leaf in left-to-right order, passing its symbol,
// frequency and code to fn.  It stops at the first error returned by fn.
func (t *Tree) walk(fn func(Symbol, uint64, Code) error) error {
	if t.root == noNode {
		return nil
	}

	type stackItem struct {
		index nodeIndex
		code  Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes)))+1)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.index]
		if n.isLeaf() {
			if err := fn(n.symbol, n.freq, top.code); err != nil {
				return err
			}
			continue
		}

		// Right is pushed first so that left is visited first.
		if n.right != noNode {
			stack = append(stack, stackItem{n.right, top.code.Append(1)})
		}
		if n.left != noNode {
			stack = append(stack, stackItem{n.left, top.code.Append(0)})
		}
	}
	return nil
}

func (t *Tree) addLeaf(symbol Symbol, freq uint64) nodeIndex {
	assert.Assertf(symbol.IsValid(), "invalid symbol %d", symbol)
	t.nodes = append(t.nodes, node{symbol: symbol, freq: freq, left: noNode, right: noNode})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *Tree) addInternal(freq uint64, left nodeIndex, right nodeIndex) nodeIndex {
	t.nodes = append(t.nodes, node{symbol: InvalidSymbol, freq: freq, left: left, right: right})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *Tree) child(index nodeIndex, bit uint) nodeIndex {
	if bit == 0 {
		return t.nodes[index].left
	}
	return t.nodes[index].right
}

func (t *Tree) setChild(index nodeIndex, bit uint, child nodeIndex) {
	if bit == 0 {
		t.nodes[index].left = child
	} else {
		t.nodes[index].right = child
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []nodeIndex
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeIndex))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
