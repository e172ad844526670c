package huffcode

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestFreqs() *FrequencyTable {
	var ft FrequencyTable
	for symbol, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		ft[symbol] = freq
	}
	return &ft
}

func TestNewTree(t *testing.T) {
	tree := NewTree(makeTestFreqs())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tMaxDepth() = 4\n",
		"\tLeaf(5) = {\"0\", 45}\n",
		"\tLeaf(2) = {\"100\", 12}\n",
		"\tLeaf(3) = {\"101\", 13}\n",
		"\tLeaf(0) = {\"1100\", 5}\n",
		"\tLeaf(1) = {\"1101\", 9}\n",
		"\tLeaf(4) = {\"111\", 16}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	ct := tree.Codes()
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	for symbol, size := range expectSizes {
		if actual := ct[symbol].Size; actual != size {
			t.Errorf("symbol %d: expected size %d, got %d", symbol, size, actual)
		}
	}
	for symbol := len(expectSizes); symbol < NumSymbols; symbol++ {
		if ct[symbol].Size != 0 {
			t.Errorf("symbol %d: expected no code, got %s", symbol, ct[symbol])
		}
	}
}

func TestNewTree_Empty(t *testing.T) {
	var ft FrequencyTable
	tree := NewTree(&ft)
	require.True(t, tree.IsEmpty())
	require.Equal(t, byte(0), tree.MaxDepth())

	var buf strings.Builder
	require.NoError(t, tree.Save(&buf))
	require.Empty(t, buf.String())
}

func TestNewTree_SingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft['x'] = 17
	tree := NewTree(&ft)
	require.False(t, tree.IsEmpty())

	ct := tree.Codes()
	hc, err := ct.Encode('x')
	require.NoError(t, err)
	require.Equal(t, "0", hc.Text())
	require.Equal(t, uint64(17), ft.EncodedBits(ct))
}

func TestNewTree_TwoSymbols(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 1
	ft['b'] = 2
	tree := NewTree(&ft)

	expectPrint := strings.Join([]string{
		"    /--98 \"b\"\n",
		"---<\n",
		"    \\--97 \"a\"\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Print(&buf)
	require.Equal(t, expectPrint, buf.String())
}

func TestNewTree_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		ft := randomFreqs(rng)
		tree := NewTree(&ft)
		ct := tree.Codes()

		var codes []Code
		for symbol, freq := range ft {
			if freq == 0 {
				require.Zero(t, ct[symbol].Size, "symbol %d has no frequency but has a code", symbol)
				continue
			}
			require.NotZero(t, ct[symbol].Size, "symbol %d has no code", symbol)
			codes = append(codes, ct[symbol])
		}

		for i := range codes {
			for j := range codes {
				if i != j {
					require.False(t, codes[i].HasPrefix(codes[j]), "%s has prefix %s", codes[i], codes[j])
				}
			}
		}
	}
}

func TestNewTree_Optimal(t *testing.T) {
	require.Equal(t, uint64(224), makeTestFreqs().EncodedBits(NewTree(makeTestFreqs()).Codes()))

	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 50; iter++ {
		ft := randomFreqs(rng)
		if ft.Len() < 2 {
			continue
		}
		actual := ft.EncodedBits(NewTree(&ft).Codes())
		require.Equal(t, huffmanCost(&ft), actual)
	}
}

func TestNewTree_Deep(t *testing.T) {
	// Fibonacci frequencies produce the most lopsided tree possible.
	var ft FrequencyTable
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < 40; symbol++ {
		ft[symbol] = a
		a, b = b, a+b
	}
	tree := NewTree(&ft)
	require.Equal(t, byte(39), tree.MaxDepth())
}

// huffmanCost returns the optimal encoded size for ft, computed as the sum
// of the weights of every merged node.
func huffmanCost(ft *FrequencyTable) uint64 {
	var weights []uint64
	for _, freq := range ft {
		if freq != 0 {
			weights = append(weights, freq)
		}
	}
	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		sum := weights[0] + weights[1]
		cost += sum
		weights = append(weights[2:], sum)
	}
	return cost
}

func randomFreqs(rng *rand.Rand) FrequencyTable {
	var ft FrequencyTable
	numSymbols := 1 + rng.Intn(NumSymbols)
	for i := 0; i < numSymbols; i++ {
		ft[rng.Intn(NumSymbols)] += uint64(1 + rng.Intn(1000))
	}
	return ft
}
