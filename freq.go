package huffcode

import (
	"io"

	"github.com/pkg/errors"
)

// FrequencyTable counts the occurrences of each byte value in some input.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads r until EOF and returns the number of occurrences of
// each byte value.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var ft FrequencyTable
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		ft.Add(buf[:n])
		if errors.Is(err, io.EOF) {
			return ft, nil
		}
		if err != nil {
			return ft, errors.Wrap(err, "read source")
		}
	}
}

// Add counts each byte of data.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		ft[b]++
	}
}

// Len returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Len() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}

// EncodedBits returns the number of data bits needed to encode the counted
// input with the given code table, i.e. the sum of frequency times code size.
// Symbols that occur but have no code are not counted.
func (ft *FrequencyTable) EncodedBits(ct *CodeTable) uint64 {
	var sum uint64
	for symbol, freq := range ft {
		sum += freq * uint64(ct[symbol].Size)
	}
	return sum
}
