package huffcode

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

func parseDigit(ch byte) (uint, bool) {
	switch ch {
	case '0':
		return 0, true
	case '1':
		return 1, true
	default:
		return 0, false
	}
}
