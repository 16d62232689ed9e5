package guid

const hexDigits = "0123456789abcdef"

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return 10 + c - 'a', true
	case 'A' <= c && c <= 'F':
		return 10 + c - 'A', true
	}
	return 0, false
}

// parseHex folds a run of hex digits into an integer, most significant digit
// first. Callers bound the width, so at most 12 digits are ever passed in.
func parseHex[T ~string | ~[]byte](s T) (uint64, bool) {
	var v uint64
	for i := 0; i < len(s); i++ {
		n, ok := fromHexChar(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint64(n)
	}
	return v, true
}

// putHex right-aligns the lowercase hex form of v in dst. Leading positions
// are set to '0' first, so dst is fully written even when v is small.
func putHex(dst []byte, v uint64) {
	for i := range dst {
		dst[i] = '0'
	}
	for i := len(dst) - 1; i >= 0 && v != 0; i-- {
		dst[i] = hexDigits[v&0xf]
		v >>= 4
	}
}
