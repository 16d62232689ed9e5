package guid

import "fmt"

// EncodedLen is the length of the registry text form of a GUID,
// {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}.
const EncodedLen = 38

// Offsets of the four dashes in the registry form.
var dashOffsets = [4]int{9, 14, 19, 24}

// Parse parses a GUID in the registry format
// `{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}`. Hex digits may be in either case.
//
// Any deviation from that exact layout yields ErrMalformed and a zero GUID;
// the error does not say which check failed.
func Parse[T ~string | ~[]byte](s T) (GUID, error) {
	if len(s) != EncodedLen {
		return GUID{}, ErrMalformed
	}
	if s[0] != '{' || s[EncodedLen-1] != '}' {
		return GUID{}, ErrMalformed
	}
	for _, x := range dashOffsets {
		if s[x] != '-' {
			return GUID{}, ErrMalformed
		}
	}

	var g GUID

	data1, ok := parseHex(s[1:9])
	if !ok {
		return GUID{}, ErrMalformed
	}
	g.Data1 = uint32(data1)

	data2, ok := parseHex(s[10:14])
	if !ok {
		return GUID{}, ErrMalformed
	}
	g.Data2 = uint16(data2)

	data3, ok := parseHex(s[15:19])
	if !ok {
		return GUID{}, ErrMalformed
	}
	g.Data3 = uint16(data3)

	// Data4 spans two groups: two bytes before the last dash, six after it.
	for i, x := range [8]int{20, 22, 25, 27, 29, 31, 33, 35} {
		v, ok := parseHex(s[x : x+2])
		if !ok {
			return GUID{}, ErrMalformed
		}
		g.Data4[i] = uint8(v)
	}

	return g, nil
}

// ParseUTF16 is like Parse but reads a wide-character buffer, as filled in by
// Windows APIs such as StringFromGUID2. A single trailing NUL is allowed.
func ParseUTF16(s []uint16) (GUID, error) {
	if len(s) == EncodedLen+1 && s[EncodedLen] == 0 {
		s = s[:EncodedLen]
	}
	if len(s) != EncodedLen {
		return GUID{}, ErrMalformed
	}
	var b [EncodedLen]byte
	for i, c := range s {
		if c > 0x7f {
			return GUID{}, ErrMalformed
		}
		b[i] = byte(c)
	}
	return Parse(b[:])
}

// MustParse is like Parse but panics if s is malformed. It is meant for
// package-level variables initialized from trusted literals; use Parse for
// anything that comes from outside the program.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: MustParse(%q): %v", s, err))
	}
	return g
}
