package guid

// Text returns the registry form of g in a fixed-size array, with lowercase
// hex digits.
func (g GUID) Text() [EncodedLen]byte {
	var b [EncodedLen]byte
	g.put(b[:])
	return b
}

// put writes the registry form into the first EncodedLen bytes of b.
func (g GUID) put(b []byte) {
	b[0] = '{'
	putHex(b[1:9], uint64(g.Data1))
	b[9] = '-'
	putHex(b[10:14], uint64(g.Data2))
	b[14] = '-'
	putHex(b[15:19], uint64(g.Data3))
	b[19] = '-'
	putHex(b[20:24], uint64(g.Data4[0])<<8|uint64(g.Data4[1]))
	b[24] = '-'
	var tail uint64
	for _, x := range g.Data4[2:] {
		tail = tail<<8 | uint64(x)
	}
	putHex(b[25:37], tail)
	b[37] = '}'
}

// Encode returns the registry form of g. When terminated is set the result is
// followed by a NUL byte, for callers handing the buffer to C-style APIs; the
// first EncodedLen bytes are the same either way.
func (g GUID) Encode(terminated bool) []byte {
	n := EncodedLen
	if terminated {
		n++
	}
	b := make([]byte, n)
	g.put(b)
	return b
}

// EncodeUTF16 is like Encode but produces wide characters. The terminated
// form has the 39-unit shape written by StringFromGUID2.
func (g GUID) EncodeUTF16(terminated bool) []uint16 {
	t := g.Text()
	n := EncodedLen
	if terminated {
		n++
	}
	w := make([]uint16, n)
	for i, c := range t {
		w[i] = uint16(c)
	}
	return w
}

// AppendText appends the registry form of g to b.
func (g GUID) AppendText(b []byte) ([]byte, error) {
	t := g.Text()
	return append(b, t[:]...), nil
}

func (g GUID) String() string {
	t := g.Text()
	return string(t[:])
}
