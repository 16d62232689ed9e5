package guid

import (
	"encoding/json"
	"fmt"
	"testing"
	"unsafe"
)

func mustFromString(t *testing.T, s string) GUID {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func Test_Size(t *testing.T) {
	if s := unsafe.Sizeof(GUID{}); s != 16 {
		t.Fatalf("GUID is %d bytes, expected 16", s)
	}
	var g GUID
	if o := unsafe.Offsetof(g.Data4); o != 8 {
		t.Fatalf("Data4 at offset %d, expected 8", o)
	}
}

func Test_Variant(t *testing.T) {
	for _, tc := range []struct {
		s string
		v Variant
	}{
		{"{73c39589-192e-4c64-1acf-6c5d0aa18528}", VariantNCS},
		{"{73c39589-192e-4c64-9acf-6c5d0aa18528}", VariantRFC4122},
		{"{73c39589-192e-4c64-cacf-6c5d0aa18528}", VariantMicrosoft},
		{"{73c39589-192e-4c64-facf-6c5d0aa18528}", VariantFuture},
	} {
		if v := mustFromString(t, tc.s).Variant(); v != tc.v {
			t.Errorf("%s: variant is %s, expected %s", tc.s, v, tc.v)
		}
	}
}

func Test_Version(t *testing.T) {
	g := mustFromString(t, "{73c39589-192e-4c64-9acf-6c5d0aa18528}")
	if g.Version() != 4 {
		t.Fatalf("Version is not 4: %s", g)
	}
}

func Test_ToArray(t *testing.T) {
	g := mustFromString(t, "{73c39589-192e-4c64-9acf-6c5d0aa18528}")
	b := g.ToArray()
	expected := [16]byte{0x73, 0xc3, 0x95, 0x89, 0x19, 0x2e, 0x4c, 0x64, 0x9a, 0xcf, 0x6c, 0x5d, 0x0a, 0xa1, 0x85, 0x28}
	if b != expected {
		t.Fatalf("GUID does not match array form: %x, %x", expected, b)
	}
}

func Test_FromArrayAndBack(t *testing.T) {
	b := [16]byte{0x73, 0xc3, 0x95, 0x89, 0x19, 0x2e, 0x4c, 0x64, 0x9a, 0xcf, 0x6c, 0x5d, 0x0a, 0xa1, 0x85, 0x28}
	b2 := FromArray(b).ToArray()
	if b != b2 {
		t.Fatalf("Arrays do not match: %x, %x", b, b2)
	}
}

func Test_ToWindowsArray(t *testing.T) {
	g := mustFromString(t, "{73c39589-192e-4c64-9acf-6c5d0aa18528}")
	b := g.ToWindowsArray()
	expected := [16]byte{0x89, 0x95, 0xc3, 0x73, 0x2e, 0x19, 0x64, 0x4c, 0x9a, 0xcf, 0x6c, 0x5d, 0x0a, 0xa1, 0x85, 0x28}
	if b != expected {
		t.Fatalf("GUID does not match array form: %x, %x", expected, b)
	}
}

func Test_FromWindowsArrayAndBack(t *testing.T) {
	b := [16]byte{0x73, 0xc3, 0x95, 0x89, 0x19, 0x2e, 0x4c, 0x64, 0x9a, 0xcf, 0x6c, 0x5d, 0x0a, 0xa1, 0x85, 0x28}
	b2 := FromWindowsArray(b).ToWindowsArray()
	if b != b2 {
		t.Fatalf("Arrays do not match: %x, %x", b, b2)
	}
}

func Test_Equal(t *testing.T) {
	const s = "{01234567-89ab-cdef-0123-456789abcdef}"
	g := mustFromString(t, s)
	g2 := mustFromString(t, s)
	if !Equal(g, g2) || !g.Equal(g2) {
		t.Fatalf("GUIDs not equal: %s, %s", g, g2)
	}
	if g.Hash() != g2.Hash() {
		t.Fatalf("equal GUIDs hash differently: %x, %x", g.Hash(), g2.Hash())
	}
	for i := range g.Data4 {
		g3 := g
		g3.Data4[i] ^= 0x01
		if Equal(g, g3) {
			t.Errorf("GUIDs equal after changing Data4[%d]: %s, %s", i, g, g3)
		}
	}
	for _, g3 := range []GUID{
		{Data1: g.Data1 + 1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4},
		{Data1: g.Data1, Data2: g.Data2 + 1, Data3: g.Data3, Data4: g.Data4},
		{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3 + 1, Data4: g.Data4},
	} {
		if g.Equal(g3) {
			t.Errorf("GUIDs equal: %s, %s", g, g3)
		}
	}
}

func Test_IsEmpty(t *testing.T) {
	if !(GUID{}).IsEmpty() {
		t.Fatal("zero GUID is not empty")
	}
	if mustFromString(t, "{00000000-0000-0000-0000-000000000001}").IsEmpty() {
		t.Fatal("non-zero GUID is empty")
	}
}

func Test_MarshalJSON(t *testing.T) {
	g := mustFromString(t, "{8e35239e-2084-490e-a3db-ab18ee0744cb}")
	j, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	gj := fmt.Sprintf("\"%s\"", g.String())
	if string(j) != gj {
		t.Fatalf("JSON not equal: %s, %s", j, gj)
	}
}

func Test_MarshalJSON_Nested(t *testing.T) {
	type test struct {
		G GUID
	}
	g := mustFromString(t, "{8e35239e-2084-490e-a3db-ab18ee0744cb}")
	t1 := test{g}
	j, err := json.Marshal(t1)
	if err != nil {
		t.Fatal(err)
	}
	gj := fmt.Sprintf("{\"G\":\"%s\"}", g.String())
	if string(j) != gj {
		t.Fatalf("JSON not equal: %s, %s", j, gj)
	}
}

func Test_UnmarshalJSON(t *testing.T) {
	g := mustFromString(t, "{8e35239e-2084-490e-a3db-ab18ee0744cb}")
	j, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	var g2 GUID
	if err := json.Unmarshal(j, &g2); err != nil {
		t.Fatal(err)
	}
	if g != g2 {
		t.Fatalf("GUIDs not equal: %s, %s", g, g2)
	}
}

func Test_UnmarshalJSON_Nested(t *testing.T) {
	type test struct {
		G GUID
	}
	t1 := test{mustFromString(t, "{8e35239e-2084-490e-a3db-ab18ee0744cb}")}
	j, err := json.Marshal(t1)
	if err != nil {
		t.Fatal(err)
	}
	var t2 test
	if err := json.Unmarshal(j, &t2); err != nil {
		t.Fatal(err)
	}
	if t1.G != t2.G {
		t.Fatalf("GUIDs not equal: %v, %v", t1.G, t2.G)
	}
}
