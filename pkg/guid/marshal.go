package guid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	_ json.Marshaler             = GUID{}
	_ json.Unmarshaler           = &GUID{}
	_ encoding.TextMarshaler     = GUID{}
	_ encoding.TextUnmarshaler   = &GUID{}
	_ encoding.BinaryMarshaler   = GUID{}
	_ encoding.BinaryUnmarshaler = &GUID{}
	_ sql.Scanner                = &GUID{}
	_ driver.Valuer              = GUID{}
)

// MarshalText returns the registry form of g.
func (g GUID) MarshalText() ([]byte, error) {
	return g.Encode(false), nil
}

// UnmarshalText parses the registry form into g.
func (g *GUID) UnmarshalText(data []byte) error {
	g2, err := Parse(data)
	if err != nil {
		return errors.Wrapf(err, "unmarshal %q", data)
	}
	*g = g2
	return nil
}

// MarshalJSON marshals the GUID to JSON representation and returns it as a
// slice of bytes.
func (g GUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON unmarshals a GUID from JSON representation and sets itself to
// the unmarshaled GUID.
func (g *GUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "GUID must be a JSON string")
	}
	return g.UnmarshalText([]byte(s))
}

// MarshalBinary returns g in the 16-byte Windows memory layout.
func (g GUID) MarshalBinary() ([]byte, error) {
	b := g.ToWindowsArray()
	return b[:], nil
}

// UnmarshalBinary reads g from the 16-byte Windows memory layout.
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return errors.Wrapf(ErrInvalidLength, "got %d bytes", len(data))
	}
	var b [16]byte
	copy(b[:], data)
	*g = FromWindowsArray(b)
	return nil
}

// Scan implements sql.Scanner. Text columns must hold the registry form;
// 16-byte binary columns are read in the Windows layout, which is how SQL
// Server stores uniqueidentifier values. A NULL leaves g unchanged.
func (g *GUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return g.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 16 {
			return g.UnmarshalBinary(src)
		}
		return g.UnmarshalText(src)
	default:
		return errors.Errorf("guid: cannot scan type %T into GUID", src)
	}
}

// Value implements driver.Valuer, storing the registry form.
func (g GUID) Value() (driver.Value, error) {
	return g.String(), nil
}
