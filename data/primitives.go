package data

import (
	"io"
)

// Fixed width integers are written big-endian at their exact width.
type Uint8 uint8
type Uint16 uint16
type Uint32 uint32
type Uint64 uint64

func (v *Uint8) Marshal(w io.Writer) error {
	return write(w, *v)
}

func (v *Uint8) Unmarshal(r Reader) error {
	if err := read(r, v); err != nil {
		return &TruncatedInputError{Field: "Uint8", Want: 1, Got: r.Len()}
	}
	return nil
}

func (v *Uint16) Marshal(w io.Writer) error {
	return write(w, *v)
}

func (v *Uint16) Unmarshal(r Reader) error {
	if err := read(r, v); err != nil {
		return &TruncatedInputError{Field: "Uint16", Want: 2, Got: r.Len()}
	}
	return nil
}

func (v *Uint32) Marshal(w io.Writer) error {
	return write(w, *v)
}

func (v *Uint32) Unmarshal(r Reader) error {
	if err := read(r, v); err != nil {
		return &TruncatedInputError{Field: "Uint32", Want: 4, Got: r.Len()}
	}
	return nil
}

func (v *Uint64) Marshal(w io.Writer) error {
	return write(w, *v)
}

func (v *Uint64) Unmarshal(r Reader) error {
	if err := read(r, v); err != nil {
		return &TruncatedInputError{Field: "Uint64", Want: 8, Got: r.Len()}
	}
	return nil
}

func (h *Hash128) Marshal(w io.Writer) error {
	return write(w, h.Bytes())
}

func (h *Hash128) Unmarshal(r Reader) error {
	return unmarshalSlice(h[:], r, "Hash128")
}

func (h *Hash160) Marshal(w io.Writer) error {
	return write(w, h.Bytes())
}

func (h *Hash160) Unmarshal(r Reader) error {
	return unmarshalSlice(h[:], r, "Hash160")
}

func (h *Hash256) Marshal(w io.Writer) error {
	return write(w, h.Bytes())
}

func (h *Hash256) Unmarshal(r Reader) error {
	return unmarshalSlice(h[:], r, "Hash256")
}

func (v *VariableLength) Marshal(w io.Writer) error {
	return writeVariableLength(w, v.Bytes())
}

func (v *VariableLength) Unmarshal(r Reader) error {
	length, err := readVariableLength(r)
	if err != nil {
		return err
	}
	*v = make(VariableLength, length)
	return unmarshalSlice(*v, r, "VariableLength")
}

// Accounts at top level are length prefixed despite their fixed width.
func (a *Account) Marshal(w io.Writer) error {
	return writeVariableLength(w, a.Bytes())
}

func (a *Account) Unmarshal(r Reader) error {
	length, err := readVariableLength(r)
	switch {
	case err != nil:
		return err
	case length != len(a):
		return &InvalidAccountError{Field: "Account", Length: length}
	default:
		return unmarshalSlice(a[:], r, "Account")
	}
}

func unmarshalSlice(s []byte, r Reader, field string) error {
	n, err := io.ReadFull(r, s)
	if err != nil {
		return &TruncatedInputError{Field: field, Want: len(s), Got: n}
	}
	return nil
}
