package data

import (
	"bytes"
	"crypto/sha512"
	"fmt"
	"io"
)

// Raw serializes every present field and returns the transaction hash,
// the Sha512Half of the TXN domain prefix followed by the signed bytes.
func Raw(o TxObject) (Hash256, []byte, error) {
	return raw(o, HP_TRANSACTION_ID, false)
}

// SigningHash serializes the object without its signing fields and
// returns the signing input hash, computed over the STX domain prefix
// followed by the unsigned bytes.
func SigningHash(o TxObject) (Hash256, []byte, error) {
	return raw(o, HP_TRANSACTION_SIGN, true)
}

func raw(o TxObject, prefix HashPrefix, ignoreSigningFields bool) (Hash256, []byte, error) {
	buf := new(bytes.Buffer)
	hasher := sha512.New()
	multi := io.MultiWriter(buf, hasher)
	if err := write(hasher, prefix); err != nil {
		return zero256, nil, err
	}
	if err := Encode(multi, o, ignoreSigningFields); err != nil {
		return zero256, nil, err
	}
	var hash Hash256
	copy(hash[:], hasher.Sum(nil))
	return hash, buf.Bytes(), nil
}

// Encode writes the canonical byte form of o: for each present field in
// canonical order a header, then the value, length prefixed when the
// field's type requires it. Two objects holding the same fields always
// produce identical bytes, whatever order the fields were set in.
func Encode(w io.Writer, o TxObject, ignoreSigningFields bool) error {
	fields, err := o.sortedFields()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if ignoreSigningFields && f.def.SigningField() {
			continue
		}
		if err := encodeField(w, f.def, f.value); err != nil {
			return fmt.Errorf("%s: %w", f.def.Name, err)
		}
	}
	return nil
}

func encodeField(w io.Writer, def FieldDef, value interface{}) error {
	if err := writeEncoding(w, def.enc()); err != nil {
		return err
	}
	switch v := value.(type) {
	case TxObject:
		return encodeInner(w, v)
	case Array:
		return encodeArray(w, v)
	case FieldValue:
		return v.Marshal(w)
	default:
		return fmt.Errorf("cannot encode value type %T", value)
	}
}

// encodeInner writes a nested object's fields followed by the end of
// object marker.
func encodeInner(w io.Writer, o TxObject) error {
	if err := Encode(w, o, false); err != nil {
		return err
	}
	return writeEncoding(w, reverseEncodings["EndOfObject"])
}

// encodeArray writes each element as its single object typed field, then
// the end of array marker.
func encodeArray(w io.Writer, a Array) error {
	for _, element := range a {
		fields, err := element.sortedFields()
		if err != nil {
			return err
		}
		if len(fields) != 1 || fields[0].def.Type != ST_OBJECT {
			return fmt.Errorf("array element must hold exactly one object typed field")
		}
		inner, ok := fields[0].value.(TxObject)
		if !ok {
			return fmt.Errorf("array element %s is not an object", fields[0].def.Name)
		}
		if err := writeEncoding(w, fields[0].def.enc()); err != nil {
			return err
		}
		if err := encodeInner(w, inner); err != nil {
			return err
		}
	}
	return writeEncoding(w, reverseEncodings["EndOfArray"])
}
