package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var errEndOfObject = errors.New("end of object")

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(b []byte) (TxObject, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeVL decodes a transaction stored behind a variable length
// prefix, the form signed transactions take inside ledger nodes.
func DecodeVL(r Reader) (TxObject, error) {
	length, err := readVariableLength(r)
	if err != nil {
		return nil, err
	}
	if length > r.Len() {
		return nil, &TruncatedInputError{Field: "transaction", Want: length, Got: r.Len()}
	}
	return Decode(LimitedByteReader(r, int64(length)))
}

// Decode is the exact inverse of Encode: it reads field headers,
// resolves each against the registry and decodes the value with the
// field's codec until the input is exhausted.
func Decode(r Reader) (TxObject, error) {
	o := NewTxObject()
	for r.Len() > 0 {
		if err := decodeField(r, o, false); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// decodeField reads one header and its value into o. Inside a nested
// object the end marker surfaces as errEndOfObject.
func decodeField(r Reader, o TxObject, nested bool) error {
	e, err := readEncoding(r)
	if err != nil {
		return err
	}
	def, err := fieldByEncoding(*e)
	if err != nil {
		return err
	}
	switch def.Name {
	case "EndOfObject":
		if !nested {
			return &MalformedHeaderError{Type: e.typ, Field: e.field}
		}
		return errEndOfObject
	case "EndOfArray":
		return &MalformedHeaderError{Type: e.typ, Field: e.field}
	}
	value, err := decodeValue(r, def)
	if err != nil {
		return fmt.Errorf("%s: %w", def.Name, err)
	}
	o[def.Name] = value
	return nil
}

func decodeValue(r Reader, def FieldDef) (interface{}, error) {
	var value FieldValue
	switch def.Type {
	case ST_UINT8:
		value = new(Uint8)
	case ST_UINT16:
		value = new(Uint16)
	case ST_UINT32:
		value = new(Uint32)
	case ST_UINT64:
		value = new(Uint64)
	case ST_HASH128:
		value = new(Hash128)
	case ST_HASH160:
		value = new(Hash160)
	case ST_HASH256:
		value = new(Hash256)
	case ST_AMOUNT:
		value = new(Amount)
	case ST_VL:
		value = new(VariableLength)
	case ST_ACCOUNT:
		value = new(Account)
	case ST_OBJECT:
		return decodeInner(r)
	case ST_ARRAY:
		return decodeArray(r)
	default:
		// registered, but outside the typed value union (path sets,
		// 256 bit vectors) which this codec does not model
		return nil, &UnknownFieldError{Name: def.Name, Type: def.Type, Field: def.Field}
	}
	if err := value.Unmarshal(r); err != nil {
		return nil, err
	}
	return value, nil
}

// decodeInner reads fields until the end of object marker.
func decodeInner(r Reader) (TxObject, error) {
	o := NewTxObject()
	for {
		err := decodeField(r, o, true)
		switch {
		case err == errEndOfObject:
			return o, nil
		case err == io.EOF:
			return nil, &TruncatedInputError{Field: "object"}
		case err != nil:
			return nil, err
		}
	}
}

// decodeArray reads elements, each a single object typed field, until
// the end of array marker.
func decodeArray(r Reader) (Array, error) {
	var a Array
	for {
		e, err := readEncoding(r)
		if err != nil {
			if err == io.EOF {
				return nil, &TruncatedInputError{Field: "array"}
			}
			return nil, err
		}
		def, err := fieldByEncoding(*e)
		if err != nil {
			return nil, err
		}
		if def.Name == "EndOfArray" {
			return a, nil
		}
		if def.Type != ST_OBJECT {
			return nil, &MalformedHeaderError{Type: e.typ, Field: e.field}
		}
		inner, err := decodeInner(r)
		if err != nil {
			return nil, err
		}
		element := NewTxObject()
		element[def.Name] = inner
		a = append(a, element)
	}
}
