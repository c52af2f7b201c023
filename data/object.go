package data

import (
	"fmt"
	"io"
	"sort"
)

// FieldValue is one leaf of the typed value union. Nested objects and
// arrays are represented by TxObject and Array instead, because encoding
// them needs the registry rather than just a byte sink.
type FieldValue interface {
	Marshal(io.Writer) error
	Unmarshal(Reader) error
}

// TxObject is a transaction (or any nested object) as a mapping from
// field name to typed value. Serialization order is always the canonical
// registry order, never insertion order. The zero value is not usable;
// construct with NewTxObject.
type TxObject map[string]interface{}

// Array is an array of nested objects. Every element holds exactly one
// entry whose field is object typed, such as {"Memo": {...}}.
type Array []TxObject

func NewTxObject() TxObject {
	return make(TxObject)
}

// Set stores a value after checking the field exists and the value's
// kind matches the field's registered type.
func (o TxObject) Set(name string, value interface{}) error {
	def, err := FieldByName(name)
	if err != nil {
		return err
	}
	if err := checkKind(def, value); err != nil {
		return err
	}
	o[name] = value
	return nil
}

// Get returns the value stored under name, or nil.
func (o TxObject) Get(name string) interface{} {
	return o[name]
}

func (o TxObject) Has(name string) bool {
	_, ok := o[name]
	return ok
}

func (o TxObject) Delete(name string) {
	delete(o, name)
}

// Clone returns a shallow copy: leaf values are immutable by contract so
// sharing them is safe.
func (o TxObject) Clone() TxObject {
	clone := make(TxObject, len(o))
	for name, value := range o {
		clone[name] = value
	}
	return clone
}

type boundField struct {
	def   FieldDef
	value interface{}
}

// sortedFields resolves every present field against the registry and
// returns them in canonical order.
func (o TxObject) sortedFields() ([]boundField, error) {
	fields := make([]boundField, 0, len(o))
	for name, value := range o {
		def, err := FieldByName(name)
		if err != nil {
			return nil, err
		}
		if err := checkKind(def, value); err != nil {
			return nil, err
		}
		fields = append(fields, boundField{def, value})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].def.Less(fields[j].def)
	})
	return fields, nil
}

// checkKind enforces that the stored Go type can serialize as the
// field's registered wire type.
func checkKind(def FieldDef, value interface{}) error {
	ok := false
	switch def.Type {
	case ST_UINT8:
		_, ok = value.(*Uint8)
	case ST_UINT16:
		_, ok = value.(*Uint16)
	case ST_UINT32:
		_, ok = value.(*Uint32)
	case ST_UINT64:
		_, ok = value.(*Uint64)
	case ST_HASH128:
		_, ok = value.(*Hash128)
	case ST_HASH160:
		_, ok = value.(*Hash160)
	case ST_HASH256:
		_, ok = value.(*Hash256)
	case ST_AMOUNT:
		_, ok = value.(*Amount)
	case ST_VL:
		_, ok = value.(*VariableLength)
	case ST_ACCOUNT:
		_, ok = value.(*Account)
	case ST_OBJECT:
		_, ok = value.(TxObject)
	case ST_ARRAY:
		_, ok = value.(Array)
	}
	if !ok {
		return fmt.Errorf("field %s: value type %T cannot serialize as type code %d", def.Name, value, def.Type)
	}
	return nil
}

// Convenience constructors for leaf values.

func NewUint8(v uint8) *Uint8 {
	u := Uint8(v)
	return &u
}

func NewUint16(v uint16) *Uint16 {
	u := Uint16(v)
	return &u
}

func NewUint32(v uint32) *Uint32 {
	u := Uint32(v)
	return &u
}

func NewUint64(v uint64) *Uint64 {
	u := Uint64(v)
	return &u
}

func NewVariableLength(b []byte) *VariableLength {
	v := VariableLength(append([]byte(nil), b...))
	return &v
}
