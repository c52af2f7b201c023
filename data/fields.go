package data

// FieldDef is one immutable entry of the type registry. The registry is
// built once from the static encoding table and never mutated, so it is
// safe to share between any number of goroutines without locks.
type FieldDef struct {
	Name  string
	Type  uint8
	Field uint8
}

func (d FieldDef) enc() enc {
	return enc{d.Type, d.Field}
}

// VariableLength reports whether the field's value is written behind a
// length prefix. Account fields are length prefixed at top level even
// though their payload width is fixed.
func (d FieldDef) VariableLength() bool {
	return d.Type == ST_VL || d.Type == ST_ACCOUNT
}

// SigningField reports fields omitted from the signing payload.
func (d FieldDef) SigningField() bool {
	return d.enc().SigningField()
}

// Priority is the field's position in the canonical order.
func (d FieldDef) Priority() uint32 {
	return d.enc().Priority()
}

// Less orders definitions canonically: type code, then field code.
func (d FieldDef) Less(other FieldDef) bool {
	return d.Priority() < other.Priority()
}

// FieldByName resolves a field name to its registry definition.
func FieldByName(name string) (FieldDef, error) {
	e, ok := reverseEncodings[name]
	if !ok {
		return FieldDef{}, &UnknownFieldError{Name: name}
	}
	return FieldDef{Name: name, Type: e.typ, Field: e.field}, nil
}

func fieldByEncoding(e enc) (FieldDef, error) {
	name, ok := encodings[e]
	if !ok {
		return FieldDef{}, &UnknownFieldError{Type: e.typ, Field: e.field}
	}
	return FieldDef{Name: name, Type: e.typ, Field: e.field}, nil
}
