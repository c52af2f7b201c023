package data

import "fmt"

// The decode side of the codec reports malformed external input through
// the typed errors below. None of them are ever panics: wire bytes come
// from peers and corrupted files and must fail softly.

// UnknownFieldError reports a field name or (type, field) header with no
// usable registry definition.
type UnknownFieldError struct {
	Name  string
	Type  uint8
	Field uint8
}

func (e *UnknownFieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown field: %s", e.Name)
	}
	return fmt.Sprintf("unknown field: type %d field %d", e.Type, e.Field)
}

// TruncatedInputError reports input that ended before the value for the
// named field was complete.
type TruncatedInputError struct {
	Field string
	Want  int
	Got   int
}

func (e *TruncatedInputError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("%s: truncated input: want %d bytes, got %d", e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: truncated input", e.Field)
}

// MalformedHeaderError reports a field header that is structurally
// invalid, such as a zero type or field code.
type MalformedHeaderError struct {
	Type  uint8
	Field uint8
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed field header: type %d field %d", e.Type, e.Field)
}

// LengthOverflowError reports a blob beyond the maximum the three tier
// variable length prefix can represent.
type LengthOverflowError struct {
	Length int
}

func (e *LengthOverflowError) Error() string {
	return fmt.Sprintf("unsupported variable length encoding: %d", e.Length)
}

// AmountRangeError reports a magnitude or precision outside the
// representable amount range.
type AmountRangeError struct {
	Detail string
}

func (e *AmountRangeError) Error() string {
	return "amount out of range: " + e.Detail
}

// InvalidAccountError reports an account identifier of the wrong length.
type InvalidAccountError struct {
	Field  string
	Length int
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("%s: invalid account length: %d", e.Field, e.Length)
}
