package data

import (
	"fmt"
	"io"
	"strings"

	"github.com/crossledger/xrpl-tools/crypto"
)

// Amount is a monetary value: native amounts carry only a Value, issued
// amounts additionally carry the 160 bit currency code and the issuing
// account.
type Amount struct {
	*Value
	Currency Currency
	Issuer   Account
}

func newAmount(value *Value, currency Currency, issuer Account) *Amount {
	return &Amount{
		Value:    value,
		Currency: currency,
		Issuer:   issuer,
	}
}

// NewAmount accepts an int64 drop count or a machine parsable string:
// "amount", "amount/currency" or "amount/currency/issuer".
func NewAmount(v interface{}) (*Amount, error) {
	switch n := v.(type) {
	case int64:
		value, err := NewNativeValue(n)
		if err != nil {
			return nil, err
		}
		return &Amount{Value: value}, nil
	case string:
		var err error
		amount := new(Amount)
		parts := strings.Split(strings.TrimSpace(n), "/")
		native := false
		switch {
		case len(parts) == 1:
			native = true
		case len(parts) > 1 && parts[1] == "XRP":
			native = true
			if !strings.Contains(parts[0], ".") {
				parts[0] = parts[0] + "."
			}
		}
		if amount.Value, err = NewValue(parts[0], native); err != nil {
			return nil, err
		}
		if len(parts) > 1 {
			if amount.Currency, err = NewCurrency(parts[1]); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 {
			issuer, err := crypto.NewRippleHash(parts[2])
			if err != nil {
				return nil, err
			}
			copy(amount.Issuer[:], issuer.Payload())
		}
		return amount, nil
	default:
		return nil, fmt.Errorf("bad amount type: %+v", v)
	}
}

func (a Amount) Equals(b Amount) bool {
	return a.Value.Equals(*b.Value) &&
		a.Currency == b.Currency &&
		a.Issuer == b.Issuer
}

func (a Amount) Clone() *Amount {
	return newAmount(a.Value.Clone(), a.Currency, a.Issuer)
}

func (a Amount) IsPositive() bool {
	return !a.negative
}

func (a Amount) String() string {
	switch {
	case a.IsNative():
		return a.Value.String() + "/XRP"
	case a.Issuer.IsZero():
		return fmt.Sprintf("%s/%s", a.Value, a.Currency)
	default:
		return fmt.Sprintf("%s/%s/%s", a.Value, a.Currency, a.Issuer)
	}
}

// Marshal writes the 64 bit value, then currency and issuer for issued
// amounts. Neither trailer is length prefixed.
func (a *Amount) Marshal(w io.Writer) error {
	if err := a.Value.Marshal(w); err != nil {
		return err
	}
	if a.Value.IsNative() {
		return nil
	}
	if err := a.Currency.Marshal(w); err != nil {
		return err
	}
	return write(w, a.Issuer.Bytes())
}

func (a *Amount) Unmarshal(r Reader) error {
	a.Value = new(Value)
	if err := a.Value.Unmarshal(r); err != nil {
		return err
	}
	if a.Value.IsNative() {
		return nil
	}
	if err := a.Currency.Unmarshal(r); err != nil {
		return err
	}
	return unmarshalSlice(a.Issuer[:], r, "Issuer")
}
