package data

import (
	"fmt"
	"io"
	"strings"

	"github.com/crossledger/xrpl-tools/common"
)

// Currency is the 160 bit currency code carried by issued amounts.
// The native currency is the all zero code and is never serialized
// inside an amount.
type Currency [20]byte

var zeroCurrency Currency

// NewCurrency accepts a 3 character code or a 40 character hex string,
// with or without a 0x prefix.
func NewCurrency(s string) (Currency, error) {
	var currency Currency
	switch {
	case s == "XRP":
		return currency, nil
	case len(s) == 3:
		copy(currency[12:], []byte(s))
		return currency, nil
	case len(s) == 40 || (common.Has0xPrefix(s) && len(s) == 42):
		c := common.FromHex(s)
		if len(c) != 20 {
			return currency, fmt.Errorf("bad currency: %s", s)
		}
		copy(currency[:], c)
		return currency, nil
	default:
		return currency, fmt.Errorf("bad currency: %s", s)
	}
}

func (c *Currency) Bytes() []byte {
	if c == nil {
		return nil
	}
	return c[:]
}

func (c Currency) IsNative() bool {
	return c == zeroCurrency
}

func (c Currency) isStandard() bool {
	if c[0] != 0 {
		return false
	}
	for i, b := range c {
		if (i < 12 || i > 14) && b != 0 {
			return false
		}
	}
	return true
}

// String returns the 3 character code where one exists, the hex form
// otherwise.
func (c Currency) String() string {
	switch {
	case c.IsNative():
		return "XRP"
	case c.isStandard():
		return strings.TrimRight(string(c[12:15]), "\x00")
	default:
		return common.ToUpperHex(c[:])
	}
}

func (c *Currency) Marshal(w io.Writer) error {
	return write(w, c.Bytes())
}

func (c *Currency) Unmarshal(r Reader) error {
	return unmarshalSlice(c[:], r, "Currency")
}
