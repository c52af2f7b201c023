package data

import (
	"fmt"

	"github.com/crossledger/xrpl-tools/common"
	"github.com/crossledger/xrpl-tools/crypto"
)

type Hash128 [16]byte
type Hash160 [20]byte
type Hash256 [32]byte
type Account [20]byte
type VariableLength []byte

var zero256 Hash256
var zeroAccount Account

// NewHash256 accepts a hex string, with or without a 0x prefix, or a
// byte slice of length 32.
func NewHash256(value interface{}) (*Hash256, error) {
	var h Hash256
	switch v := value.(type) {
	case []byte:
		if len(v) != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %X", v)
		}
		copy(h[:], v)
	case string:
		b := common.FromHex(v)
		if len(b) != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %s", v)
		}
		copy(h[:], b)
	default:
		return nil, fmt.Errorf("NewHash256: wrong type %+v", v)
	}
	return &h, nil
}

func (h *Hash128) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash128) String() string {
	return common.ToUpperHex(h[:])
}

func (h *Hash160) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash160) String() string {
	return common.ToUpperHex(h[:])
}

func (h *Hash256) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash256) String() string {
	return common.ToUpperHex(h[:])
}

func (h Hash256) IsZero() bool {
	return h == zero256
}

// NewAccountFromAddress parses the base58 address form, verifying its
// checksum and version byte.
func NewAccountFromAddress(s string) (*Account, error) {
	hash, err := crypto.NewRippleHashCheck(s, crypto.RIPPLE_ACCOUNT_ID)
	if err != nil {
		return nil, err
	}
	var account Account
	copy(account[:], hash.Payload())
	return &account, nil
}

// NewAccountId wraps a raw 160 bit identifier.
func NewAccountId(b []byte) (*Account, error) {
	if len(b) != 20 {
		return nil, &InvalidAccountError{Field: "AccountID", Length: len(b)}
	}
	var account Account
	copy(account[:], b)
	return &account, nil
}

func (a *Account) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a[:]
}

func (a Account) IsZero() bool {
	return a == zeroAccount
}

// Address is the base58 human readable form: version byte zero, the 160
// bit identifier and a four byte checksum.
func (a Account) Address() string {
	return crypto.Base58Encode(append([]byte{byte(crypto.RIPPLE_ACCOUNT_ID)}, a[:]...), crypto.ALPHABET)
}

func (a Account) String() string {
	return a.Address()
}

func (v *VariableLength) Bytes() []byte {
	if v == nil {
		return nil
	}
	return *v
}

func (v VariableLength) String() string {
	return common.ToUpperHex(v)
}
