package crypto

import "math/big"

// KeyType selects one of the two signing families the ledger accepts.
type KeyType int

const (
	ECDSA   KeyType = 0
	Ed25519 KeyType = 1
)

func (keyType KeyType) String() string {
	switch keyType {
	case ECDSA:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	default:
		return "unknown key type"
	}
}

// Key is a key pair of either family. The sequence pointer selects a key
// from the account family for secp256k1 keys; it must be nil for ed25519
// keys, which have no family concept.
type Key interface {
	Private(sequence *uint32) []byte
	Public(sequence *uint32) []byte
	Id(sequence *uint32) []byte
	Type() KeyType
	// Zero scrubs the private scalar. The key is unusable afterwards.
	Zero()
}

// Hash is a version-tagged payload with a base58 human readable form.
type Hash interface {
	Version() HashVersion
	Payload() []byte
	PayloadTrimmed() []byte
	Value() *big.Int
	String() string
	Clone() Hash
	MarshalText() ([]byte, error)
}
