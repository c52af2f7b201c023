package crypto

import (
	"bytes"
	"fmt"
)

// Seed is the 16 byte entropy every ledger key pair derives from.
// The base58 interchange form tags it with the intended key family:
// version byte 33 ("s...") for secp256k1 and the three byte 0x01E14B
// prefix ("sEd...") for ed25519.
type Seed struct {
	payload [16]byte
	keyType KeyType
}

// NewSeed wraps 16 bytes of entropy.
func NewSeed(b []byte, keyType KeyType) (*Seed, error) {
	if len(b) != 16 {
		return nil, fmt.Errorf("seed must be 16 bytes, got: %d", len(b))
	}
	seed := &Seed{keyType: keyType}
	copy(seed.payload[:], b)
	return seed, nil
}

// ParseSeed decodes either interchange form and reports the key family
// the encoding selects.
func ParseSeed(s string) (*Seed, error) {
	decoded, err := Base58Decode(s, ALPHABET)
	if err != nil {
		return nil, err
	}
	body := decoded[:len(decoded)-4]
	if len(body) == 19 && bytes.Equal(body[:3], ed25519SeedPrefix) {
		return NewSeed(body[3:], Ed25519)
	}
	if len(body) == 17 && HashVersion(body[0]) == RIPPLE_FAMILY_SEED {
		return NewSeed(body[1:], ECDSA)
	}
	if len(body) == 17 {
		return nil, &InvalidVersionByteError{
			Input: s,
			Want:  RIPPLE_FAMILY_SEED,
			Got:   HashVersion(body[0]),
		}
	}
	return nil, fmt.Errorf("bad seed length: %d", len(body))
}

// String returns the base58 interchange form for the seed's key family.
func (s *Seed) String() string {
	if s.keyType == Ed25519 {
		return Base58Encode(append(append([]byte(nil), ed25519SeedPrefix...), s.payload[:]...), ALPHABET)
	}
	return Base58Encode(append([]byte{byte(RIPPLE_FAMILY_SEED)}, s.payload[:]...), ALPHABET)
}

func (s *Seed) Payload() []byte {
	return s.payload[:]
}

func (s *Seed) KeyType() KeyType {
	return s.keyType
}

// Key derives the key pair the seed selects. Derivation is deterministic:
// the same seed and family always yield the same pair.
func (s *Seed) Key() (Key, error) {
	switch s.keyType {
	case Ed25519:
		return NewEd25519Key(s.payload[:])
	case ECDSA:
		return NewECDSAKey(s.payload[:])
	default:
		return nil, fmt.Errorf("invalid key type: %v", s.keyType)
	}
}

// AccountId is the address for the first key of the seed's family,
// sub-index zero for secp256k1, the sole key for ed25519.
func (s *Seed) AccountId() (Hash, error) {
	key, err := s.Key()
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	if s.keyType == Ed25519 {
		return AccountId(key, nil)
	}
	sequenceZero := uint32(0)
	return AccountId(key, &sequenceZero)
}
