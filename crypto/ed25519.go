package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
)

type ed25519key struct {
	priv ed25519.PrivateKey
}

func checkSequenceIsNil(seq *uint32) {
	if seq != nil {
		panic("ed25519 keys do not support account families")
	}
}

// NewEd25519Key derives an ed25519 key pair from Sha512Half(seed).
// If seed is nil a random key pair is generated.
func NewEd25519Key(seed []byte) (Key, error) {
	r := rand.Reader
	if seed != nil {
		r = bytes.NewReader(Sha512Half(seed))
	}
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &ed25519key{priv: priv}, nil
}

func (e *ed25519key) Id(seq *uint32) []byte {
	checkSequenceIsNil(seq)
	return Sha256RipeMD160(e.Public(seq))
}

// Public returns the 32 byte public key behind the 0xED marker byte that
// distinguishes ed25519 keys on the wire.
func (e *ed25519key) Public(seq *uint32) []byte {
	checkSequenceIsNil(seq)
	return append([]byte{0xED}, e.priv[32:]...)
}

// Private returns a copy so callers (and Sign's scrubbing) cannot
// disturb the key's own material.
func (e *ed25519key) Private(seq *uint32) []byte {
	checkSequenceIsNil(seq)
	return append([]byte(nil), e.priv...)
}

func (e *ed25519key) Type() KeyType {
	return Ed25519
}

func (e *ed25519key) Zero() {
	Zeroize(e.priv)
}
