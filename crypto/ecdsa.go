package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

var (
	order = btcec.S256().N
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
)

type ecdsaKey struct {
	*btcec.PrivateKey
}

// newKey runs the SHA-512-half candidate sequence over seed until it
// lands on a scalar inside the curve order.
func newKey(seed []byte) *btcec.PrivateKey {
	inc := big.NewInt(0).SetBytes(seed)
	inc.Lsh(inc, 32)
	for key := big.NewInt(0); ; inc.Add(inc, one) {
		key.SetBytes(Sha512Half(inc.Bytes()))
		if key.Cmp(zero) > 0 && key.Cmp(order) < 0 {
			privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), key.Bytes())
			return privKey
		}
	}
}

// NewECDSAKey returns the secp256k1 root key pair for seed.
// If seed is nil, 16 random bytes are used.
func NewECDSAKey(seed []byte) (Key, error) {
	if seed == nil {
		seed = make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
	}
	return &ecdsaKey{newKey(seed)}, nil
}

// generateKey derives the account family member at the given sub-index
// by offsetting the root scalar.
func (k *ecdsaKey) generateKey(sequence uint32) *btcec.PrivateKey {
	seed := make([]byte, btcec.PubKeyBytesLenCompressed+4)
	copy(seed, k.PubKey().SerializeCompressed())
	binary.BigEndian.PutUint32(seed[btcec.PubKeyBytesLenCompressed:], sequence)
	key := newKey(seed)
	key.D.Add(key.D, k.D).Mod(key.D, order)
	key.X, key.Y = key.ScalarBaseMult(key.D.Bytes())
	return key
}

func (k *ecdsaKey) Id(sequence *uint32) []byte {
	if sequence == nil {
		return Sha256RipeMD160(k.PubKey().SerializeCompressed())
	}
	return Sha256RipeMD160(k.Public(sequence))
}

func (k *ecdsaKey) Private(sequence *uint32) []byte {
	if sequence == nil {
		return k.Serialize()
	}
	generated := k.generateKey(*sequence)
	private := generated.Serialize()
	zeroizeScalar(generated.D)
	return private
}

func (k *ecdsaKey) Public(sequence *uint32) []byte {
	if sequence == nil {
		return k.PubKey().SerializeCompressed()
	}
	generated := k.generateKey(*sequence)
	public := generated.PubKey().SerializeCompressed()
	zeroizeScalar(generated.D)
	return public
}

func (k *ecdsaKey) Type() KeyType {
	return ECDSA
}

func (k *ecdsaKey) Zero() {
	zeroizeScalar(k.D)
}

// zeroizeScalar overwrites the words backing a big.Int.
func zeroizeScalar(d *big.Int) {
	words := d.Bits()
	for i := range words {
		words[i] = 0
	}
	d.SetInt64(0)
}
