package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Write operations on a hash.Hash never return an error

// Sha512Half returns the first 32 bytes of a SHA512 of the input bytes.
// This is the digest convention used throughout the XRP ledger.
func Sha512Half(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:32]
}

// Sha512Quarter returns the first 16 bytes of a SHA512 of the input bytes.
func Sha512Quarter(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:16]
}

func DoubleSha256(b []byte) []byte {
	hasher := sha256.New()
	hasher.Write(b)
	sha := hasher.Sum(nil)
	hasher.Reset()
	hasher.Write(sha)
	return hasher.Sum(nil)
}

func Sha256RipeMD160(b []byte) []byte {
	ripe := ripemd160.New()
	sha := sha256.New()
	sha.Write(b)
	ripe.Write(sha.Sum(nil))
	return ripe.Sum(nil)
}

// Zeroize overwrites b with zeroes. Best effort scrubbing for key
// material that has left its owning type.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
