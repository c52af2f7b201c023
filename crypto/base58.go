package crypto

import (
	"bytes"

	"github.com/mr-tron/base58"
)

var rippleAlphabet = base58.NewAlphabet(ALPHABET)

// Base58Encode appends a four byte double-SHA256 checksum to b and
// encodes the result with the ledger's alphabet.
func Base58Encode(b []byte, alphabet string) string {
	checked := append(append([]byte(nil), b...), DoubleSha256(b)[:4]...)
	return base58.FastBase58EncodingAlphabet(checked, alphabetFor(alphabet))
}

// Base58Decode decodes s and verifies its trailing checksum. The returned
// bytes still include the four checksum bytes.
func Base58Decode(s string, alphabet string) ([]byte, error) {
	decoded, err := base58.FastBase58DecodingAlphabet(s, alphabetFor(alphabet))
	if err != nil {
		return nil, &InvalidBase58Error{Input: s, Reason: err.Error()}
	}
	if len(decoded) < 5 {
		return nil, &ChecksumMismatchError{Input: s}
	}
	payload := decoded[:len(decoded)-4]
	if !bytes.Equal(DoubleSha256(payload)[:4], decoded[len(decoded)-4:]) {
		return nil, &ChecksumMismatchError{Input: s}
	}
	return decoded, nil
}

func alphabetFor(alphabet string) *base58.Alphabet {
	if alphabet == ALPHABET {
		return rippleAlphabet
	}
	return base58.NewAlphabet(alphabet)
}
