package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
)

// Sign signs with either key family, selected by the private key length.
// secp256k1 keys sign the hash with a deterministic RFC6979 nonce and
// return a DER signature; ed25519 keys sign the full msg and return the
// fixed 64 byte form. The private key copy is scrubbed before returning.
func Sign(privateKey, hash, msg []byte) ([]byte, error) {
	defer Zeroize(privateKey)
	switch len(privateKey) {
	case ed25519.PrivateKeySize:
		return ed25519.Sign(ed25519.PrivateKey(privateKey), msg), nil
	case btcec.PrivKeyBytesLen:
		return signECDSA(privateKey, hash)
	default:
		return nil, fmt.Errorf("unknown private key format, length: %d", len(privateKey))
	}
}

// Verify dispatches on the public key marker byte. A signature that
// parses but does not match yields (false, nil); only a malformed
// encoding is an error.
func Verify(publicKey, hash, msg, signature []byte) (bool, error) {
	if len(publicKey) == 0 {
		return false, &InvalidSignatureEncodingError{Reason: "empty public key"}
	}
	switch publicKey[0] {
	case 0xED:
		return verifyEd25519(publicKey, signature, msg)
	case 0x02, 0x03:
		return verifyECDSA(publicKey, signature, hash)
	default:
		return false, &InvalidSignatureEncodingError{
			Reason: fmt.Sprintf("unknown public key marker: %x", publicKey[0]),
		}
	}
}

func verifyEd25519(pubKey, signature, msg []byte) (bool, error) {
	switch {
	case len(pubKey) != ed25519.PublicKeySize+1:
		return false, &InvalidSignatureEncodingError{
			Reason: fmt.Sprintf("wrong public key length: %d", len(pubKey)),
		}
	case len(signature) != ed25519.SignatureSize:
		return false, &InvalidSignatureEncodingError{
			Reason: fmt.Sprintf("wrong signature length: %d", len(signature)),
		}
	default:
		return ed25519.Verify(pubKey[1:], msg, signature), nil
	}
}

func signECDSA(privateKey, hash []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
	defer zeroizeScalar(priv.D)
	sig, err := priv.Sign(hash)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

func verifyECDSA(pubKey, signature, hash []byte) (bool, error) {
	sig, err := btcec.ParseDERSignature(signature, btcec.S256())
	if err != nil {
		return false, &InvalidSignatureEncodingError{Reason: err.Error()}
	}
	pk, err := btcec.ParsePubKey(pubKey, btcec.S256())
	if err != nil {
		return false, &InvalidSignatureEncodingError{Reason: err.Error()}
	}
	return sig.Verify(hash, pk), nil
}
