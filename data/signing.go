package data

import (
	"fmt"

	"github.com/crossledger/xrpl-tools/crypto"
)

// Sign computes the signing hash over o's non-signing fields, signs it
// with key and injects the SigningPubKey and TxnSignature fields. After
// Sign returns, o serializes to the submittable signed form. Mutating o
// afterwards silently invalidates the signature; that is a caller
// contract the codec cannot detect.
func Sign(o TxObject, key crypto.Key, sequence *uint32) error {
	if err := o.Set("SigningPubKey", NewVariableLength(key.Public(sequence))); err != nil {
		return err
	}
	hash, msg, err := SigningHash(o)
	if err != nil {
		return err
	}
	sig, err := crypto.Sign(key.Private(sequence), hash.Bytes(), append(HP_TRANSACTION_SIGN.Bytes(), msg...))
	if err != nil {
		return err
	}
	return o.Set("TxnSignature", NewVariableLength(sig))
}

// CheckSignature verifies o's TxnSignature against its SigningPubKey.
// A well formed signature that does not match yields (false, nil).
func CheckSignature(o TxObject) (bool, error) {
	pubKey, ok := o.Get("SigningPubKey").(*VariableLength)
	if !ok {
		return false, fmt.Errorf("missing SigningPubKey")
	}
	sig, ok := o.Get("TxnSignature").(*VariableLength)
	if !ok {
		return false, fmt.Errorf("missing TxnSignature")
	}
	hash, msg, err := SigningHash(o)
	if err != nil {
		return false, err
	}
	return crypto.Verify(pubKey.Bytes(), hash.Bytes(), append(HP_TRANSACTION_SIGN.Bytes(), msg...), sig.Bytes())
}
