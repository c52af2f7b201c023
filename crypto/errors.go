package crypto

import "fmt"

// InvalidBase58Error reports input that cannot be decoded under the
// ledger alphabet at all, such as a character outside it.
type InvalidBase58Error struct {
	Input  string
	Reason string
}

func (e *InvalidBase58Error) Error() string {
	return fmt.Sprintf("invalid base58 input %s: %s", e.Input, e.Reason)
}

// ChecksumMismatchError reports a base58 string whose final four checksum
// bytes do not match its payload.
type ChecksumMismatchError struct {
	Input string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("bad base58 checksum: %s", e.Input)
}

// InvalidVersionByteError reports a decoded hash whose version byte does
// not match the expected one.
type InvalidVersionByteError struct {
	Input string
	Want  HashVersion
	Got   HashVersion
}

func (e *InvalidVersionByteError) Error() string {
	return fmt.Sprintf("bad version for %s: expected %s got %s",
		e.Input, e.Want.description(), e.Got.description())
}

func (v HashVersion) description() string {
	if int(v) >= len(hashTypes) || hashTypes[v].Payload == 0 {
		return fmt.Sprintf("version %d", byte(v))
	}
	return hashTypes[v].Description
}

// InvalidSignatureEncodingError reports a signature or public key whose
// encoding cannot be parsed. An encoding that parses but fails to verify
// is not an error.
type InvalidSignatureEncodingError struct {
	Reason string
}

func (e *InvalidSignatureEncodingError) Error() string {
	return "invalid signature encoding: " + e.Reason
}
