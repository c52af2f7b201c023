package common

import (
	"encoding/hex"
)

// Has0xPrefix returns true if str starts with 0x or 0X.
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// FromHex decodes a hex string with optional 0x prefix.
// An odd length string is left padded with a zero.
func FromHex(s string) []byte {
	if Has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}

const hextable = "0123456789ABCDEF"

// ToUpperHex encodes b as upper case hex without prefix,
// the form used throughout the XRP ledger.
func ToUpperHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
