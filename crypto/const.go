package crypto

type HashVersion byte

const (
	ACCOUNT_ZERO = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	ACCOUNT_ONE  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	ROOT         = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

const (
	// ALPHABET is the base58 dictionary used by the XRP ledger. It is a
	// permutation of the Bitcoin alphabet, not the alphabet itself.
	ALPHABET = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	RIPPLE_ACCOUNT_ID      HashVersion = 0
	RIPPLE_NODE_PUBLIC     HashVersion = 28
	RIPPLE_NODE_PRIVATE    HashVersion = 32
	RIPPLE_FAMILY_SEED     HashVersion = 33
	RIPPLE_ACCOUNT_PRIVATE HashVersion = 34
	RIPPLE_ACCOUNT_PUBLIC  HashVersion = 35
)

// Ed25519 family seeds use a three byte prefix instead of a single
// version byte, giving the "sEd" human readable form.
var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

var hashTypes = [...]struct {
	Description string
	Payload     int
}{
	RIPPLE_ACCOUNT_ID:      {"Account address", 20},
	RIPPLE_NODE_PUBLIC:     {"Validation public key for node", 33},
	RIPPLE_NODE_PRIVATE:    {"Validation private key for node", 32},
	RIPPLE_FAMILY_SEED:     {"Family seed", 16},
	RIPPLE_ACCOUNT_PRIVATE: {"Account private key", 32},
	RIPPLE_ACCOUNT_PUBLIC:  {"Account public key", 33},
}
