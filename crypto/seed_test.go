package crypto

import (
	"strings"

	. "gopkg.in/check.v1"
)

type SeedSuite struct{}

var _ = Suite(&SeedSuite{})

func (s *SeedSuite) TestFamilySeedRoundTrip(c *C) {
	seed, err := NewSeed(Sha512Quarter([]byte("masterpassphrase")), ECDSA)
	c.Assert(err, IsNil)
	c.Check(seed.String(), Equals, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb")

	parsed, err := ParseSeed(seed.String())
	c.Assert(err, IsNil)
	c.Check(parsed.KeyType(), Equals, ECDSA)
	c.Check(b2h(parsed.Payload()), Equals, b2h(seed.Payload()))
}

func (s *SeedSuite) TestEd25519SeedRoundTrip(c *C) {
	seed, err := NewSeed(h2b("71ED064155FFADFA38782C5E0158CB26"), Ed25519)
	c.Assert(err, IsNil)
	encoded := seed.String()
	c.Check(strings.HasPrefix(encoded, "sEd"), Equals, true)

	parsed, err := ParseSeed(encoded)
	c.Assert(err, IsNil)
	c.Check(parsed.KeyType(), Equals, Ed25519)
	c.Check(b2h(parsed.Payload()), Equals, b2h(seed.Payload()))
}

func (s *SeedSuite) TestSeedSelectsKeyFamily(c *C) {
	payload := Sha512Quarter([]byte("masterpassphrase"))

	ecdsaSeed, err := NewSeed(payload, ECDSA)
	c.Assert(err, IsNil)
	account, err := ecdsaSeed.AccountId()
	c.Assert(err, IsNil)
	c.Check(account.String(), Equals, ROOT)

	edSeed, err := NewSeed(payload, Ed25519)
	c.Assert(err, IsNil)
	account, err = edSeed.AccountId()
	c.Assert(err, IsNil)
	c.Check(account.String(), Equals, "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf")
}

func (s *SeedSuite) TestSeedDeterminism(c *C) {
	payload := h2b("71ED064155FFADFA38782C5E0158CB26")
	for _, keyType := range []KeyType{ECDSA, Ed25519} {
		seed, err := NewSeed(payload, keyType)
		c.Assert(err, IsNil)
		first, err := seed.Key()
		c.Assert(err, IsNil)
		second, err := seed.Key()
		c.Assert(err, IsNil)
		c.Check(b2h(first.Public(nil)), Equals, b2h(second.Public(nil)))
	}
}

func (s *SeedSuite) TestParseSeedRejectsWrongVersion(c *C) {
	// an account address is not a seed
	_, err := ParseSeed(ROOT)
	c.Check(err, NotNil)

	_, err = ParseSeed("not a seed at all")
	c.Check(err, NotNil)

	_, err = NewSeed([]byte{1, 2, 3}, ECDSA)
	c.Check(err, NotNil)
}
