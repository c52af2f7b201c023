package data

import (
	"bytes"

	. "gopkg.in/check.v1"
)

type ValueSuite struct{}

var _ = Suite(&ValueSuite{})

func (s *ValueSuite) TestNativeEncoding(c *C) {
	for _, test := range []struct {
		drops int64
		hex   string
	}{
		{0, "4000000000000000"},
		{1, "4000000000000001"},
		{10, "400000000000000A"},
		{1000000, "40000000000F4240"},
		{9000000000000000000, "7CE66C50E2840000"},
	} {
		v, err := NewNativeValue(test.drops)
		c.Assert(err, IsNil)
		c.Check(b2h(v.Bytes()), Equals, test.hex, Commentf("%d drops", test.drops))
	}
}

func (s *ValueSuite) TestIssuedEncoding(c *C) {
	for _, test := range []struct {
		in  string
		hex string
	}{
		{"1", "D4838D7EA4C68000"},
		{"-1", "94838D7EA4C68000"},
		{"0.1", "D4438D7EA4C68000"},
		{"0", "8000000000000000"},
	} {
		v, err := NewValue(test.in, false)
		c.Assert(err, IsNil)
		c.Check(b2h(v.Bytes()), Equals, test.hex, Commentf("value %s", test.in))
	}
}

func (s *ValueSuite) TestCanonicalise(c *C) {
	// "1", "1.0" and "10e-1" collapse to one representation
	a, err := NewValue("1", false)
	c.Assert(err, IsNil)
	b, err := NewValue("1.0", false)
	c.Assert(err, IsNil)
	d, err := NewValue("10e-1", false)
	c.Assert(err, IsNil)
	c.Check(b2h(b.Bytes()), Equals, b2h(a.Bytes()))
	c.Check(b2h(d.Bytes()), Equals, b2h(a.Bytes()))

	v, err := NewNonNativeValue(123456, 0)
	c.Assert(err, IsNil)
	c.Check(v.String(), Equals, "123456")
}

func (s *ValueSuite) TestRangeErrors(c *C) {
	_, err := NewNonNativeValue(1, 97)
	c.Assert(err, FitsTypeOf, &AmountRangeError{})
	c.Check(err, ErrorMatches, ".*overflow.*")

	// one drop over the native cap
	_, err = NewNativeValue(9000000000000000001)
	c.Assert(err, FitsTypeOf, &AmountRangeError{})

	_, err = NewValue("123456789012345678901234567890123", false)
	c.Check(err, FitsTypeOf, &AmountRangeError{})
}

func (s *ValueSuite) TestUnderflowToZero(c *C) {
	v, err := NewNonNativeValue(1, -97)
	c.Assert(err, IsNil)
	c.Check(v.IsZero(), Equals, true)
	c.Check(v.IsNegative(), Equals, false)
}

func (s *ValueSuite) TestWireRoundTrip(c *C) {
	for _, in := range []string{"1", "-1", "0.1", "9999999999999999e80", "1e-81"} {
		v, err := NewValue(in, false)
		c.Assert(err, IsNil)
		decoded := new(Value)
		c.Assert(decoded.Unmarshal(bytes.NewReader(v.Bytes())), IsNil)
		c.Check(b2h(decoded.Bytes()), Equals, b2h(v.Bytes()), Commentf("value %s", in))
		c.Check(decoded.Equals(*v), Equals, true, Commentf("value %s", in))
	}
}

func (s *ValueSuite) TestUnmarshalTruncated(c *C) {
	err := new(Value).Unmarshal(bytes.NewReader(h2b("D483")))
	c.Check(err, FitsTypeOf, &TruncatedInputError{})
}

func (s *ValueSuite) TestComparisons(c *C) {
	one, err := NewValue("1", false)
	c.Assert(err, IsNil)
	two, err := NewValue("2", false)
	c.Assert(err, IsNil)
	c.Check(one.Compare(*two), Equals, -1)
	c.Check(two.Compare(*one), Equals, 1)
	c.Check(one.Compare(*one.Clone()), Equals, 0)

	// native and issued never compare equal even at the same magnitude
	drops, err := NewNativeValue(1)
	c.Assert(err, IsNil)
	issued, err := NewValue("1", false)
	c.Assert(err, IsNil)
	c.Check(drops.Equals(*issued), Equals, false)
}

func (s *ValueSuite) TestStrings(c *C) {
	xrp, err := NewNativeValue(1500000)
	c.Assert(err, IsNil)
	c.Check(xrp.String(), Equals, "1.5")

	small, err := NewValue("1e-81", false)
	c.Assert(err, IsNil)
	c.Check(small.String(), Equals, "1e-81")
}
