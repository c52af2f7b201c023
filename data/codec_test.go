package data

import (
	"bytes"
	"errors"

	"github.com/crossledger/xrpl-tools/crypto"
	. "gopkg.in/check.v1"
)

type CodecSuite struct{}

var _ = Suite(&CodecSuite{})

var (
	testSender   = h2b("0123456789ABCDEF0123456789ABCDEF01234567")
	testReceiver = h2b("FEDCBA9876543210FEDCBA9876543210FEDCBA98")
)

// testPayment builds a minimal native payment, setting fields in the
// given order to exercise order independence.
func testPayment(c *C, names ...string) TxObject {
	sender, err := NewAccountId(testSender)
	c.Assert(err, IsNil)
	receiver, err := NewAccountId(testReceiver)
	c.Assert(err, IsNil)
	amount, err := NewAmount(int64(1000000))
	c.Assert(err, IsNil)
	fee, err := NewAmount(int64(10))
	c.Assert(err, IsNil)
	values := map[string]interface{}{
		"Sequence":    NewUint32(1),
		"Amount":      amount,
		"Fee":         fee,
		"Account":     sender,
		"Destination": receiver,
	}
	o := NewTxObject()
	for _, name := range names {
		c.Assert(o.Set(name, values[name]), IsNil)
	}
	return o
}

var paymentFields = []string{"Sequence", "Amount", "Fee", "Account", "Destination"}

func paymentHex() string {
	return "2400000001" +
		"6140000000000F4240" +
		"68400000000000000A" +
		"8114" + b2h(testSender) +
		"8314" + b2h(testReceiver)
}

func (s *CodecSuite) TestPaymentSerialization(c *C) {
	o := testPayment(c, paymentFields...)
	buf := new(bytes.Buffer)
	c.Assert(Encode(buf, o, false), IsNil)
	c.Check(b2h(buf.Bytes()), Equals, paymentHex())
}

func (s *CodecSuite) TestInsertionOrderIndependence(c *C) {
	forward := testPayment(c, "Sequence", "Amount", "Fee", "Account", "Destination")
	reverse := testPayment(c, "Destination", "Account", "Fee", "Amount", "Sequence")
	a := new(bytes.Buffer)
	b := new(bytes.Buffer)
	c.Assert(Encode(a, forward, false), IsNil)
	c.Assert(Encode(b, reverse, false), IsNil)
	c.Check(b2h(a.Bytes()), Equals, b2h(b.Bytes()))
}

func (s *CodecSuite) TestRawHash(c *C) {
	o := testPayment(c, paymentFields...)
	txid, blob, err := Raw(o)
	c.Assert(err, IsNil)
	c.Check(b2h(blob), Equals, paymentHex())
	want := crypto.Sha512Half(append(HP_TRANSACTION_ID.Bytes(), blob...))
	c.Check(b2h(txid.Bytes()), Equals, b2h(want))
}

func (s *CodecSuite) TestDecodeRoundTrip(c *C) {
	o := testPayment(c, paymentFields...)
	_, blob, err := Raw(o)
	c.Assert(err, IsNil)

	decoded, err := DecodeBytes(blob)
	c.Assert(err, IsNil)
	c.Check(decoded, HasLen, len(paymentFields))
	c.Check(uint32(*decoded.Get("Sequence").(*Uint32)), Equals, uint32(1))
	c.Check(decoded.Get("Account").(*Account).Bytes(), DeepEquals, testSender)
	c.Check(decoded.Get("Amount").(*Amount).IsNative(), Equals, true)

	buf := new(bytes.Buffer)
	c.Assert(Encode(buf, decoded, false), IsNil)
	c.Check(b2h(buf.Bytes()), Equals, b2h(blob))
}

func (s *CodecSuite) TestIssuedAmountSerialization(c *C) {
	value, err := NewValue("1", false)
	c.Assert(err, IsNil)
	currency, err := NewCurrency("USD")
	c.Assert(err, IsNil)
	issuer, err := NewAccountId(testReceiver)
	c.Assert(err, IsNil)
	amount := &Amount{Value: value, Currency: currency, Issuer: *issuer}

	buf := new(bytes.Buffer)
	c.Assert(amount.Marshal(buf), IsNil)
	// value, then raw currency and issuer with no length prefixes
	c.Check(b2h(buf.Bytes()), Equals,
		"D4838D7EA4C68000"+
			"0000000000000000000000005553440000000000"+
			b2h(testReceiver))

	decoded := new(Amount)
	c.Assert(decoded.Unmarshal(bytes.NewReader(buf.Bytes())), IsNil)
	c.Check(decoded.Equals(*amount), Equals, true)
}

func (s *CodecSuite) TestMemoArraySerialization(c *C) {
	memo := NewTxObject()
	c.Assert(memo.Set("MemoType", NewVariableLength(h2b("74657374"))), IsNil)
	c.Assert(memo.Set("MemoData", NewVariableLength(h2b("64617461"))), IsNil)
	element := NewTxObject()
	c.Assert(element.Set("Memo", memo), IsNil)

	o := NewTxObject()
	c.Assert(o.Set("Memos", Array{element}), IsNil)

	buf := new(bytes.Buffer)
	c.Assert(Encode(buf, o, false), IsNil)
	c.Check(b2h(buf.Bytes()), Equals, "F9EA7C04746573747D0464617461E1F1")

	decoded, err := DecodeBytes(buf.Bytes())
	c.Assert(err, IsNil)
	array, ok := decoded.Get("Memos").(Array)
	c.Assert(ok, Equals, true)
	c.Assert(array, HasLen, 1)
	inner, ok := array[0].Get("Memo").(TxObject)
	c.Assert(ok, Equals, true)
	c.Check(inner.Get("MemoType").(*VariableLength).String(), Equals, "74657374")
}

func (s *CodecSuite) TestSigningSerializationSkipsSignature(c *C) {
	o := testPayment(c, paymentFields...)
	c.Assert(o.Set("SigningPubKey", NewVariableLength(make([]byte, 33))), IsNil)

	_, unsigned, err := SigningHash(o)
	c.Assert(err, IsNil)

	c.Assert(o.Set("TxnSignature", NewVariableLength(h2b("DEADBEEF"))), IsNil)
	hash, withSig, err := SigningHash(o)
	c.Assert(err, IsNil)
	c.Check(b2h(withSig), Equals, b2h(unsigned))
	want := crypto.Sha512Half(append(HP_TRANSACTION_SIGN.Bytes(), unsigned...))
	c.Check(b2h(hash.Bytes()), Equals, b2h(want))
}

func (s *CodecSuite) TestHexPrefixedInputs(c *C) {
	plain, err := NewCurrency("0000000000000000000000005553440000000000")
	c.Assert(err, IsNil)
	prefixed, err := NewCurrency("0x0000000000000000000000005553440000000000")
	c.Assert(err, IsNil)
	c.Check(prefixed, Equals, plain)
	c.Check(prefixed.String(), Equals, "USD")
	_, err = NewCurrency("0xZZ00000000000000000000005553440000000000")
	c.Check(err, NotNil)

	digest := "A85E50A8B4800D1D5F661CE9C267E5B4803ECA01872EAC80B84C03D5FCC1B1A1"
	hash, err := NewHash256("0x" + digest)
	c.Assert(err, IsNil)
	c.Check(hash.String(), Equals, digest)
	_, err = NewHash256("0x" + digest[:10])
	c.Check(err, NotNil)
}

func (s *CodecSuite) TestDecodeVL(c *C) {
	o := testPayment(c, paymentFields...)
	_, blob, err := Raw(o)
	c.Assert(err, IsNil)

	prefixed := new(bytes.Buffer)
	c.Assert(writeVariableLength(prefixed, blob), IsNil)
	decoded, err := DecodeVL(bytes.NewReader(prefixed.Bytes()))
	c.Assert(err, IsNil)
	c.Check(decoded, HasLen, len(paymentFields))

	// prefix promising more bytes than remain
	_, err = DecodeVL(bytes.NewReader(h2b("0524000000")))
	var truncated *TruncatedInputError
	c.Check(errors.As(err, &truncated), Equals, true)
}

func (s *CodecSuite) TestSetRejectsWrongKind(c *C) {
	o := NewTxObject()
	c.Check(o.Set("Sequence", NewUint8(1)), NotNil)
	c.Check(o.Set("NoSuchField", NewUint32(1)), FitsTypeOf, &UnknownFieldError{})
}

func (s *CodecSuite) TestDecodeMalformed(c *C) {
	// end markers are not valid at the top level
	for _, bad := range []string{"E1", "F1"} {
		_, err := DecodeBytes(h2b(bad))
		var malformed *MalformedHeaderError
		c.Check(errors.As(err, &malformed), Equals, true, Commentf("input %s", bad))
	}
}

func (s *CodecSuite) TestDecodeTruncated(c *C) {
	// Sequence header followed by half a uint32
	_, err := DecodeBytes(h2b("240000"))
	var truncated *TruncatedInputError
	c.Check(errors.As(err, &truncated), Equals, true)

	// nested object cut off before its end marker
	_, err = DecodeBytes(h2b("EA"))
	c.Check(errors.As(err, &truncated), Equals, true)
}

func (s *CodecSuite) TestDecodeUnknownField(c *C) {
	// type 10 is not a registered type code
	_, err := DecodeBytes(h2b("A1"))
	var unknown *UnknownFieldError
	c.Check(errors.As(err, &unknown), Equals, true)

	// Paths is registered but outside the typed value union
	_, err = DecodeBytes(h2b("0112"))
	c.Check(errors.As(err, &unknown), Equals, true)
}

func (s *CodecSuite) TestDecodeBadAccountLength(c *C) {
	_, err := DecodeBytes(h2b("8103AABBCC"))
	var invalid *InvalidAccountError
	c.Assert(errors.As(err, &invalid), Equals, true)
	c.Check(invalid.Length, Equals, 3)
}

func (s *CodecSuite) TestArrayElementShape(c *C) {
	element := NewTxObject()
	c.Assert(element.Set("Sequence", NewUint32(1)), IsNil)
	o := NewTxObject()
	c.Assert(o.Set("Memos", Array{element}), IsNil)
	err := Encode(new(bytes.Buffer), o, false)
	c.Check(err, ErrorMatches, ".*exactly one object typed field.*")
}
