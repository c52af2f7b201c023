package data

import (
	"encoding/binary"
	"io"
	"strings"
)

// HashPrefix is the four byte domain separation tag hashed ahead of a
// serialized payload so digests from different contexts can never collide.
type HashPrefix uint32

const (
	HP_TRANSACTION_ID   HashPrefix = 0x54584E00 // 'TXN' hash of a signed transaction
	HP_TRANSACTION_SIGN HashPrefix = 0x53545800 // 'STX' payload signed for a single signature
)

func (h HashPrefix) Bytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(h))
	return b
}

func (h HashPrefix) String() string {
	return string(h.Bytes())
}

// enc is the (type code, field code) pair identifying a field on the wire.
type enc struct {
	typ, field uint8
}

const (
	ST_UINT16    uint8 = 1
	ST_UINT32    uint8 = 2
	ST_UINT64    uint8 = 3
	ST_HASH128   uint8 = 4
	ST_HASH256   uint8 = 5
	ST_AMOUNT    uint8 = 6
	ST_VL        uint8 = 7
	ST_ACCOUNT   uint8 = 8
	ST_OBJECT    uint8 = 14
	ST_ARRAY     uint8 = 15
	ST_UINT8     uint8 = 16
	ST_HASH160   uint8 = 17
	ST_PATHSET   uint8 = 18
	ST_VECTOR256 uint8 = 19
)

// See rippled's SField.cpp for the strings and corresponding encoding values.
var encodings = map[enc]string{
	// 16-bit unsigned integers (common)
	{ST_UINT16, 1}: "LedgerEntryType",
	{ST_UINT16, 2}: "TransactionType",
	{ST_UINT16, 3}: "SignerWeight",
	// 16-bit unsigned integers (uncommon)
	{ST_UINT16, 16}: "Version",
	// 32-bit unsigned integers (common)
	{ST_UINT32, 2}:  "Flags",
	{ST_UINT32, 3}:  "SourceTag",
	{ST_UINT32, 4}:  "Sequence",
	{ST_UINT32, 5}:  "PreviousTxnLgrSeq",
	{ST_UINT32, 6}:  "LedgerSequence",
	{ST_UINT32, 7}:  "CloseTime",
	{ST_UINT32, 8}:  "ParentCloseTime",
	{ST_UINT32, 9}:  "SigningTime",
	{ST_UINT32, 10}: "Expiration",
	{ST_UINT32, 11}: "TransferRate",
	{ST_UINT32, 12}: "WalletSize",
	{ST_UINT32, 13}: "OwnerCount",
	{ST_UINT32, 14}: "DestinationTag",
	// 32-bit unsigned integers (uncommon)
	{ST_UINT32, 16}: "HighQualityIn",
	{ST_UINT32, 17}: "HighQualityOut",
	{ST_UINT32, 18}: "LowQualityIn",
	{ST_UINT32, 19}: "LowQualityOut",
	{ST_UINT32, 20}: "QualityIn",
	{ST_UINT32, 21}: "QualityOut",
	{ST_UINT32, 25}: "OfferSequence",
	{ST_UINT32, 26}: "FirstLedgerSequence",
	{ST_UINT32, 27}: "LastLedgerSequence",
	{ST_UINT32, 28}: "TransactionIndex",
	{ST_UINT32, 29}: "OperationLimit",
	{ST_UINT32, 30}: "ReferenceFeeUnits",
	{ST_UINT32, 31}: "ReserveBase",
	{ST_UINT32, 32}: "ReserveIncrement",
	{ST_UINT32, 33}: "SetFlag",
	{ST_UINT32, 34}: "ClearFlag",
	{ST_UINT32, 35}: "SignerQuorum",
	{ST_UINT32, 36}: "CancelAfter",
	{ST_UINT32, 37}: "FinishAfter",
	{ST_UINT32, 38}: "SignerListID",
	{ST_UINT32, 39}: "SettleDelay",
	// 64-bit unsigned integers (common)
	{ST_UINT64, 1}:  "IndexNext",
	{ST_UINT64, 2}:  "IndexPrevious",
	{ST_UINT64, 3}:  "BookNode",
	{ST_UINT64, 4}:  "OwnerNode",
	{ST_UINT64, 5}:  "BaseFee",
	{ST_UINT64, 6}:  "ExchangeRate",
	{ST_UINT64, 7}:  "LowNode",
	{ST_UINT64, 8}:  "HighNode",
	{ST_UINT64, 9}:  "DestinationNode",
	{ST_UINT64, 10}: "Cookie",
	// 128-bit (common)
	{ST_HASH128, 1}: "EmailHash",
	// 256-bit (common)
	{ST_HASH256, 1}: "LedgerHash",
	{ST_HASH256, 2}: "ParentHash",
	{ST_HASH256, 3}: "TransactionHash",
	{ST_HASH256, 4}: "AccountHash",
	{ST_HASH256, 5}: "PreviousTxnID",
	{ST_HASH256, 6}: "LedgerIndex",
	{ST_HASH256, 7}: "WalletLocator",
	{ST_HASH256, 8}: "RootIndex",
	{ST_HASH256, 9}: "AccountTxnID",
	// 256-bit (uncommon)
	{ST_HASH256, 16}: "BookDirectory",
	{ST_HASH256, 17}: "InvoiceID",
	{ST_HASH256, 18}: "Nickname",
	{ST_HASH256, 19}: "Amendment",
	{ST_HASH256, 20}: "TicketID",
	{ST_HASH256, 21}: "Digest",
	{ST_HASH256, 22}: "Channel",
	{ST_HASH256, 24}: "CheckID",
	// currency amount (common)
	{ST_AMOUNT, 1}:  "Amount",
	{ST_AMOUNT, 2}:  "Balance",
	{ST_AMOUNT, 3}:  "LimitAmount",
	{ST_AMOUNT, 4}:  "TakerPays",
	{ST_AMOUNT, 5}:  "TakerGets",
	{ST_AMOUNT, 6}:  "LowLimit",
	{ST_AMOUNT, 7}:  "HighLimit",
	{ST_AMOUNT, 8}:  "Fee",
	{ST_AMOUNT, 9}:  "SendMax",
	{ST_AMOUNT, 10}: "DeliverMin",
	// currency amount (uncommon)
	{ST_AMOUNT, 16}: "MinimumOffer",
	{ST_AMOUNT, 17}: "RippleEscrow",
	{ST_AMOUNT, 18}: "DeliveredAmount",
	// variable length (common)
	{ST_VL, 1}:  "PublicKey",
	{ST_VL, 2}:  "MessageKey",
	{ST_VL, 3}:  "SigningPubKey",
	{ST_VL, 4}:  "TxnSignature",
	{ST_VL, 6}:  "Signature",
	{ST_VL, 7}:  "Domain",
	{ST_VL, 8}:  "FundCode",
	{ST_VL, 9}:  "RemoveCode",
	{ST_VL, 10}: "ExpireCode",
	{ST_VL, 11}: "CreateCode",
	{ST_VL, 12}: "MemoType",
	{ST_VL, 13}: "MemoData",
	{ST_VL, 14}: "MemoFormat",
	// variable length (uncommon)
	{ST_VL, 16}: "Fulfillment",
	{ST_VL, 17}: "Condition",
	{ST_VL, 18}: "MasterSignature",
	// account
	{ST_ACCOUNT, 1}: "Account",
	{ST_ACCOUNT, 2}: "Owner",
	{ST_ACCOUNT, 3}: "Destination",
	{ST_ACCOUNT, 4}: "Issuer",
	{ST_ACCOUNT, 5}: "Authorize",
	{ST_ACCOUNT, 6}: "Unauthorize",
	{ST_ACCOUNT, 7}: "Target",
	{ST_ACCOUNT, 8}: "RegularKey",
	// inner object
	{ST_OBJECT, 1}:  "EndOfObject",
	{ST_OBJECT, 2}:  "TransactionMetaData",
	{ST_OBJECT, 3}:  "CreatedNode",
	{ST_OBJECT, 4}:  "DeletedNode",
	{ST_OBJECT, 5}:  "ModifiedNode",
	{ST_OBJECT, 6}:  "PreviousFields",
	{ST_OBJECT, 7}:  "FinalFields",
	{ST_OBJECT, 8}:  "NewFields",
	{ST_OBJECT, 9}:  "TemplateEntry",
	{ST_OBJECT, 10}: "Memo",
	{ST_OBJECT, 11}: "SignerEntry",
	// inner object (uncommon)
	{ST_OBJECT, 16}: "Signer",
	{ST_OBJECT, 18}: "Majority",
	// array of objects
	{ST_ARRAY, 1}: "EndOfArray",
	{ST_ARRAY, 3}: "Signers",
	{ST_ARRAY, 4}: "SignerEntries",
	{ST_ARRAY, 5}: "Template",
	{ST_ARRAY, 8}: "AffectedNodes",
	{ST_ARRAY, 9}: "Memos",
	// array of objects (uncommon)
	{ST_ARRAY, 16}: "Majorities",
	// 8-bit unsigned integers (common)
	{ST_UINT8, 1}: "CloseResolution",
	{ST_UINT8, 2}: "Method",
	{ST_UINT8, 3}: "TransactionResult",
	// 8-bit unsigned integers (uncommon)
	{ST_UINT8, 16}: "TickSize",
	// 160-bit (common)
	{ST_HASH160, 1}: "TakerPaysCurrency",
	{ST_HASH160, 2}: "TakerPaysIssuer",
	{ST_HASH160, 3}: "TakerGetsCurrency",
	{ST_HASH160, 4}: "TakerGetsIssuer",
	// path set
	{ST_PATHSET, 1}: "Paths",
	// vector of 256-bit
	{ST_VECTOR256, 1}: "Indexes",
	{ST_VECTOR256, 2}: "Hashes",
	{ST_VECTOR256, 3}: "Amendments",
}

var reverseEncodings map[string]enc
var signingFields map[enc]struct{}

func init() {
	reverseEncodings = make(map[string]enc)
	signingFields = make(map[enc]struct{})
	for e, name := range encodings {
		reverseEncodings[name] = e
		if strings.Contains(name, "Signature") {
			signingFields[e] = struct{}{}
		}
	}
}

// Priority defines the canonical field order: type code ascending, then
// field code ascending. Serialization always follows it, never the order
// fields were set.
func (e enc) Priority() uint32 {
	return uint32(e.typ)<<16 | uint32(e.field)
}

// SigningField reports fields excluded from the payload a signature is
// computed over.
func (e enc) SigningField() bool {
	_, ok := signingFields[e]
	return ok
}

func readEncoding(r Reader) (*enc, error) {
	var e enc
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	e.typ = b >> 4
	e.field = b & 0xF
	if e.typ == 0 {
		if e.typ, err = r.ReadByte(); err != nil {
			return nil, &MalformedHeaderError{}
		}
		// an extended type code below 16 belongs in the leading nibble
		if e.typ < 16 {
			return nil, &MalformedHeaderError{Type: e.typ, Field: e.field}
		}
	}
	if e.field == 0 {
		if e.field, err = r.ReadByte(); err != nil {
			return nil, &MalformedHeaderError{Type: e.typ}
		}
		if e.field < 16 {
			return nil, &MalformedHeaderError{Type: e.typ, Field: e.field}
		}
	}
	return &e, nil
}

func writeEncoding(w io.Writer, e enc) error {
	var err error
	switch {
	case e.typ < 16 && e.field < 16:
		_, err = w.Write([]uint8{e.typ<<4 | e.field})
	case e.typ < 16:
		_, err = w.Write([]uint8{e.typ << 4, e.field})
	case e.field < 16:
		_, err = w.Write([]uint8{e.field, e.typ})
	default:
		_, err = w.Write([]uint8{0, e.typ, e.field})
	}
	return err
}

func write(w io.Writer, v interface{}) error {
	return binary.Write(w, binary.BigEndian, v)
}

func read(r Reader, dest interface{}) error {
	return binary.Read(r, binary.BigEndian, dest)
}

// The three tier variable length prefix: lengths up to 192 take one
// byte, up to 12480 two bytes, up to 918744 three bytes.
const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxVariableLength   = 918744
)

func writeVariableLength(w io.Writer, b []byte) error {
	n := len(b)
	var err error
	switch {
	case n < 0 || n > maxVariableLength:
		return &LengthOverflowError{Length: n}
	case n <= maxSingleByteLength:
		_, err = w.Write([]uint8{uint8(n)})
	case n <= maxDoubleByteLength:
		n -= maxSingleByteLength + 1
		_, err = w.Write([]uint8{193 + uint8(n>>8), uint8(n)})
	default:
		n -= maxDoubleByteLength + 1
		_, err = w.Write([]uint8{241 + uint8(n>>16), uint8(n >> 8), uint8(n)})
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func readVariableLength(r Reader) (int, error) {
	var first, second, third byte
	var err error
	if first, err = r.ReadByte(); err != nil {
		return 0, &TruncatedInputError{Field: "length prefix"}
	}
	switch {
	case first <= 192:
		return int(first), nil
	case first <= 240:
		if second, err = r.ReadByte(); err != nil {
			return 0, &TruncatedInputError{Field: "length prefix"}
		}
		return 193 + int(first-193)*256 + int(second), nil
	case first <= 254:
		if second, err = r.ReadByte(); err != nil {
			return 0, &TruncatedInputError{Field: "length prefix"}
		}
		if third, err = r.ReadByte(); err != nil {
			return 0, &TruncatedInputError{Field: "length prefix"}
		}
		return 12481 + int(first-241)*65536 + int(second)*256 + int(third), nil
	}
	return 0, &LengthOverflowError{Length: int(first)}
}
