package xrpl

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical binary format constants for a signed Payment. Field headers are
// (type code, field code) pairs serialized in ascending order.
const (
	txTypePayment = 0

	// tfFullyCanonicalSig requires a canonical signature, protecting the
	// transaction from malleability.
	tfFullyCanonicalSig = 0x80000000
)

var (
	// Multi-byte hash prefixes from the XRPL protocol.
	prefixTxSign = []byte{0x53, 0x54, 0x58, 0x00} // "STX\0", single-signer signing data
	prefixTxID   = []byte{0x54, 0x58, 0x4E, 0x00} // "TXN\0", transaction identifying hash

	// Issued amount value bounds: mantissa normalized to [1e15, 1e16),
	// exponent within [-96, 80].
	minMantissa = new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil)
	maxMantissa = new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
)

// IssuedAmount is a currency/issuer/value triple for a token payment.
type IssuedAmount struct {
	Currency string
	Issuer   string
	Value    decimal.Decimal
}

// Payment is the one transaction shape the bridge submits. Account,
// Sequence, FeeDrops and LastLedgerSequence are filled in before signing.
type Payment struct {
	Account            string
	Destination        string
	DestinationTag     *uint32
	Amount             IssuedAmount
	Sequence           uint32
	FeeDrops           uint64
	LastLedgerSequence uint32
}

// SignPayment serializes, signs and re-serializes a payment, returning the
// signed blob and the transaction hash it will be identified by on ledger.
func SignPayment(w *Wallet, p *Payment) (blob []byte, hash string, err error) {
	spk := w.SigningPubKey()

	unsigned, err := serializePayment(p, spk, nil)
	if err != nil {
		return nil, "", err
	}

	sig := w.Sign(append(append([]byte{}, prefixTxSign...), unsigned...))

	blob, err = serializePayment(p, spk, sig)
	if err != nil {
		return nil, "", err
	}

	digest := sha512Half(append(append([]byte{}, prefixTxID...), blob...))
	return blob, strings.ToUpper(hex.EncodeToString(digest)), nil
}

// serializePayment emits the payment fields in canonical (type, field)
// order. A nil signature produces the signing-time serialization.
func serializePayment(p *Payment, signingPubKey, signature []byte) ([]byte, error) {
	account, err := decodeAccountID(p.Account)
	if err != nil {
		return nil, err
	}
	destination, err := decodeAccountID(p.Destination)
	if err != nil {
		return nil, err
	}
	issuer, err := decodeAccountID(p.Amount.Issuer)
	if err != nil {
		return nil, err
	}
	currency, err := encodeCurrency(p.Amount.Currency)
	if err != nil {
		return nil, err
	}
	value, err := encodeIssuedValue(p.Amount.Value)
	if err != nil {
		return nil, err
	}

	var out []byte

	// TransactionType, UInt16 field 2
	out = append(out, 0x12)
	out = binary.BigEndian.AppendUint16(out, txTypePayment)

	// Flags, UInt32 field 2
	out = append(out, 0x22)
	out = binary.BigEndian.AppendUint32(out, tfFullyCanonicalSig)

	// Sequence, UInt32 field 4
	out = append(out, 0x24)
	out = binary.BigEndian.AppendUint32(out, p.Sequence)

	// DestinationTag, UInt32 field 14
	if p.DestinationTag != nil {
		out = append(out, 0x2E)
		out = binary.BigEndian.AppendUint32(out, *p.DestinationTag)
	}

	// LastLedgerSequence, UInt32 field 27 (field >= 16 uses a two-byte header)
	out = append(out, 0x20, 0x1B)
	out = binary.BigEndian.AppendUint32(out, p.LastLedgerSequence)

	// Amount, Amount field 1: 8-byte value, 20-byte currency, 20-byte issuer
	out = append(out, 0x61)
	out = binary.BigEndian.AppendUint64(out, value)
	out = append(out, currency...)
	out = append(out, issuer...)

	// Fee, Amount field 8: native drops with the "positive XRP" bit set
	out = append(out, 0x68)
	out = binary.BigEndian.AppendUint64(out, 0x4000000000000000|p.FeeDrops)

	// SigningPubKey, Blob field 3
	out = append(out, 0x73)
	out = appendVL(out, signingPubKey)

	// TxnSignature, Blob field 4, present only in the signed serialization
	if signature != nil {
		out = append(out, 0x74)
		out = appendVL(out, signature)
	}

	// Account, AccountID field 1
	out = append(out, 0x81)
	out = appendVL(out, account)

	// Destination, AccountID field 3
	out = append(out, 0x83)
	out = appendVL(out, destination)

	return out, nil
}

// appendVL writes a variable-length prefix followed by the data. All blobs
// the bridge produces are well under the 192-byte single-byte-prefix limit.
func appendVL(out, data []byte) []byte {
	if len(data) > 192 {
		panic("xrpl: variable-length field too long")
	}
	out = append(out, byte(len(data)))
	return append(out, data...)
}

// encodeCurrency produces the 160-bit currency field. Three-character codes
// use the standard layout (ASCII at bytes 12..14); 40-character hex codes,
// like RLUSD's, are taken verbatim.
func encodeCurrency(code string) ([]byte, error) {
	buf := make([]byte, 20)
	switch len(code) {
	case 3:
		copy(buf[12:], code)
		return buf, nil
	case 40:
		raw, err := hex.DecodeString(code)
		if err != nil {
			return nil, fmt.Errorf("invalid hex currency code %q", code)
		}
		copy(buf, raw)
		return buf, nil
	}
	return nil, fmt.Errorf("invalid currency code %q", code)
}

// encodeIssuedValue packs a positive decimal into the 64-bit issued-amount
// format: bit 63 marks "not XRP", bit 62 the sign, bits 54..61 hold the
// exponent biased by 97 and the low 54 bits the normalized mantissa.
// Amounts with more precision than the 16-digit mantissa allows are
// rounded half up, matching the ledger's own representation.
func encodeIssuedValue(d decimal.Decimal) (uint64, error) {
	if d.IsZero() {
		return 0x8000000000000000, nil
	}
	if d.IsNegative() {
		return 0, errors.New("negative issued amount")
	}

	mantissa := new(big.Int).Abs(d.Coefficient())
	exp := int64(d.Exponent())

	for mantissa.Cmp(minMantissa) < 0 {
		mantissa.Mul(mantissa, big.NewInt(10))
		exp--
	}
	for mantissa.Cmp(maxMantissa) >= 0 {
		q, r := new(big.Int).QuoRem(mantissa, big.NewInt(10), new(big.Int))
		if r.Int64() >= 5 {
			q.Add(q, big.NewInt(1))
		}
		mantissa = q
		exp++
	}
	if exp < -96 || exp > 80 {
		return 0, fmt.Errorf("issued amount %s out of range", d)
	}

	bits := uint64(0x8000000000000000) // not XRP
	bits |= uint64(0x4000000000000000) // positive
	bits |= uint64(exp+97) << 54
	bits |= mantissa.Uint64()
	return bits, nil
}

// sha512Half is SHA-512 truncated to its first 32 bytes, the hash XRPL uses
// throughout its protocol.
func sha512Half(b []byte) []byte {
	digest := sha512.Sum512(b)
	return digest[:32]
}
