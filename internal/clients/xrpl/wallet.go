package xrpl

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/ripemd160"
)

// XRPL base58 dictionary. Same alphabet as Bitcoin's but reordered so that
// account addresses start with "r" and seeds with "s".
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var (
	// Version prefixes defined by the XRPL address codec.
	prefixAccountID   = []byte{0x00}
	prefixFamilySeed  = []byte{0x21}
	prefixEd25519Seed = []byte{0x01, 0xE1, 0x4B}

	// ErrInvalidSeed is returned when a seed fails base58 decoding, has a
	// bad checksum or an unknown version prefix.
	ErrInvalidSeed = errors.New("invalid XRPL seed")
)

// Wallet is a signing identity derived from a seed. Keys live only in
// memory for the duration of an operation.
type Wallet struct {
	Address string

	publicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

// NewWalletFromSeed derives an ed25519 keypair and classic address from an
// encoded seed. Both ed25519 ("sEd...") and family seed ("s...") encodings
// are accepted; key derivation is always ed25519, matching the default of
// the reference client library.
func NewWalletFromSeed(seed string) (*Wallet, error) {
	entropy, err := decodeSeed(seed)
	if err != nil {
		return nil, err
	}

	priv := ed25519.NewKeyFromSeed(sha512Half(entropy))
	pub := priv.Public().(ed25519.PublicKey)

	return &Wallet{
		Address:    encodeAccountID(accountID(pub)),
		publicKey:  pub,
		privateKey: priv,
	}, nil
}

// SigningPubKey returns the 33-byte public key as carried in the
// SigningPubKey transaction field (0xED prefix marks ed25519).
func (w *Wallet) SigningPubKey() []byte {
	return append([]byte{0xED}, w.publicKey...)
}

// Sign signs the given message bytes.
func (w *Wallet) Sign(msg []byte) []byte {
	return ed25519.Sign(w.privateKey, msg)
}

// accountID computes RIPEMD160(SHA256(signingPubKey)).
func accountID(pub ed25519.PublicKey) []byte {
	spk := append([]byte{0xED}, pub...)
	sha := sha256.Sum256(spk)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// encodeAccountID renders a 20-byte account id as a classic "r..." address.
func encodeAccountID(id []byte) string {
	return encodeBase58Check(prefixAccountID, id)
}

// decodeAccountID parses a classic address back into its 20-byte account id.
func decodeAccountID(address string) ([]byte, error) {
	payload, err := decodeBase58Check(address)
	if err != nil {
		return nil, fmt.Errorf("invalid XRPL address %q: %w", address, err)
	}
	if len(payload) != 21 || payload[0] != prefixAccountID[0] {
		return nil, fmt.Errorf("invalid XRPL address %q", address)
	}
	return payload[1:], nil
}

// decodeSeed extracts the 16 bytes of entropy from an encoded seed.
func decodeSeed(seed string) ([]byte, error) {
	payload, err := decodeBase58Check(seed)
	if err != nil {
		return nil, ErrInvalidSeed
	}
	switch {
	case len(payload) == 19 && bytes.Equal(payload[:3], prefixEd25519Seed):
		return payload[3:], nil
	case len(payload) == 17 && payload[0] == prefixFamilySeed[0]:
		return payload[1:], nil
	}
	return nil, ErrInvalidSeed
}

// encodeSeed renders 16 bytes of entropy as an ed25519 seed.
func encodeSeed(entropy []byte) (string, error) {
	if len(entropy) != 16 {
		return "", ErrInvalidSeed
	}
	return encodeBase58Check(prefixEd25519Seed, entropy), nil
}

// encodeBase58Check prepends the version, appends the 4-byte double-SHA256
// checksum and base58-encodes the result.
func encodeBase58Check(version, payload []byte) string {
	full := append(append([]byte{}, version...), payload...)
	first := sha256.Sum256(full)
	second := sha256.Sum256(first[:])
	full = append(full, second[:4]...)
	return base58Encode(full)
}

// decodeBase58Check decodes and verifies the checksum, returning the
// version-prefixed payload.
func decodeBase58Check(s string) ([]byte, error) {
	raw, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 5 {
		return nil, errors.New("base58check: input too short")
	}
	body, check := raw[:len(raw)-4], raw[len(raw)-4:]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(check, second[:4]) {
		return nil, errors.New("base58check: checksum mismatch")
	}
	return body, nil
}

func base58Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)
	radix := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for x.Sign() > 0 {
		x.DivMod(x, radix, mod)
		out = append(out, alphabet[mod.Int64()])
	}
	for _, c := range b {
		if c != 0 {
			break
		}
		out = append(out, alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func base58Decode(s string) ([]byte, error) {
	x := new(big.Int)
	radix := big.NewInt(58)
	for _, r := range s {
		idx := bytes.IndexByte([]byte(alphabet), byte(r))
		if idx < 0 {
			return nil, fmt.Errorf("base58: invalid character %q", r)
		}
		x.Mul(x, radix)
		x.Add(x, big.NewInt(int64(idx)))
	}

	out := x.Bytes()
	for i := 0; i < len(s) && s[i] == alphabet[0]; i++ {
		out = append([]byte{0}, out...)
	}
	return out, nil
}
