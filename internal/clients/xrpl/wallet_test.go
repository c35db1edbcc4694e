package xrpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	entropy := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	}

	seed, err := encodeSeed(entropy)
	require.NoError(t, err)
	assert.True(t, seed[0] == 's', "seeds must start with 's', got %q", seed)

	decoded, err := decodeSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, entropy, decoded)
}

func TestEncodeSeedRejectsBadLength(t *testing.T) {
	_, err := encodeSeed([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestNewWalletFromSeed(t *testing.T) {
	entropy := make([]byte, 16)
	entropy[15] = 0x2A
	seed, err := encodeSeed(entropy)
	require.NoError(t, err)

	w1, err := NewWalletFromSeed(seed)
	require.NoError(t, err)
	w2, err := NewWalletFromSeed(seed)
	require.NoError(t, err)

	assert.True(t, w1.Address[0] == 'r', "addresses must start with 'r', got %q", w1.Address)
	assert.Equal(t, w1.Address, w2.Address, "derivation must be deterministic")
	assert.Len(t, w1.SigningPubKey(), 33)
	assert.Equal(t, byte(0xED), w1.SigningPubKey()[0])

	// A different seed yields a different account.
	entropy[0] = 0xFF
	otherSeed, err := encodeSeed(entropy)
	require.NoError(t, err)
	other, err := NewWalletFromSeed(otherSeed)
	require.NoError(t, err)
	assert.NotEqual(t, w1.Address, other.Address)
}

func TestNewWalletFromSeedKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		address string
	}{
		// Seed/address pair from the xrpl.org cryptographic-keys docs.
		{
			name:    "docs seed",
			seed:    "sEdTM1uX8pu2do5XvTnutH6HsouMaM2",
			address: "rG31cLyErnqeVj2eomEjBZtq7PYaupGYzL",
		},
		// Entropy bytes 0x00..0x0F, derived with an independent client.
		{
			name:    "sequential entropy",
			seed:    "sEdSJHdnVumf99WfaHTnU8DaQkx5Q4n",
			address: "rGMTQpyhaDwWTqmw4dcYHj5NPJhtWNhtRW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWalletFromSeed(tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.address, w.Address)
		})
	}
}

func TestNewWalletFromSeedInvalid(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "empty", seed: ""},
		{name: "garbage", seed: "not-a-seed"},
		{name: "wrong prefix", seed: "rGDreBvnHrX1get7na3J4oowN19ny4GzFn"},
		{name: "corrupted checksum", seed: "sEdTM1uX8pu2do5XvTnutH6HsouMaN2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWalletFromSeed(tt.seed)
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestAccountIDRoundTrip(t *testing.T) {
	id := make([]byte, 20)
	for i := range id {
		id[i] = byte(i * 7)
	}

	address := encodeAccountID(id)
	assert.True(t, address[0] == 'r')

	decoded, err := decodeAccountID(address)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecodeAccountIDInvalid(t *testing.T) {
	_, err := decodeAccountID("rInvalid0OIl")
	assert.Error(t, err)

	// Valid base58check but not an account id prefix.
	seed, err := encodeSeed(make([]byte, 16))
	require.NoError(t, err)
	_, err = decodeAccountID(seed)
	assert.Error(t, err)
}

func TestBase58CheckDetectsCorruption(t *testing.T) {
	encoded := encodeBase58Check(prefixAccountID, make([]byte, 20))

	// Flip the final character to break the checksum.
	last := encoded[len(encoded)-1]
	replacement := byte(alphabet[0])
	if last == replacement {
		replacement = alphabet[1]
	}
	corrupted := encoded[:len(encoded)-1] + string(replacement)

	_, err := decodeBase58Check(corrupted)
	assert.Error(t, err)
}
