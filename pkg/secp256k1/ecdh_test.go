package secp256k1

import (
	"math/big"
	"testing"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedSecretSymmetry(t *testing.T) {
	alice := mustSecretKey(t, big.NewInt(0xA11CE))
	bob := mustSecretKey(t, big.NewInt(0xB0B))

	alicePub, err := alice.PubKey()
	require.NoError(t, err)
	bobPub, err := bob.PubKey()
	require.NoError(t, err)

	fromAlice, err := SharedSecret(alice, bobPub)
	require.NoError(t, err)
	fromBob, err := SharedSecret(bob, alicePub)
	require.NoError(t, err)

	assert.Equal(t, fromAlice, fromBob, "both sides must derive the same secret")
	assert.Len(t, fromAlice, 32)

	// A third party with its own key derives something else.
	eve := mustSecretKey(t, big.NewInt(0xE4E))
	fromEve, err := SharedSecret(eve, bobPub)
	require.NoError(t, err)
	assert.NotEqual(t, fromAlice, fromEve)
}

// TestSharedSecretMatchesReference checks the derived secret against the
// decred implementation.
func TestSharedSecretMatchesReference(t *testing.T) {
	local := mustSecretKey(t, big.NewInt(0x1CE))
	remote := mustSecretKey(t, big.NewInt(0x2DF))
	remotePub, err := remote.PubKey()
	require.NoError(t, err)

	got, err := SharedSecret(local, remotePub)
	require.NoError(t, err)

	refLocal := decred.PrivKeyFromBytes(local.Serialize())
	refRemotePub, err := decred.ParsePubKey(remotePub.SerializeCompressed())
	require.NoError(t, err)
	want := decred.GenerateSharedSecret(refLocal, refRemotePub)

	assert.Equal(t, want, got, "shared secret disagrees with reference")
}

func TestSharedSecretRejects(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xA11CE))
	pub, err := sk.PubKey()
	require.NoError(t, err)

	_, err = SharedSecret(secretKeyFromScalarUnchecked(new(big.Int)), pub)
	assert.ErrorIs(t, err, ErrInvalidSecretKey)

	_, err = SharedSecret(sk, NewPublicKey(IdentityPoint()))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = SharedSecret(sk, &PublicKey{})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
