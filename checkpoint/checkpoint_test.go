package checkpoint

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"

	"github.com/cairnlog/cairn/codec"
	"github.com/cairnlog/cairn/mmr"
)

func newTestLog(t *testing.T, leaves int) *mmr.MMR {
	t.Helper()
	m, auth, err := mmr.New(mmr.NewNodeStore(), sha256.New())
	require.NoError(t, err)
	for i := 0; i < leaves; i++ {
		require.NoError(t, m.AppendLeaves(auth, []byte{byte(i)}))
	}
	return m
}

func newSignerPair(t *testing.T) (cose.Signer, cose.Verifier) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	coseSigner, err := cose.NewSigner(cose.AlgorithmES256, key)
	require.NoError(t, err)
	verifier, err := cose.NewVerifier(cose.AlgorithmES256, &key.PublicKey)
	require.NoError(t, err)
	return coseSigner, verifier
}

func TestSignAndVerifyCheckpoint(t *testing.T) {
	m := newTestLog(t, 13)
	coseSigner, verifier := newSignerPair(t)

	cborCodec, err := codec.NewDeterministic()
	require.NoError(t, err)

	logID := uuid.New()
	state := StateFromMMR(m, logID, 1700000000000)

	signed, err := NewSigner("log.example", cborCodec).Sign1(coseSigner, state)
	require.NoError(t, err)

	msg, unverified, err := DecodeSigned(cborCodec, signed)
	require.NoError(t, err)

	// the published payload has the root detached
	assert.Nil(t, unverified.Root)
	assert.Equal(t, logID[:], unverified.LogID)
	assert.Equal(t, m.Size(), unverified.MMRSize)

	// re-attach the root recomputed from the log at the committed size
	unverified.Root = m.Root()
	require.NoError(t, VerifySignedState(cborCodec, verifier, msg, unverified))
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	m := newTestLog(t, 13)
	coseSigner, verifier := newSignerPair(t)

	cborCodec, err := codec.NewDeterministic()
	require.NoError(t, err)

	state := StateFromMMR(m, uuid.New(), 1700000000000)
	signed, err := NewSigner("log.example", cborCodec).Sign1(coseSigner, state)
	require.NoError(t, err)

	msg, unverified, err := DecodeSigned(cborCodec, signed)
	require.NoError(t, err)

	// a root from a diverged log must not verify
	other := newTestLog(t, 14)
	unverified.Root = other.Root()
	assert.Error(t, VerifySignedState(cborCodec, verifier, msg, unverified))

	// nor a tampered size with the right root
	msg2, unverified2, err := DecodeSigned(cborCodec, signed)
	require.NoError(t, err)
	unverified2.Root = m.Root()
	unverified2.MMRSize++
	assert.Error(t, VerifySignedState(cborCodec, verifier, msg2, unverified2))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m := newTestLog(t, 5)
	coseSigner, _ := newSignerPair(t)
	_, strangerVerifier := newSignerPair(t)

	cborCodec, err := codec.NewDeterministic()
	require.NoError(t, err)

	state := StateFromMMR(m, uuid.New(), 1700000000000)
	signed, err := NewSigner("log.example", cborCodec).Sign1(coseSigner, state)
	require.NoError(t, err)

	msg, unverified, err := DecodeSigned(cborCodec, signed)
	require.NoError(t, err)
	unverified.Root = m.Root()
	assert.Error(t, VerifySignedState(cborCodec, strangerVerifier, msg, unverified))
}
