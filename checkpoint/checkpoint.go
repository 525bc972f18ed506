// Package checkpoint produces and verifies signed commitments to the head
// state of an accumulator. A checkpoint binds {log identity, mmr size,
// bagged root, timestamp} under a COSE Sign1 signature so that a log
// operator can publish its head and relying parties can hold it to it.
//
// The root is detached from the published payload: after signing, the
// payload is re-encoded with the root zeroed. A verifier must recompute the
// root from a log of the committed size and re-attach it before the
// signature will verify, so a checkpoint can never be verified against
// anything but the log it commits to.
package checkpoint

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/veraison/go-cose"

	"github.com/cairnlog/cairn/codec"
	"github.com/cairnlog/cairn/mmr"
)

// ContentType identifies checkpoint payloads in the COSE protected header.
const ContentType = "application/cairn-checkpoint+cbor"

// headerLabelIssuer carries the log operator's identity.
const headerLabelIssuer = "issuer"

// State is the signed payload. Integer keys, deterministically encoded.
type State struct {
	// LogID is the uuid identifying the log instance.
	LogID []byte `cbor:"1,keyasint"`
	// MMRSize fixes the accumulator state the checkpoint commits to. Every
	// later state of the same log can still reproduce this root.
	MMRSize uint64 `cbor:"2,keyasint"`
	// Root is the bagged root at MMRSize. Detached in the published form.
	Root []byte `cbor:"3,keyasint,omitempty"`
	// Timestamp is unix milliseconds at signing time, so the same root can
	// be re-signed.
	Timestamp int64 `cbor:"4,keyasint"`
}

// StateFromMMR captures the current state of m for logID.
func StateFromMMR(m *mmr.MMR, logID uuid.UUID, timestampMS int64) State {
	return State{
		LogID:     logID[:],
		MMRSize:   m.Size(),
		Root:      m.Root(),
		Timestamp: timestampMS,
	}
}

// Signer signs checkpoint states on behalf of an issuer.
type Signer struct {
	issuer    string
	cborCodec codec.CBORCodec
}

// NewSigner creates a Signer. The codec must be the deployment's
// deterministic codec, see codec.NewDeterministic.
func NewSigner(issuer string, cborCodec codec.CBORCodec) Signer {
	return Signer{issuer: issuer, cborCodec: cborCodec}
}

// Sign1 signs state and returns the encoded COSE Sign1 message with the
// root detached from the payload.
func (s Signer) Sign1(coseSigner cose.Signer, state State) ([]byte, error) {
	payload, err := s.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelContentType: ContentType,
				headerLabelIssuer:           s.issuer,
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, nil, coseSigner); err != nil {
		return nil, err
	}

	// detach the root so verifiers are forced to recover it from a log
	state.Root = nil
	if msg.Payload, err = s.cborCodec.MarshalCBOR(state); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// DecodeSigned decodes a signed checkpoint without verifying it. The
// returned state carries no root; the caller must recompute the root for
// State.MMRSize and pass the completed state to VerifySignedState.
func DecodeSigned(cborCodec codec.CBORCodec, data []byte) (*cose.Sign1Message, State, error) {
	signed := &cose.Sign1Message{}
	if err := signed.UnmarshalCBOR(data); err != nil {
		return nil, State{}, err
	}
	var unverified State
	if err := cborCodec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, State{}, err
	}
	return signed, unverified, nil
}

// VerifySignedState re-attaches the caller supplied state (including the
// recomputed root) to the signed message and verifies the signature. Any
// divergence between the signed state and the supplied one, root included,
// fails verification.
func VerifySignedState(
	cborCodec codec.CBORCodec, verifier cose.Verifier, signed *cose.Sign1Message, state State,
) error {
	payload, err := cborCodec.MarshalCBOR(state)
	if err != nil {
		return err
	}
	signed.Payload = payload
	return signed.Verify(nil, verifier)
}
