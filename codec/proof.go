package codec

import (
	"github.com/cairnlog/cairn/mmr"
)

// proofEnvelope is the wire form of an inclusion proof. Integer keys keep
// the envelope compact and stable across field renames.
type proofEnvelope struct {
	Position   uint64   `cbor:"1,keyasint"`
	Path       [][]byte `cbor:"2,keyasint,omitempty"`
	LeftPeaks  [][]byte `cbor:"3,keyasint,omitempty"`
	RightPeaks [][]byte `cbor:"4,keyasint,omitempty"`
	Root       []byte   `cbor:"5,keyasint"`
	Size       uint64   `cbor:"6,keyasint"`
}

// EncodeProof serializes proof to its CBOR envelope.
func (c CBORCodec) EncodeProof(proof *mmr.Proof) ([]byte, error) {
	return c.MarshalCBOR(proofEnvelope{
		Position:   proof.Position,
		Path:       proof.Path,
		LeftPeaks:  proof.LeftPeaks,
		RightPeaks: proof.RightPeaks,
		Root:       proof.Root,
		Size:       proof.Size,
	})
}

// DecodeProof deserializes a CBOR proof envelope. Shape validation is the
// verifier's job; decoding only guarantees well formed CBOR.
func (c CBORCodec) DecodeProof(data []byte) (*mmr.Proof, error) {
	var env proofEnvelope
	if err := c.UnmarshalInto(data, &env); err != nil {
		return nil, err
	}
	return &mmr.Proof{
		Position:   env.Position,
		Path:       env.Path,
		LeftPeaks:  env.LeftPeaks,
		RightPeaks: env.RightPeaks,
		Root:       env.Root,
		Size:       env.Size,
	}, nil
}
