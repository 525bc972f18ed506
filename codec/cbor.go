// Package codec provides the deterministic CBOR encoding used for proof
// envelopes and checkpoint payloads. Determinism matters because checkpoint
// payloads are signed: both sides must reproduce identical bytes.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBORCodec pairs an encoding and decoding mode.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBORCodec creates a codec from the provided options.
func NewCBORCodec(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (CBORCodec, error) {
	var err error
	c := CBORCodec{}
	if c.enc, err = encOpts.EncMode(); err != nil {
		return CBORCodec{}, err
	}
	if c.dec, err = decOpts.DecMode(); err != nil {
		return CBORCodec{}, err
	}
	return c, nil
}

// NewDeterministic returns the codec every signer and verifier in a
// deployment must share.
func NewDeterministic() (CBORCodec, error) {
	return NewCBORCodec(NewDeterministicEncOpts(), NewDeterministicDecOpts())
}

// NewDeterministicEncOpts returns the core deterministic encoding options.
func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts returns decode options matching the
// deterministic encoding. Unsigned integers decode to uint64.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}
}

// MarshalCBOR encodes value with the codec's encoding mode.
func (c CBORCodec) MarshalCBOR(value any) ([]byte, error) {
	return c.enc.Marshal(value)
}

// UnmarshalInto decodes data into value with the codec's decoding mode.
func (c CBORCodec) UnmarshalInto(data []byte, value any) error {
	return c.dec.Unmarshal(data, value)
}
