// Package hashing names the digest algorithms an accumulator deployment can
// be configured with. The engine and verifier take any hash.Hash; this
// package exists so configuration files and CLI flags can select one by
// name and both sides of a proof agree on it.
package hashing

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	// Blake2b256 is the default algorithm.
	Blake2b256 = "blake2b-256"
	// SHA3256 is the alternate deployment algorithm.
	SHA3256 = "sha3-256"
)

// New returns a constructor for the named algorithm. Constructors rather
// than instances: the verifier side frequently needs a fresh hasher per
// proof, and hash.Hash values are stateful.
func New(name string) (func() hash.Hash, error) {
	switch name {
	case Blake2b256:
		return func() hash.Hash {
			hasher, err := blake2b.New256(nil)
			if err != nil {
				// New256 only fails for oversized keys; we pass none
				panic(err)
			}
			return hasher
		}, nil
	case SHA3256:
		return sha3.New256, nil
	default:
		return nil, fmt.Errorf("hashing: unknown algorithm %q", name)
	}
}

// DigestSize returns the digest width in bytes for the named algorithm.
func DigestSize(name string) (int, error) {
	switch name {
	case Blake2b256, SHA3256:
		return 32, nil
	default:
		return 0, fmt.Errorf("hashing: unknown algorithm %q", name)
	}
}
