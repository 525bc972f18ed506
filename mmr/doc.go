// Package mmr implements a Merkle Mountain Range: an append only
// cryptographic accumulator in which a compact proof, together with the
// accumulator's bagged root, commits a leaf value to a specific position.
//
// An MMR is a forest of perfect binary trees of strictly decreasing height,
// laid out left to right. Nodes are numbered from 1 in the post order
// traversal induced by append order, so the storage order and the traversal
// order are the same thing and the whole structure never needs to be
// materialized. Heights count from 1 at the leaves.
//
// The canonical example, sized 23 with 13 leaves, positions counted from 1:
//
//	4            15
//	           /    \
//	          /      \
//	         /        \
//	3       7          14             22
//	      /   \       /   \          /   \
//	2    3     6    10     13      18      21
//	    / \  /  \   / \   /  \    /  \    /  \
//	1  1   2 4   5 8   9 11   12 16   17 19   20  23
//
// Every navigation primitive - height, sibling, parent, peak enumeration -
// is pure binary arithmetic on the position. The left most peak of any MMR
// has an all ones binary position, and jumping left by the size of the
// preceding perfect tree preserves height; iterating that jump until the
// position is all ones recovers the height of an arbitrary position. All of
// the package rests on that one property.
//
// Each stored digest commits to its own position: leaves are H(pos || data),
// interior nodes are H(pos || left || right), and the root bags the peaks
// left to right under the total node count, H(size || peak1 || peak2 ...).
// Integers are serialized as decimal ASCII, see HashWriteUint64. The hash
// itself is injected; any fixed width collision resistant hash.Hash works,
// provided prover and verifier agree.
//
// The engine owns its node store exclusively and is strictly single writer.
// Proofs carry copies of every digest they reference and verify with no
// access to the store at all.
package mmr
