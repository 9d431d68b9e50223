// Package hashkit defines the uniform streaming contract implemented by
// every message-digest and CRC algorithm in this module, plus the algorithm
// registry and tagged-handle boundary layer built on top of it.
package hashkit

import "hash"

// Hasher is the common lifecycle every algorithm in this module implements:
// created -> initialised -> absorbing* -> finalised -> digest-readable.
//
// It embeds hash.Hash so any Hasher interoperates with stdlib-shaped code
// (io.Writer chains, hash.Hash32/Hash64 adapters, etc.), and adds the
// explicit init/finalize/digest/size vocabulary this library's algorithms
// are specified in terms of.
type Hasher interface {
	hash.Hash

	// Init resets state to the algorithm's defined initial values and clears
	// the length counter and buffer fill index. Equivalent to Reset.
	Init()

	// Finalize completes padding and output computation. Calling Finalize
	// without an intervening Init before further Update calls leaves the
	// hasher in an unspecified but memory-safe state.
	Finalize()

	// Digest copies up to min(len(out), HashSizeBits()/8) digest bytes into
	// out, most-significant byte first (the CRC variants with output
	// reflection instead bit-reflect each big-endian byte), and returns the
	// count copied.
	// Meaningful only after Finalize; earlier calls return unspecified bytes.
	Digest(out []byte) int

	// HashSizeBits is the fixed output width of this algorithm, in bits.
	HashSizeBits() int
}
