package mdcore

// Digest adapts an Engine into the hashkit.Hasher contract: it separates the
// "still absorbing" state from the "finalised, digest-readable" state, and
// makes Sum (which hash.Hash specifies as non-mutating) safe to call before
// Finalize by cloning the engine rather than disturbing it.
type Digest[S any] struct {
	Engine *Engine[S]

	size      int
	final     []byte
	finalized bool
}

// NewDigest wraps engine as a Digest producing digests of size bytes
// (which may be less than the engine's native DigestSize, as with
// SHA-224 truncating SHA-2/32's eight-word state to seven words).
func NewDigest[S any](engine *Engine[S], size int) *Digest[S] {
	return &Digest[S]{Engine: engine, size: size, final: make([]byte, size)}
}

// Init resets the underlying engine and clears any previously finalised
// digest, re-entering the "initialised" lifecycle state.
func (d *Digest[S]) Init() {
	d.Engine.Init()
	for i := range d.final {
		d.final[i] = 0
	}
	d.finalized = false
}

// Reset is the hash.Hash-shaped alias for Init.
func (d *Digest[S]) Reset() { d.Init() }

// Write absorbs p; undefined (but memory-safe) if called after Finalize
// without an intervening Init.
func (d *Digest[S]) Write(p []byte) (int, error) { return d.Engine.Write(p) }

// Size is the digest output size in bytes.
func (d *Digest[S]) Size() int { return d.size }

// BlockSize is the algorithm's block size in bytes.
func (d *Digest[S]) BlockSize() int { return d.Engine.BlockSize }

// HashSizeBits is the digest output size in bits.
func (d *Digest[S]) HashSizeBits() int { return d.size * 8 }

// Finalize completes padding and computes the digest, caching it for
// subsequent Sum/Digest calls.
func (d *Digest[S]) Finalize() {
	d.Engine.Finalize(d.final)
	d.finalized = true
}

// Sum appends the digest to in. If Finalize has not yet been called, it
// computes the digest on a clone of the engine so the receiver's absorbing
// state is left untouched, matching hash.Hash.Sum's contract.
func (d *Digest[S]) Sum(in []byte) []byte {
	if d.finalized {
		return append(in, d.final...)
	}
	clone := d.Engine.Clone()
	out := make([]byte, d.size)
	clone.Finalize(out)
	return append(in, out...)
}

// Digest copies up to min(len(out), Size()) bytes of the finalised digest
// into out, most-significant byte first, and returns the count copied.
// Meaningful only after Finalize.
func (d *Digest[S]) Digest(out []byte) int {
	return copy(out, d.final)
}
