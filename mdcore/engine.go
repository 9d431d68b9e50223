// Package mdcore implements the generic Merkle-Damgard block-hashing driver
// shared by MD5, SHA-1, SHA-2/32 (SHA-224/256) and SHA-2/64 (SHA-384/512):
// chunk accumulation into a fixed-size block buffer, a length counter
// advanced as bytes are absorbed, and the finalisation sequence of padding,
// one or two last compressions, and digest serialisation.
//
// Replacing the source's virtual-dispatch base class, the driver is
// parameterised over the chaining-state type S and three algorithm-specific
// functions: Compress (one block into state), Pad (the finalisation
// sequence, since MD5's little-endian length suffix differs from SHA's
// big-endian one), and Serialize (state words into output bytes, with
// algorithm-specific endianness and truncation).
package mdcore

// Engine drives one Merkle-Damgard hash computation over chaining-state
// type S. New returns an Engine already initialised; Init resets it for reuse.
type Engine[S any] struct {
	state S
	init  S

	Block []byte // exported so Pad callbacks can inspect/extend it
	Fill  int

	BlockSize int

	LenLo, LenHi uint64 // bit-length counter; LenHi unused by 64-bit counters

	Compress   func(state *S, block []byte)
	Pad        func(e *Engine[S])
	Serialize  func(state S, out []byte)
	DigestSize int
}

// New constructs an Engine for a fixed chaining-state type, block size and
// set of algorithm-specific callbacks. The initial chaining state is
// supplied by the caller (the per-algorithm IV) and restored on every Init.
func New[S any](initState S, blockSize int, compress func(*S, []byte), pad func(*Engine[S]), serialize func(S, []byte), digestSize int) *Engine[S] {
	e := &Engine[S]{
		init:       initState,
		Block:      make([]byte, blockSize),
		BlockSize:  blockSize,
		Compress:   compress,
		Pad:        pad,
		Serialize:  serialize,
		DigestSize: digestSize,
	}
	e.Init()
	return e
}

// Init resets chaining state to its initial value and clears the length
// counter and buffer fill index, re-entering the "initialised" lifecycle
// state so a finalised Engine can be reused.
func (e *Engine[S]) Init() {
	e.state = e.init
	e.Fill = 0
	e.LenLo = 0
	e.LenHi = 0
	for i := range e.Block {
		e.Block[i] = 0
	}
}

// Reset is the hash.Hash-shaped alias for Init.
func (e *Engine[S]) Reset() { e.Init() }

// Write absorbs p into the block buffer, compressing whenever it fills.
// Accepts any length, including zero, and any chunking of a logical byte
// stream produces the same final digest (chunk-boundary invariance).
func (e *Engine[S]) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		free := e.BlockSize - e.Fill
		n := len(p)
		if n > free {
			n = free
		}
		copy(e.Block[e.Fill:], p[:n])
		e.Fill += n
		p = p[n:]
		e.advanceLength(n)

		if e.Fill == e.BlockSize {
			e.Compress(&e.state, e.Block)
			e.Fill = 0
		}
	}
	return total, nil
}

// advanceLength adds 8*nBytes to the bit-length counter, carrying from the
// low word into the high word (used only by the 128-bit SHA-2/64 counter;
// LenHi stays zero for the 64-bit-counter algorithms).
func (e *Engine[S]) advanceLength(nBytes int) {
	bits := uint64(nBytes) * 8
	before := e.LenLo
	e.LenLo += bits
	if e.LenLo < before {
		e.LenHi++
	}
}

// Finalize runs the algorithm-specific padding/length-suffix sequence
// (which may force one or two additional compressions), serialises the
// resulting chaining state into out, then zeroes the block buffer and
// chaining state.
func (e *Engine[S]) Finalize(out []byte) {
	e.Pad(e)
	e.Serialize(e.state, out)

	for i := range e.Block {
		e.Block[i] = 0
	}
	var zero S
	e.state = zero
}

// State exposes the current chaining state, for Pad callbacks that need to
// run one more Compress before Serialize. The Pad callbacks in this module
// go through Write instead and do not call it.
func (e *Engine[S]) State() *S { return &e.state }

// Clone returns a deep copy of e, including its own Block buffer, so that
// calling Finalize on the clone (to peek at a digest without disturbing an
// absorbing hasher, as hash.Hash.Sum requires) never mutates e.
func (e *Engine[S]) Clone() *Engine[S] {
	clone := *e
	clone.Block = make([]byte, len(e.Block))
	copy(clone.Block, e.Block)
	return &clone
}
