package crc

import "github.com/advark/libhash/bitops"

// Engine is the streaming state of one CRC computation: a register plus the
// Params it was constructed from. It implements hashkit.Hasher (via the
// methods below) and the stdlib hash.Hash interface those embed.
type Engine struct {
	params *Params
	reg    uint64
	mask   uint64
}

// New returns a fresh Engine for the given parameter block, already
// initialised; Init may be called again to reset it.
func New(p *Params) *Engine {
	e := &Engine{params: p, mask: widthMask(p.Width)}
	e.Init()
	return e
}

// Init resets the register to the variant's initial value.
func (e *Engine) Init() {
	e.reg = e.params.Init & e.mask
}

// Reset is the hash.Hash-shaped alias for Init.
func (e *Engine) Reset() { e.Init() }

// Write absorbs p into the running CRC register. Implements io.Writer via
// hash.Hash; never returns an error.
func (e *Engine) Write(p []byte) (int, error) {
	table := e.params.lookup()
	width := e.params.Width
	reg := e.reg
	for _, b := range p {
		if e.params.ReflectIn {
			b = bitops.Reflect8(b)
		}
		reg = table[(byte(reg>>(width-8))^b)&0xFF] ^ (reg << 8)
		reg &= e.mask
	}
	e.reg = reg
	return len(p), nil
}

// Update is the explicit-contract alias for Write.
func (e *Engine) Update(p []byte) { e.Write(p) }

// Finalize has no effect beyond what Sum/Digest already compute; the CRC
// engine has no block padding or trailing length field. It exists so Engine
// satisfies hashkit.Hasher uniformly with the Merkle-Damgard algorithms.
func (e *Engine) Finalize() {}

// value returns the final register value: XorOut applied, and output
// reflection applied to the big-endian serialisation if the variant calls
// for it (equivalent, for these parameter sets, to reflecting the whole
// register and emitting little-endian, since reflection commutes with
// byte-order inversion).
func (e *Engine) value() []byte {
	s := (e.reg ^ e.params.XorOut) & e.mask
	n := int(e.params.Width / 8)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := uint(n-1-i) * 8
		out[i] = byte(s >> shift)
	}
	if e.params.ReflectOut {
		for i := range out {
			out[i] = bitops.Reflect8(out[i])
		}
	}
	return out
}

// Sum appends the current CRC to b, serialised big-endian; for ReflectOut
// variants each of those bytes is bit-reflected, so the CRC value appears
// in little-endian byte order.
func (e *Engine) Sum(b []byte) []byte { return append(b, e.value()...) }

// Digest copies up to min(len(out), Size()) digest bytes into out and
// returns the count copied, truncating to a prefix of the bytes Sum
// appends.
func (e *Engine) Digest(out []byte) int {
	v := e.value()
	n := copy(out, v)
	return n
}

// Size is the CRC width in bytes.
func (e *Engine) Size() int { return int(e.params.Width / 8) }

// BlockSize is 1: the CRC engine consumes one byte at a time.
func (e *Engine) BlockSize() int { return 1 }

// HashSizeBits is the CRC width in bits.
func (e *Engine) HashSizeBits() int { return int(e.params.Width) }

// Checksum is a convenience one-shot: build a fresh Engine for p, absorb
// data, and return the digest bytes in the same order as Sum.
func Checksum(p *Params, data []byte) []byte {
	e := New(p)
	e.Write(data)
	return e.Sum(nil)
}
