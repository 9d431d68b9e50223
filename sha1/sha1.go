// Package sha1 implements SHA-1 (FIPS 180-2) on top of the shared
// Merkle-Damgard driver in mdcore: a 64-byte block, an 80-word expanded
// message schedule, four 20-step rounds, and big-endian digest output.
package sha1

import (
	"encoding/binary"

	"github.com/advark/libhash/bitops"
	"github.com/advark/libhash/mdcore"
)

// Size is the SHA-1 digest size in bytes.
const Size = 20

// BlockSize is the SHA-1 block size in bytes.
const BlockSize = 64

type state [5]uint32

var initState = state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

const (
	k0 uint32 = 0x5A827999
	k1 uint32 = 0x6ED9EBA1
	k2 uint32 = 0x8F1BBCDC
	k3 uint32 = 0xCA62C1D6
)

func compress(st *state, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for t := 16; t < 80; t++ {
		w[t] = bitops.Rotl32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := st[0], st[1], st[2], st[3], st[4]

	for t := 0; t < 20; t++ {
		f := (b & c) ^ (^b & d)
		tmp := bitops.Rotl32(a, 5) + f + e + k0 + w[t]
		e, d, c, b, a = d, c, bitops.Rotl32(b, 30), a, tmp
	}
	for t := 20; t < 40; t++ {
		f := b ^ c ^ d
		tmp := bitops.Rotl32(a, 5) + f + e + k1 + w[t]
		e, d, c, b, a = d, c, bitops.Rotl32(b, 30), a, tmp
	}
	for t := 40; t < 60; t++ {
		f := (b & c) ^ (b & d) ^ (c & d)
		tmp := bitops.Rotl32(a, 5) + f + e + k2 + w[t]
		e, d, c, b, a = d, c, bitops.Rotl32(b, 30), a, tmp
	}
	for t := 60; t < 80; t++ {
		f := b ^ c ^ d
		tmp := bitops.Rotl32(a, 5) + f + e + k3 + w[t]
		e, d, c, b, a = d, c, bitops.Rotl32(b, 30), a, tmp
	}

	st[0] += a
	st[1] += b
	st[2] += c
	st[3] += d
	st[4] += e
}

// pad appends 0x80, zero padding to 56 mod 64 bytes, and the 64-bit
// big-endian bit length, forcing one or two final compressions.
func pad(e *mdcore.Engine[state]) {
	lenBits := e.LenLo
	e.Write([]byte{0x80})
	for e.Fill != 56 {
		e.Write([]byte{0x00})
	}
	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], lenBits)
	e.Write(lenBytes[:])
}

func serialize(st state, out []byte) {
	for i, word := range st {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
}

// Digest is a SHA-1 hasher implementing hashkit.Hasher.
type Digest = mdcore.Digest[state]

// New returns a fresh, initialised SHA-1 Digest.
func New() *Digest {
	return mdcore.NewDigest(mdcore.New(initState, BlockSize, compress, pad, serialize, Size), Size)
}

// Sum160 runs SHA-1 over data in one call.
func Sum160(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	d.Finalize()
	var out [Size]byte
	d.Digest(out[:])
	return out
}
