// Package sha256 implements the SHA-2/32 family (SHA-224 and SHA-256,
// FIPS 180-4) on top of the shared Merkle-Damgard driver in mdcore: a
// 64-byte block, a 64-bit length counter, and the 64-round compression
// function built from the 32-bit SIGMA/sigma functions. SHA-224 and
// SHA-256 share everything but their initial chaining state and output
// truncation.
package sha256

import (
	"encoding/binary"

	"github.com/advark/libhash/bitops"
	"github.com/advark/libhash/mdcore"
)

// Size256 is the SHA-256 digest size in bytes.
const Size256 = 32

// Size224 is the SHA-224 digest size in bytes.
const Size224 = 28

// BlockSize is the block size shared by SHA-224 and SHA-256, in bytes.
const BlockSize = 64

type state [8]uint32

var init256 = state{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var init224 = state{
	0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
	0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func bigSigma0(x uint32) uint32 {
	return bitops.Rotr32(x, 2) ^ bitops.Rotr32(x, 13) ^ bitops.Rotr32(x, 22)
}
func bigSigma1(x uint32) uint32 {
	return bitops.Rotr32(x, 6) ^ bitops.Rotr32(x, 11) ^ bitops.Rotr32(x, 25)
}
func smallSigma0(x uint32) uint32 {
	return bitops.Rotr32(x, 7) ^ bitops.Rotr32(x, 18) ^ (x >> 3)
}
func smallSigma1(x uint32) uint32 {
	return bitops.Rotr32(x, 17) ^ bitops.Rotr32(x, 19) ^ (x >> 10)
}

func compress(st *state, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := st[0], st[1], st[2], st[3], st[4], st[5], st[6], st[7]

	for t := 0; t < 64; t++ {
		ch := (e & f) ^ (^e & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t1 := h + bigSigma1(e) + ch + k[t] + w[t]
		t2 := bigSigma0(a) + maj
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	st[0] += a
	st[1] += b
	st[2] += c
	st[3] += d
	st[4] += e
	st[5] += f
	st[6] += g
	st[7] += h
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
	// out may be 28 (SHA-224) or 32 (SHA-256) bytes; only the words that fit
	// are emitted, which is exactly the truncation FIPS 180-4 specifies.
	for i := 0; i*4 < len(out); i++ {
		binary.BigEndian.PutUint32(out[i*4:], st[i])
	}
}

// Digest is a SHA-2/32 hasher (SHA-224 or SHA-256) implementing
// hashkit.Hasher.
type Digest = mdcore.Digest[state]

// New256 returns a fresh, initialised SHA-256 Digest.
func New256() *Digest {
	return mdcore.NewDigest(mdcore.New(init256, BlockSize, compress, pad, serialize, Size256), Size256)
}

// New224 returns a fresh, initialised SHA-224 Digest.
func New224() *Digest {
	return mdcore.NewDigest(mdcore.New(init224, BlockSize, compress, pad, serialize, Size224), Size224)
}

// Sum256 runs SHA-256 over data in one call.
func Sum256(data []byte) [Size256]byte {
	d := New256()
	d.Write(data)
	d.Finalize()
	var out [Size256]byte
	d.Digest(out[:])
	return out
}

// Sum224 runs SHA-224 over data in one call.
func Sum224(data []byte) [Size224]byte {
	d := New224()
	d.Write(data)
	d.Finalize()
	var out [Size224]byte
	d.Digest(out[:])
	return out
}
