// Package sha512 implements the SHA-2/64 family (SHA-384 and SHA-512,
// FIPS 180-4) on top of the shared Merkle-Damgard driver in mdcore: a
// 128-byte block, a 128-bit length counter, and the 80-round compression
// function built from the 64-bit SIGMA/sigma functions. SHA-384 and
// SHA-512 share everything but their initial chaining state and output
// truncation.
package sha512

import (
	"encoding/binary"

	"github.com/advark/libhash/bitops"
	"github.com/advark/libhash/mdcore"
)

// Size512 is the SHA-512 digest size in bytes.
const Size512 = 64

// Size384 is the SHA-384 digest size in bytes.
const Size384 = 48

// BlockSize is the block size shared by SHA-384 and SHA-512, in bytes.
const BlockSize = 128

type state [8]uint64

var init512 = state{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var init384 = state{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var k = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func bigSigma0(x uint64) uint64 {
	return bitops.Rotr64(x, 28) ^ bitops.Rotr64(x, 34) ^ bitops.Rotr64(x, 39)
}
func bigSigma1(x uint64) uint64 {
	return bitops.Rotr64(x, 14) ^ bitops.Rotr64(x, 18) ^ bitops.Rotr64(x, 41)
}
func smallSigma0(x uint64) uint64 {
	return bitops.Rotr64(x, 1) ^ bitops.Rotr64(x, 8) ^ (x >> 7)
}
func smallSigma1(x uint64) uint64 {
	return bitops.Rotr64(x, 19) ^ bitops.Rotr64(x, 61) ^ (x >> 6)
}

func compress(st *state, block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[i*8:])
	}
	for t := 16; t < 80; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := st[0], st[1], st[2], st[3], st[4], st[5], st[6], st[7]

	for t := 0; t < 80; t++ {
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

// pad appends 0x80, zero padding to 112 mod 128 bytes, and the 128-bit
// big-endian bit length, forcing one or two final compressions.
func pad(e *mdcore.Engine[state]) {
	lenLo, lenHi := e.LenLo, e.LenHi
	e.Write([]byte{0x80})
	for e.Fill != 112 {
		e.Write([]byte{0x00})
	}
	var lenBytes [16]byte
	binary.BigEndian.PutUint64(lenBytes[0:8], lenHi)
	binary.BigEndian.PutUint64(lenBytes[8:16], lenLo)
	e.Write(lenBytes[:])
}

func serialize(st state, out []byte) {
	// out may be 48 (SHA-384) or 64 (SHA-512) bytes; only the words that fit
	// are emitted, which is exactly the truncation FIPS 180-4 specifies.
	for i := 0; i*8 < len(out); i++ {
		binary.BigEndian.PutUint64(out[i*8:], st[i])
	}
}

// Digest is a SHA-2/64 hasher (SHA-384 or SHA-512) implementing
// hashkit.Hasher.
type Digest = mdcore.Digest[state]

// New512 returns a fresh, initialised SHA-512 Digest.
func New512() *Digest {
	return mdcore.NewDigest(mdcore.New(init512, BlockSize, compress, pad, serialize, Size512), Size512)
}

// New384 returns a fresh, initialised SHA-384 Digest.
func New384() *Digest {
	return mdcore.NewDigest(mdcore.New(init384, BlockSize, compress, pad, serialize, Size384), Size384)
}

// Sum512 runs SHA-512 over data in one call.
func Sum512(data []byte) [Size512]byte {
	d := New512()
	d.Write(data)
	d.Finalize()
	var out [Size512]byte
	d.Digest(out[:])
	return out
}

// Sum384 runs SHA-384 over data in one call.
func Sum384(data []byte) [Size384]byte {
	d := New384()
	d.Write(data)
	d.Finalize()
	var out [Size384]byte
	d.Digest(out[:])
	return out
}
