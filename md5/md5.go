// Package md5 implements the MD5 message digest (RFC 1321) on top of the
// shared Merkle-Damgard driver in mdcore: a 64-byte block buffer, a 64-bit
// little-endian length counter, the four-round compression function, and
// little-endian digest serialisation.
package md5

import (
	"encoding/binary"

	"github.com/advark/libhash/bitops"
	"github.com/advark/libhash/mdcore"
)

// Size is the MD5 digest size in bytes.
const Size = 16

// BlockSize is the MD5 block size in bytes.
const BlockSize = 64

// state is the four 32-bit chaining words A, B, C, D.
type state struct {
	a, b, c, d uint32
}

var initState = state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476}

// k is the RFC-1321 round constant table, T[i] = floor(abs(sin(i+1)) * 2^32).
var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// s is the per-round rotation amount, four values repeated four times.
var s = [64]uint{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func gIndex(i int) int {
	switch {
	case i < 16:
		return i
	case i < 32:
		return (5*i + 1) % 16
	case i < 48:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

func roundFunc(i int, b, c, d uint32) uint32 {
	switch {
	case i < 16:
		return (b & c) | (^b & d)
	case i < 32:
		return (b & d) | (c & ^d)
	case i < 48:
		return b ^ c ^ d
	default:
		return c ^ (b | ^d)
	}
}

func compress(st *state, block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := st.a, st.b, st.c, st.d
	for i := 0; i < 64; i++ {
		f := roundFunc(i, b, c, d)
		g := gIndex(i)
		tmp := d
		d = c
		c = b
		b = b + bitops.Rotl32(a+f+k[i]+x[g], s[i])
		a = tmp
	}

	st.a += a
	st.b += b
	st.c += c
	st.d += d
}

// pad appends the 0x80 byte, zero padding to 56 mod 64 bytes, and the
// 64-bit little-endian length counter, forcing one or two final
// compressions through Engine.Write.
func pad(e *mdcore.Engine[state]) {
	lenLo := e.LenLo
	e.Write([]byte{0x80})
	for e.Fill != 56 {
		e.Write([]byte{0x00})
	}
	var lenBytes [8]byte
	binary.LittleEndian.PutUint32(lenBytes[0:4], uint32(lenLo))
	binary.LittleEndian.PutUint32(lenBytes[4:8], uint32(lenLo>>32))
	e.Write(lenBytes[:])
}

func serialize(st state, out []byte) {
	binary.LittleEndian.PutUint32(out[0:4], st.a)
	binary.LittleEndian.PutUint32(out[4:8], st.b)
	binary.LittleEndian.PutUint32(out[8:12], st.c)
	binary.LittleEndian.PutUint32(out[12:16], st.d)
}

// Digest is an MD5 hasher implementing hashkit.Hasher.
type Digest = mdcore.Digest[state]

// New returns a fresh, initialised MD5 Digest.
func New() *Digest {
	return mdcore.NewDigest(mdcore.New(initState, BlockSize, compress, pad, serialize, Size), Size)
}

// Sum128 runs MD5 over data in one call.
func Sum128(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	d.Finalize()
	var out [Size]byte
	d.Digest(out[:])
	return out
}
