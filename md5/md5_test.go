package md5_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advark/libhash/md5"
)

func hexSum(data []byte) string {
	d := md5.New()
	d.Write(data)
	d.Finalize()
	out := make([]byte, md5.Size)
	d.Digest(out)
	return hex.EncodeToString(out)
}

func TestKnownVectors(t *testing.T) {
	cases := map[string]string{
		"":                                                              "d41d8cd98f00b204e9800998ecf8427e",
		"a":                                                              "0cc175b9c0f1b6a831c399e269772661",
		"abc":                                                           "900150983cd24fb0d6963f7d28e17f72",
		"message digest":                                                "f96b697d7cb7938d525a2f31aaf161d0",
		"abcdefghijklmnopqrstuvwxyz":                                     "c3fcd3d76192e4007dfb496cca67e13b",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789": "d174ab98d277d9f5a5611c2c9f419d9f",
	}
	for in, want := range cases {
		require.Equal(t, want, hexSum([]byte(in)), "MD5(%q)", in)
	}
}

func TestChunkInvariance(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	whole := md5.New()
	whole.Write(data)
	whole.Finalize()
	wholeOut := make([]byte, md5.Size)
	whole.Digest(wholeOut)

	chunked := md5.New()
	for _, n := range []int{1, 5, 0, 10, 100} {
		if n > len(data) {
			n = len(data)
		}
		chunked.Write(data[:n])
		data = data[n:]
	}
	chunked.Write(data)
	chunked.Finalize()
	chunkedOut := make([]byte, md5.Size)
	chunked.Digest(chunkedOut)

	require.Equal(t, wholeOut, chunkedOut)
}

func TestResetReproducesFreshDigest(t *testing.T) {
	d := md5.New()
	d.Write([]byte("garbage input"))
	d.Init()
	d.Write([]byte("abc"))
	d.Finalize()
	out := make([]byte, md5.Size)
	d.Digest(out)

	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(out))
}

func TestDigestTruncation(t *testing.T) {
	d := md5.New()
	d.Write([]byte("abc"))
	d.Finalize()

	short := make([]byte, 4)
	n := d.Digest(short)
	require.Equal(t, 4, n)

	full := make([]byte, md5.Size)
	d.Digest(full)
	require.Equal(t, full[:4], short)
}

func TestHashSizeBits(t *testing.T) {
	require.Equal(t, 128, md5.New().HashSizeBits())
}

func TestSumBeforeFinalizeDoesNotMutate(t *testing.T) {
	d := md5.New()
	d.Write([]byte("abc"))
	_ = d.Sum(nil) // hash.Hash.Sum must not disturb absorbing state
	d.Write([]byte("def"))
	d.Finalize()
	out := make([]byte, md5.Size)
	d.Digest(out)

	want := md5.Sum128([]byte("abcdef"))
	require.Equal(t, want[:], out)
}
