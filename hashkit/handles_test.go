package hashkit_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advark/libhash/hashkit"
)

func TestHandleLifecycle(t *testing.T) {
	h, ok := hashkit.Create(hashkit.SHA1)
	require.True(t, ok)

	require.True(t, hashkit.Init(h, hashkit.SHA1))
	require.True(t, hashkit.Update(h, hashkit.SHA1, []byte("abc")))
	require.True(t, hashkit.Finalize(h, hashkit.SHA1))

	out := make([]byte, 20)
	n, ok := hashkit.GetValue(h, hashkit.SHA1, out)
	require.True(t, ok)
	require.Equal(t, 20, n)
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(out))

	require.True(t, hashkit.Destroy(h, hashkit.SHA1))
}

func TestHandleRejectsWrongAlgorithmTag(t *testing.T) {
	h, ok := hashkit.Create(hashkit.MD5)
	require.True(t, ok)

	require.False(t, hashkit.Init(h, hashkit.SHA256))
	require.False(t, hashkit.Update(h, hashkit.SHA256, []byte("x")))
	require.False(t, hashkit.Finalize(h, hashkit.SHA256))
	_, ok = hashkit.GetValue(h, hashkit.SHA256, make([]byte, 4))
	require.False(t, ok)

	// The correctly-tagged calls still work; a mismatched tag never
	// mutates the underlying hasher.
	require.True(t, hashkit.Init(h, hashkit.MD5))
	require.True(t, hashkit.Update(h, hashkit.MD5, []byte("abc")))
	require.True(t, hashkit.Finalize(h, hashkit.MD5))
	out := make([]byte, 16)
	n, ok := hashkit.GetValue(h, hashkit.MD5, out)
	require.True(t, ok)
	require.Equal(t, 16, n)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(out))
}

func TestHandleUnknownIsInvalid(t *testing.T) {
	require.False(t, hashkit.Init(hashkit.Handle(999999), hashkit.MD5))
	_, ok := hashkit.GetValue(hashkit.Handle(999999), hashkit.MD5, make([]byte, 4))
	require.False(t, ok)
}

func TestHandleDestroyInvalidatesFurtherUse(t *testing.T) {
	h, ok := hashkit.Create(hashkit.CRC32)
	require.True(t, ok)
	require.True(t, hashkit.Destroy(h, hashkit.CRC32))
	require.False(t, hashkit.Init(h, hashkit.CRC32))
	require.False(t, hashkit.Destroy(h, hashkit.CRC32))
}

func TestCreateUnknownAlgorithmFails(t *testing.T) {
	_, ok := hashkit.Create(hashkit.Name("bogus"))
	require.False(t, ok)
}
