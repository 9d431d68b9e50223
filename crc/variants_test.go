package crc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advark/libhash/crc"
)

const checkString = "123456789"

func TestCheckValues(t *testing.T) {
	cases := []struct {
		name   string
		params *crc.Params
		want   uint64
	}{
		{"CRC-16/CCITT-FALSE", crc.CCITTFalse, 0x29B1},
		{"CRC-16/XMODEM", crc.XModem, 0x31C3},
		{"CRC-16/X-25", crc.X25, 0x906E},
		{"CRC-32", crc.IEEE, 0xCBF43926},
		{"CRC-32/BZIP2", crc.BZIP2, 0xFC891918},
		{"CRC-32C", crc.Castagnoli, 0xE3069283},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := crc.New(tc.params)
			e.Write([]byte(checkString))
			var got uint64
			if tc.params.Width == 16 {
				got = uint64(crc.Sum16(tc.params, []byte(checkString)))
			} else {
				got = uint64(crc.Sum32(tc.params, []byte(checkString)))
			}
			require.Equal(t, tc.want, got, "%s check value", tc.name)
		})
	}
}

func TestFactoryConstructorsMatchDirectParams(t *testing.T) {
	viaFactory := crc.NewCCITTFalse()
	viaFactory.Write([]byte(checkString))

	viaParams := crc.New(crc.CCITTFalse)
	viaParams.Write([]byte(checkString))

	require.Equal(t, viaParams.Sum(nil), viaFactory.Sum(nil))
}

func TestChunkInvariance(t *testing.T) {
	data := []byte(checkString + checkString)
	whole := crc.New(crc.IEEE)
	whole.Write(data)

	chunked := crc.New(crc.IEEE)
	chunked.Write(data[:3])
	chunked.Write(data[3:7])
	chunked.Write(data[7:])

	require.Equal(t, whole.Sum(nil), chunked.Sum(nil))
}

func TestResetReproducesFreshDigest(t *testing.T) {
	e := crc.New(crc.X25)
	e.Write([]byte("garbage"))
	e.Init()
	e.Write([]byte(checkString))

	fresh := crc.New(crc.X25)
	fresh.Write([]byte(checkString))

	require.Equal(t, fresh.Sum(nil), e.Sum(nil))
}

func TestDigestTruncation(t *testing.T) {
	e := crc.New(crc.IEEE)
	e.Write([]byte(checkString))
	full := make([]byte, 4)
	e.Digest(full)

	short := make([]byte, 2)
	n := e.Digest(short)
	require.Equal(t, 2, n)
	require.Equal(t, full[:2], short)
}

func TestSixteenBitVariantsShareTableShape(t *testing.T) {
	// CRC-16/CCITT-FALSE, XMODEM and X-25 all use polynomial 0x1021, so
	// their tables are identical (buildTable depends only on Width and Poly,
	// not on the reflection flags). This test checks the engine output shape.
	a := crc.New(crc.CCITTFalse)
	b := crc.New(crc.XModem)
	a.Write([]byte{0x00})
	b.Write([]byte{0x00})
	// Both start from Init=given values so registers differ, but the engines
	// must not panic and must produce width-consistent output.
	require.Len(t, a.Sum(nil), 2)
	require.Len(t, b.Sum(nil), 2)
}
