package crc

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestTableMatchesBitwiseReference checks property 6 from the testable
// properties list: table[i] must equal the bitwise (no-table) computation
// of the same byte, for every entry and every variant.
func TestTableMatchesBitwiseReference(t *testing.T) {
	for _, p := range []*Params{CCITTFalse, XModem, X25, IEEE, BZIP2, Castagnoli} {
		table := p.lookup()
		for i := 0; i < 256; i++ {
			want := compressOneByte(p, byte(i))
			if table[i] != want {
				t.Fatalf("width %d poly 0x%x: table[%d] = 0x%x, want 0x%x", p.Width, p.Poly, i, table[i], want)
			}
		}
	}
}

// TestSixteenBitTablesIdentical checks that CRC-16/CCITT-FALSE, CRC-16/XMODEM
// and CRC-16/X-25 share one table, since table construction depends only on
// width and polynomial, both 16/0x1021 for all three.
func TestSixteenBitTablesIdentical(t *testing.T) {
	a, b, c := *CCITTFalse.lookup(), *XModem.lookup(), *X25.lookup()
	if a != b || b != c {
		t.Fatal("CRC-16 variants sharing polynomial 0x1021 must build identical tables")
	}
}

// TestDeterminismAndChunkInvariance property-tests testable properties 1 and
// 2 over arbitrary byte slices split at arbitrary points.
func TestDeterminismAndChunkInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	variants := []*Params{CCITTFalse, XModem, X25, IEEE, BZIP2, Castagnoli}

	for _, p := range variants {
		p := p
		properties.Property("determinism for "+widthName(p), prop.ForAll(
			func(data []byte) bool {
				a := New(p)
				a.Write(data)
				b := New(p)
				b.Write(data)
				return string(a.Sum(nil)) == string(b.Sum(nil))
			},
			gen.SliceOf(gen.UInt8()),
		))

		properties.Property("chunk invariance for "+widthName(p), prop.ForAll(
			func(data []byte, cut uint8) bool {
				whole := New(p)
				whole.Write(data)

				split := int(cut) % (len(data) + 1)
				chunked := New(p)
				chunked.Write(data[:split])
				chunked.Write(data[split:])

				return string(whole.Sum(nil)) == string(chunked.Sum(nil))
			},
			gen.SliceOf(gen.UInt8()),
			gen.UInt8(),
		))

		properties.Property("reset reproduces fresh digest for "+widthName(p), prop.ForAll(
			func(garbage, data []byte) bool {
				reused := New(p)
				reused.Write(garbage)
				reused.Init()
				reused.Write(data)

				fresh := New(p)
				fresh.Write(data)

				return string(reused.Sum(nil)) == string(fresh.Sum(nil))
			},
			gen.SliceOf(gen.UInt8()),
			gen.SliceOf(gen.UInt8()),
		))
	}

	properties.TestingRun(t)
}

func widthName(p *Params) string {
	if p.Width == 16 {
		return "crc16"
	}
	return "crc32"
}
