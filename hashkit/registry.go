package hashkit

import (
	"sort"
	"sync"

	"github.com/advark/libhash/crc"
	"github.com/advark/libhash/md5"
	"github.com/advark/libhash/sha1"
	"github.com/advark/libhash/sha256"
	"github.com/advark/libhash/sha512"
)

// Name identifies one registered algorithm. These are exactly the NAME
// tokens used in the exported C ABI's symbol table.
type Name string

const (
	CRC16CCITT  Name = "crc16_ccitt"
	CRC16XModem Name = "crc16_xmodem"
	CRC16X25    Name = "crc16_x25"
	CRC32       Name = "crc32"
	CRC32BZIP2  Name = "crc32_bzip2"
	CRC32C      Name = "crc32c"
	MD5         Name = "md5"
	SHA1        Name = "sha1"
	SHA224      Name = "sha2_224"
	SHA256      Name = "sha2_256"
	SHA384      Name = "sha2_384"
	SHA512      Name = "sha2_512"
)

var factories = map[Name]func() Hasher{
	CRC16CCITT:  func() Hasher { return crc.New(crc.CCITTFalse) },
	CRC16XModem: func() Hasher { return crc.New(crc.XModem) },
	CRC16X25:    func() Hasher { return crc.New(crc.X25) },
	CRC32:       func() Hasher { return crc.New(crc.IEEE) },
	CRC32BZIP2:  func() Hasher { return crc.New(crc.BZIP2) },
	CRC32C:      func() Hasher { return crc.New(crc.Castagnoli) },
	MD5:         func() Hasher { return md5.New() },
	SHA1:        func() Hasher { return sha1.New() },
	SHA224:      func() Hasher { return sha256.New224() },
	SHA256:      func() Hasher { return sha256.New256() },
	SHA384:      func() Hasher { return sha512.New384() },
	SHA512:      func() Hasher { return sha512.New512() },
}

var registryMu sync.RWMutex

// New constructs a fresh, initialised Hasher for the named algorithm. The
// bool return is false for an unrecognised name, mirroring the C ABI's
// "invalid handle" contract rather than panicking or returning an error.
func New(name Name) (Hasher, bool) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	h := factory()
	h.Init()
	return h, true
}

// Names returns every registered algorithm name, sorted, for enumeration by
// callers (e.g. a test harness iterating the full algorithm set).
func Names() []Name {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Name, 0, len(factories))
	for n := range factories {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
