package hashkit

import "sync"

// Handle stands in for the opaque pointer of an exported C ABI boundary
// (out of scope for this library; see the registry's Name table). Rather
// than a void* relying on run-time type identification, each Handle is an
// index into a table whose entries carry an explicit algorithm tag, so the
// boundary can reject a handle used with the wrong algorithm's entry point
// without any dynamic casting.
type Handle uint64

type handleEntry struct {
	alg       Name
	hasher    Hasher
	finalized bool
}

var (
	handlesMu  sync.Mutex
	handles    = map[Handle]*handleEntry{}
	nextHandle Handle = 1
)

// Create allocates a new handle for alg, bound to a freshly constructed
// hasher (the factories return it already initialised). The bool return is
// false (and the handle 0) if alg is not registered, mirroring a null
// return on allocation failure at the C boundary.
func Create(alg Name) (Handle, bool) {
	factory, ok := factories[alg]
	if !ok {
		return 0, false
	}

	handlesMu.Lock()
	defer handlesMu.Unlock()
	h := nextHandle
	nextHandle++
	handles[h] = &handleEntry{alg: alg, hasher: factory()}
	return h, true
}

// lookup returns the entry for h, but only if it is tagged with alg; any
// other case (unknown handle, destroyed handle, wrong-algorithm handle)
// reports ok=false and leaves state unchanged, matching the C ABI's
// "invalid handle" contract.
func lookup(h Handle, alg Name) (*handleEntry, bool) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	e, ok := handles[h]
	if !ok || e.alg != alg {
		return nil, false
	}
	return e, true
}

// Init resets the hasher bound to h, entering the "initialised" lifecycle
// state. Returns false for an invalid or wrong-algorithm handle.
func Init(h Handle, alg Name) bool {
	e, ok := lookup(h, alg)
	if !ok {
		return false
	}
	e.hasher.Init()
	e.finalized = false
	return true
}

// Update absorbs buf into the hasher bound to h.
func Update(h Handle, alg Name, buf []byte) bool {
	e, ok := lookup(h, alg)
	if !ok {
		return false
	}
	e.hasher.Write(buf)
	return true
}

// Finalize completes padding and digest computation for the hasher bound
// to h.
func Finalize(h Handle, alg Name) bool {
	e, ok := lookup(h, alg)
	if !ok {
		return false
	}
	e.hasher.Finalize()
	e.finalized = true
	return true
}

// GetValue copies up to len(out) digest bytes into out. Calling before
// Finalize is not an error at this boundary: it copies whatever the
// underlying hasher currently reports, per the unspecified-but-safe
// contract for misordered calls.
func GetValue(h Handle, alg Name, out []byte) (int, bool) {
	e, ok := lookup(h, alg)
	if !ok {
		return 0, false
	}
	return e.hasher.Digest(out), true
}

// Destroy releases the handle. Subsequent calls against h with any
// algorithm tag report an invalid handle.
func Destroy(h Handle, alg Name) bool {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	e, ok := handles[h]
	if !ok || e.alg != alg {
		return false
	}
	delete(handles, h)
	return true
}
