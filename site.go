package obf

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/veilforge/obf/internal/bijection"
	"github.com/veilforge/obf/internal/rng"
)

// djb2 is Dan Bernstein's classic string hash, used here over a call site's
// key the same way the original implementation hashes __FILE__ ":" __LINE__
// into a site-local seed component.
func djb2(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}

// siteKey identifies one call site: the source file:line occupied by the
// caller skip frames up, plus sub, which distinguishes the several trees a
// single line sometimes needs (String packs up to four literals from the
// one line that calls Str). V and L always pass sub=0, since one call
// expression needs exactly one tree.
func siteKey(skip int, sub int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "unknown", 0
	}
	return file + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(sub)
}

// siteSeed derives the deterministic seed for one call site: a mix of
// global_seed and the site's key, finished off with one LCG step so the
// result doesn't just echo its inputs back out in their low bits.
func siteSeed(globalSeed uint64, key string) uint64 {
	mixed := globalSeed ^ djb2(key)
	return uint64(rng.Mix(mixed, len(key)).Step())
}

// siteEntry memoizes one call site's tree. SPEC_FULL.md's §1 describes a
// site tree as built once, at first use, and reused for the lifetime of
// the process; once guards that so the same line, called a million times
// from inside a loop, builds its tree exactly once and shares it across
// every call.
type siteEntry struct {
	once sync.Once
	node bijection.Node
}

func (e *siteEntry) build(fn func() bijection.Node) bijection.Node {
	e.once.Do(func() { e.node = fn() })
	return e.node
}

var (
	sitesMu sync.Mutex
	sites   = map[string]*siteEntry{}
)

// siteFor returns the memoization entry for key, creating it if this is
// the first call from that site.
func siteFor(key string) *siteEntry {
	sitesMu.Lock()
	defer sitesMu.Unlock()
	e, ok := sites[key]
	if !ok {
		e = &siteEntry{}
		sites[key] = e
	}
	return e
}
