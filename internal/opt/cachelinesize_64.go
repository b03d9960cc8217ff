//go:build bstset_cachelinesize_64

package opt

// CacheLineSize_ is forced to 64 bytes via the bstset_cachelinesize_64 build tag.
const CacheLineSize_ uintptr = 64
