//go:build bstset_cachelinesize_32

package opt

// CacheLineSize_ is forced to 32 bytes via the bstset_cachelinesize_32 build tag.
const CacheLineSize_ uintptr = 32
