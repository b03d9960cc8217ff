//go:build bstset_cachelinesize_128

package opt

// CacheLineSize_ is forced to 128 bytes via the bstset_cachelinesize_128 build tag.
const CacheLineSize_ uintptr = 128
