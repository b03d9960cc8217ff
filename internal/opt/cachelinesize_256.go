//go:build bstset_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the bstset_cachelinesize_256 build tag.
const CacheLineSize_ uintptr = 256
