//go:build bstset_enable_padding

package opt

// PaddingMult_ is force-enabled via the bstset_enable_padding build tag.
// Use: go build -tags=bstset_enable_padding
const PaddingMult_ = 1
