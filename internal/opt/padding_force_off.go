//go:build bstset_disable_padding

package opt

// PaddingMult_ is force-disabled via the bstset_disable_padding build tag.
// Use: go build -tags=bstset_disable_padding
const PaddingMult_ = 0
