//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !bstset_disable_padding && !bstset_enable_padding

package opt

// PaddingMult_ disables padding by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0
