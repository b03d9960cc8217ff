//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !bstset_disable_padding && !bstset_enable_padding

package opt

// PaddingMult_ scales the padding that keeps hot fields of a Set on
// separate cache lines.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
const PaddingMult_ = 1
