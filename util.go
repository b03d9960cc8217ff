package bstset

import (
	"runtime"
	_ "unsafe" // for linkname
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// backoff pauses the caller between two failed lock attempts.
// The first limit attempts use a short processor pause; every attempt
// after that yields the processor.
func backoff(attempts *int, limit int) {
	if *attempts < limit {
		*attempts++
		runtime_doSpin()
		return
	}
	runtime.Gosched()
}

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
