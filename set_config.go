package bstset

import (
	"fmt"
)

// SetConfig defines configurable options for Set initialization.
type SetConfig struct {
	// spinLimit is the writer lock's yield threshold.
	// Zero or negative selects DefaultSpinLimit.
	spinLimit int

	// format renders a single element for Set.String.
	// If nil, fmt.Sprint is used.
	format func(any) string
}

// WithSpinLimit sets the number of failed attempts after which a writer
// waiting on the set's lock starts yielding the processor.
// If n is zero or negative, DefaultSpinLimit is used.
func WithSpinLimit(n int) func(*SetConfig) {
	return func(c *SetConfig) {
		c.spinLimit = n
	}
}

// WithFormatter sets the function used by Set.String to render an
// element. The argument passed to format is always a value of the set's
// element type.
//
// Example:
//
//	s := bstset.New[int](bstset.WithFormatter(func(v any) string {
//		return fmt.Sprintf("%03d", v)
//	}))
func WithFormatter(format func(any) string) func(*SetConfig) {
	return func(c *SetConfig) {
		c.format = format
	}
}

func newSetConfig(opts []func(*SetConfig)) *SetConfig {
	c := &SetConfig{}
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	if c.format == nil {
		c.format = func(v any) string { return fmt.Sprint(v) }
	}
	return c
}
