// Package dfs defines types and options for simple-path enumeration.
package dfs

import (
	"context"
	"errors"
)

// DefaultMaxOrder bounds the graphs SimplePaths agrees to enumerate.
const DefaultMaxOrder = 16

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a vertex.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

	// ErrGraphTooLarge indicates more vertices than MaxOrder allows.
	ErrGraphTooLarge = errors.New("dfs: graph too large for path enumeration")
)

// Option configures optional behavior of the enumeration.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for path enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxOrder is the largest vertex count accepted. Default DefaultMaxOrder.
	MaxOrder int
}

// DefaultOptions returns DFSOptions with a background context and DefaultMaxOrder.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxOrder: DefaultMaxOrder,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxOrder overrides the size guard. Values ≤ 0 are ignored.
func WithMaxOrder(n int) Option {
	return func(o *DFSOptions) {
		if n > 0 {
			o.MaxOrder = n
		}
	}
}
