// Copyright © 2026 The mpvedit authors

// Package memo provides a lazily constructed, memoized value.
package memo

import (
	"sync"
	"sync/atomic"
)

// Value holds a T that is built on first use. Only the construction step is
// guarded by a mutex; once built, Get is a single atomic load.
type Value[T any] struct {
	ptr   atomic.Pointer[T]
	mu    sync.Mutex
	build func() T
}

// New returns a Value that calls build at most once.
func New[T any](build func() T) *Value[T] {
	return &Value[T]{build: build}
}

// Get returns the memoized value, constructing it if needed. Concurrent
// first callers block until the single construction finishes and then all
// observe the same value.
func (v *Value[T]) Get() T {
	if p := v.ptr.Load(); p != nil {
		return *p
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if p := v.ptr.Load(); p != nil {
		return *p
	}
	x := v.build()
	v.ptr.Store(&x)
	return x
}

// Built reports whether the value has been constructed.
func (v *Value[T]) Built() bool {
	return v.ptr.Load() != nil
}
