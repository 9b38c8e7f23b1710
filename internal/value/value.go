// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with generic type parameters
// as payload at runtime.
//
// A tree slot carries an arbitrary V, the helpers here let the payload
// decide how it is rendered, compared and copied, with sane fallbacks
// for plain types like string or int.
//
// This is an internal package used by the ktree data structure implementation.
package value

import (
	"fmt"
	"reflect"
)

// Renderer is a generic interface for types that can render themselves
// as a single token in the level dumps and traversal strings.
type Renderer interface {
	Render() string
}

// Render returns the text form of v.
//
// If V implements Renderer, Render is used, then fmt.Stringer,
// then the default %v formatting.
func Render[V any](v V) string {
	// you can't assert directly on a type parameter
	switch r := any(v).(type) {
	case Renderer:
		return r.Render()
	case fmt.Stringer:
		return r.String()
	case string:
		return r
	}
	return fmt.Sprint(v)
}

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// avoiding the potentially expensive reflect.DeepEqual.
// Otherwise, reflect.DeepEqual is used as a fallback.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc is a type definition for a function that takes a value of type V
// and returns the (possibly cloned) value of type V.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns a CloneFunc.
// If V implements Cloner[V], the returned function performs
// a deep copy using Clone(), otherwise it just copies the value.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return CopyVal[V]
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If val does not implement
// Cloner[V] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[V any](val V) V {
	// you can't assert directly on a type parameter
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// CopyVal just copies the value of any type V.
func CopyVal[V any](val V) V {
	return val
}
