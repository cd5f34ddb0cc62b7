// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package maybe - a value that is either present or absent.
//
// Absence is not the zero value: Just("") is present and holds the empty
// string, Nothing[string]() holds nothing at all.
package maybe

import (
	"errors"
	"fmt"
)

// ErrorNothing - returned by Value when there is no value.
var ErrorNothing = errors.New("is nothing")

// Maybe - either holds a value of type T or nothing.
// The zero Maybe holds nothing.
type Maybe[T any] struct {
	ok    bool
	value T
}

// Just - returns a Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{ok: true, value: v}
}

// Nothing - returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From - returns Just(v) if ok, Nothing otherwise.
func From[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Maybe[T]{}
	}
	return Just(v)
}

// FromPtr - returns Just(*p) for a non nil pointer.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Maybe[T]{}
	}
	return Just(*p)
}

// Ok - Indicates if a value is held.
func (m Maybe[T]) Ok() bool {
	return m.ok
}

// Get - returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Value - returns the value or ErrorNothing.
func (m Maybe[T]) Value() (T, error) {
	if !m.ok {
		var zero T
		return zero, ErrorNothing
	}
	return m.value, nil
}

// MustValue - returns the value and panics when there is none.
func (m Maybe[T]) MustValue() T {
	if !m.ok {
		panic(ErrorNothing)
	}
	return m.value
}

// OrElse - returns the value or def when there is none.
func (m Maybe[T]) OrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}

// Ptr - returns a pointer to a copy of the value, nil when there is none.
func (m Maybe[T]) Ptr() *T {
	if !m.ok {
		return nil
	}
	v := m.value
	return &v
}

// Assign - conditional assignment: stores the value in dst if present.
// It reports whether the assignment took place.
func (m Maybe[T]) Assign(dst *T) bool {
	if !m.ok {
		return false
	}
	*dst = m.value
	return true
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "nothing"
	}
	return fmt.Sprintf("just(%v)", m.value)
}

// Map - applies fn to the held value.
func Map[T, R any](m Maybe[T], fn func(T) R) Maybe[R] {
	if !m.ok {
		return Maybe[R]{}
	}
	return Just(fn(m.value))
}

// Bind - applies a fallible fn to the held value.
func Bind[T, R any](m Maybe[T], fn func(T) Maybe[R]) Maybe[R] {
	if !m.ok {
		return Maybe[R]{}
	}
	return fn(m.value)
}

// Do - calls fn with the held value. It reports whether fn was called.
func Do[T any](m Maybe[T], fn func(T)) bool {
	if !m.ok {
		return false
	}
	fn(m.value)
	return true
}

// Equal - two Maybes are equal when both are empty or both hold equal values.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}
