// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Sink - consumer of the argument of a matched option.
//
// Sinks are built with the functions in this file. Consume returns false when
// the argument is rejected, which Run reports as a parse error for the key
// that matched.
type Sink interface {
	consume(arg maybe.Maybe[string]) bool
}

// Number - types accepted by Increment.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type assignSink[V any] struct {
	dst *V
	p   Parser[V]
}

func (s assignSink[V]) consume(arg maybe.Maybe[string]) bool {
	return s.p(arg).Assign(s.dst)
}

type appendSink[V any] struct {
	dst *[]V
	p   Parser[V]
}

func (s appendSink[V]) consume(arg maybe.Maybe[string]) bool {
	return maybe.Do(s.p(arg), func(v V) { *s.dst = append(*s.dst, v) })
}

type incrementSink[V Number] struct {
	dst *V
	by  V
}

func (s incrementSink[V]) consume(maybe.Maybe[string]) bool {
	*s.dst += s.by
	return true
}

type setSink[V any] struct {
	dst   *V
	value V
}

func (s setSink[V]) consume(maybe.Maybe[string]) bool {
	*s.dst = s.value
	return true
}

type actionSink struct {
	fn func(arg maybe.Maybe[string]) bool
}

func (s actionSink) consume(arg maybe.Maybe[string]) bool {
	return s.fn(arg)
}

// failSink - matching raises a user error, it never consumes.
type failSink struct {
	msg string
}

func (s failSink) consume(maybe.Maybe[string]) bool {
	return false
}

type nopSink struct{}

func (nopSink) consume(maybe.Maybe[string]) bool {
	return true
}

// Assign - stores the argument, parsed with the Default parser, in dst.
func Assign[V any](dst *V) Sink {
	return AssignWith(dst, Default[V]())
}

// AssignWith - stores the argument, parsed with p, in dst.
func AssignWith[V any](dst *V, p Parser[V]) Sink {
	return assignSink[V]{dst: dst, p: p}
}

// Append - appends the argument, parsed with the Default parser, to dst.
func Append[V any](dst *[]V) Sink {
	return AppendWith(dst, Default[V]())
}

// AppendWith - appends the argument, parsed with p, to dst.
func AppendWith[V any](dst *[]V, p Parser[V]) Sink {
	return appendSink[V]{dst: dst, p: p}
}

// Increment - adds one to dst on every match.
func Increment[V Number](dst *V) Sink {
	return incrementSink[V]{dst: dst, by: 1}
}

// IncrementBy - adds n to dst on every match.
func IncrementBy[V Number](dst *V, n V) Sink {
	return incrementSink[V]{dst: dst, by: n}
}

// Set - stores value in dst on every match, the argument is ignored.
func Set[V any](dst *V, value V) Sink {
	return setSink[V]{dst: dst, value: value}
}

// SetTrue - Set(dst, true).
func SetTrue(dst *bool) Sink {
	return Set(dst, true)
}

// Action - calls fn on every match, the argument is ignored.
func Action(fn func()) Sink {
	return actionSink{fn: func(maybe.Maybe[string]) bool {
		fn()
		return true
	}}
}

// ActionValue - calls fn with the argument parsed with the Default parser.
func ActionValue[V any](fn func(V)) Sink {
	return ActionWith(fn, Default[V]())
}

// ActionWith - calls fn with the argument parsed with p.
func ActionWith[V any](fn func(V), p Parser[V]) Sink {
	return actionSink{fn: func(arg maybe.Maybe[string]) bool {
		return maybe.Do(p(arg), fn)
	}}
}

// ActionFunc - calls fn with the raw argument, fn returns false to reject it.
func ActionFunc(fn func(arg maybe.Maybe[string]) bool) Sink {
	return actionSink{fn: fn}
}

// Fail - matching the option raises a user error with msg.
//
// The error names the matched token, most useful on keyless options:
//
//	tinyopt.New(tinyopt.Fail("unrecognized keyword"), tinyopt.When(0))
func Fail(msg string) Sink {
	return failSink{msg: msg}
}

// Nop - accepts any argument and does nothing with it.
// Useful for options that only switch modes.
func Nop() Sink {
	return nopSink{}
}
