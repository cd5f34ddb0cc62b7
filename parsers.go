// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Parser - converts an option argument into a value.
//
// The argument is Nothing for flags. A Parser returns Nothing when the
// argument can't be converted.
type Parser[V any] func(arg maybe.Maybe[string]) maybe.Maybe[V]

// DefaultDelimiter - delimiter used by DelimitedDefault.
const DefaultDelimiter = ','

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Default - returns the canonical parser for V.
//
// Supported types are strings, bools, signed and unsigned integers, floats,
// time.Duration and any type whose pointer implements
// encoding.TextUnmarshaler. Types defined on top of those are supported too.
// Strings are taken verbatim; everything else ignores leading and trailing
// whitespace and fails on any other trailing text.
//
// Default panics for unsupported types.
func Default[V any]() Parser[V] {
	var zero V
	convert := converter(reflect.TypeOf(&zero).Elem())
	if convert == nil {
		panic(fmt.Sprintf("no default parser for type %T", zero))
	}
	return func(arg maybe.Maybe[string]) maybe.Maybe[V] {
		s, ok := arg.Get()
		if !ok {
			return maybe.Nothing[V]()
		}
		var v V
		if !convert(reflect.ValueOf(&v).Elem(), s) {
			return maybe.Nothing[V]()
		}
		return maybe.Just(v)
	}
}

// converter - returns a function that sets dst from s, nil if t is not supported.
func converter(t reflect.Type) func(dst reflect.Value, s string) bool {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return func(dst reflect.Value, s string) bool {
			return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)) == nil
		}
	}
	if t == durationType {
		return func(dst reflect.Value, s string) bool {
			d, err := time.ParseDuration(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			dst.SetInt(int64(d))
			return true
		}
	}
	switch t.Kind() {
	case reflect.String:
		return func(dst reflect.Value, s string) bool {
			dst.SetString(s)
			return true
		}
	case reflect.Bool:
		return func(dst reflect.Value, s string) bool {
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			dst.SetBool(b)
			return true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(dst reflect.Value, s string) bool {
			i, err := strconv.ParseInt(strings.TrimSpace(s), 10, t.Bits())
			if err != nil {
				return false
			}
			dst.SetInt(i)
			return true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(dst reflect.Value, s string) bool {
			u, err := strconv.ParseUint(strings.TrimSpace(s), 10, t.Bits())
			if err != nil {
				return false
			}
			dst.SetUint(u)
			return true
		}
	case reflect.Float32, reflect.Float64:
		return func(dst reflect.Value, s string) bool {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), t.Bits())
			if err != nil {
				return false
			}
			dst.SetFloat(f)
			return true
		}
	}
	return nil
}

// Void - parser for flags, it always succeeds.
func Void() Parser[struct{}] {
	return func(maybe.Maybe[string]) maybe.Maybe[struct{}] {
		return maybe.Just(struct{}{})
	}
}

// Keyword - label to value pair used by Keywords.
type Keyword[V any] struct {
	Label string
	Value V
}

// Keywords - parser that maps exact labels to values.
//
// Matching is case sensitive, the first pair with an equal label wins.
//
//	Keywords(Keyword[int]{"one", 1}, Keyword[int]{"two", 2})
func Keywords[V any](pairs ...Keyword[V]) Parser[V] {
	return func(arg maybe.Maybe[string]) maybe.Maybe[V] {
		s, ok := arg.Get()
		if !ok {
			return maybe.Nothing[V]()
		}
		for _, p := range pairs {
			if p.Label == s {
				return maybe.Just(p.Value)
			}
		}
		return maybe.Nothing[V]()
	}
}

// Delimited - parser for a delim separated list of values, each parsed with inner.
//
// An empty argument is an empty list. Every other argument is split on each
// occurrence of delim, so "a/" holds "a" and "", and all the parts have to
// parse for the list to parse.
func Delimited[V any](delim rune, inner Parser[V]) Parser[[]V] {
	return func(arg maybe.Maybe[string]) maybe.Maybe[[]V] {
		s, ok := arg.Get()
		if !ok {
			return maybe.Nothing[[]V]()
		}
		out := []V{}
		if s == "" {
			return maybe.Just(out)
		}
		for _, part := range strings.Split(s, string(delim)) {
			v, ok := inner(maybe.Just(part)).Get()
			if !ok {
				return maybe.Nothing[[]V]()
			}
			out = append(out, v)
		}
		return maybe.Just(out)
	}
}

// DelimitedDefault - Delimited with the Default parser for V.
func DelimitedDefault[V any](delim rune) Parser[[]V] {
	return Delimited(delim, Default[V]())
}
