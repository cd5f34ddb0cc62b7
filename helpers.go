// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"strings"

	"github.com/DavidGamba/go-tinyopt/maybe"
)

// matchSingle - matches args[0] against -short, --long and --long=value.
// It returns the label that matched and the joined value, if any.
func matchSingle(args []string, short rune, long string) (key string, joined maybe.Maybe[string], ok bool) {
	if len(args) == 0 {
		return "", joined, false
	}
	arg := args[0]
	if short != 0 && arg == "-"+string(short) {
		return arg, joined, true
	}
	if long == "" {
		return "", joined, false
	}
	if arg == "--"+long {
		return arg, joined, true
	}
	if strings.HasPrefix(arg, "--"+long+"=") {
		return "--" + long, maybe.Just(arg[len(long)+3:]), true
	}
	return "", joined, false
}

// Parse - matches a single option with a value at the start of args.
//
// The option is given as -short or --long, with its value as the next
// argument, or as --long=value. A zero short or an empty long are never
// matched. A nil p uses the Default parser for V.
//
// When the option doesn't match Parse returns Nothing and args unchanged.
// Otherwise it returns the parsed value and the arguments that follow it,
// or an OptionError if the value is missing or doesn't parse.
//
//	for len(args) > 0 {
//		n, rest, err := tinyopt.Parse[int](args, 'n', "number", nil)
//		...
//	}
func Parse[V any](args []string, short rune, long string, p Parser[V]) (maybe.Maybe[V], []string, error) {
	key, joined, ok := matchSingle(args, short, long)
	if !ok {
		return maybe.Nothing[V](), args, nil
	}
	if p == nil {
		p = Default[V]()
	}
	rest := args[1:]
	value := joined
	if !value.Ok() {
		if len(rest) == 0 {
			return maybe.Nothing[V](), rest, missingArgumentError(key)
		}
		value, rest = maybe.Just(rest[0]), rest[1:]
	}
	v := p(value)
	if !v.Ok() {
		return v, rest, parseError(key, value)
	}
	Logger.Printf("parse %q: value %s", key, value)
	return v, rest, nil
}

// ParseFlag - matches a single flag, -short or --long, at the start of args.
// It returns the arguments that follow it.
func ParseFlag(args []string, short rune, long string) (bool, []string) {
	key, joined, ok := matchSingle(args, short, long)
	if !ok || joined.Ok() {
		return false, args
	}
	Logger.Printf("parse %q", key)
	return true, args[1:]
}
