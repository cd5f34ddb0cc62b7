// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"fmt"
	"slices"

	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Option - binds keys and behaviour flags to a sink.
//
// An Option without keys is keyless: it matches any argument that no keyed
// option matched.
type Option struct {
	sink      Sink
	keys      []Key
	preferred string

	flag      bool
	ephemeral bool
	single    bool
	mandatory bool
	exit      bool
	stop      bool

	when func(mode int) bool
	then func(mode int) int
}

// ModifyFn - configures an Option when passed to New.
type ModifyFn func(*Option)

// New - builds an Option that sends its argument to s.
//
//	tinyopt.New(tinyopt.Assign(&n), tinyopt.Keys("-n", "--number"), tinyopt.Single)
//
// A nil sink behaves as Nop.
func New(s Sink, fns ...ModifyFn) Option {
	if s == nil {
		s = Nop()
	}
	o := Option{sink: s}
	for _, fn := range fns {
		fn(&o)
	}
	return o
}

// Keys - adds keys built with NewKey.
func Keys(labels ...string) ModifyFn {
	return func(o *Option) {
		for _, l := range labels {
			o.addKey(NewKey(l))
		}
	}
}

// WithKeys - adds keys with explicit styles.
func WithKeys(keys ...Key) ModifyFn {
	return func(o *Option) {
		for _, k := range keys {
			o.addKey(newKey(k.Label, k.Style))
		}
	}
}

// Flag - the option takes no value.
func Flag(o *Option) { o.flag = true }

// Ephemeral - the option is acted upon but left out of the saved options.
func Ephemeral(o *Option) { o.ephemeral = true }

// Single - the option matches at most once per run.
func Single(o *Option) { o.single = true }

// Mandatory - Run fails if the option never matched.
func Mandatory(o *Option) { o.mandatory = true }

// Exit - Run stops as soon as the option matches and returns no saved options.
// Mandatory options are not checked.
func Exit(o *Option) { o.exit = true }

// Stop - Run stops as soon as the option matches, as it does for "--".
func Stop(o *Option) { o.stop = true }

// When - the option only takes part in matching while the mode is one of modes.
func When(modes ...int) ModifyFn {
	return WhenFunc(func(mode int) bool {
		return slices.Contains(modes, mode)
	})
}

// WhenFunc - the option only takes part in matching while fn accepts the mode.
func WhenFunc(fn func(mode int) bool) ModifyFn {
	return func(o *Option) { o.when = fn }
}

// Then - a match sets the mode.
func Then(mode int) ModifyFn {
	return ThenFunc(func(int) int { return mode })
}

// ThenFunc - a match sets the mode to fn of the current mode.
func ThenFunc(fn func(mode int) int) ModifyFn {
	return func(o *Option) { o.then = fn }
}

func (o *Option) addKey(k Key) {
	if o.HasKey(k.Label) {
		panic(fmt.Sprintf("key '%s' is already defined", k.Label))
	}
	if len(k.Label) > len(o.preferred) {
		o.preferred = k.Label
	}
	o.keys = append(o.keys, k)
}

// Keys - returns the option keys in declaration order.
func (o Option) Keys() []Key {
	return slices.Clone(o.keys)
}

// PreferredKey - longest key label, the first one on ties. Empty for keyless options.
func (o Option) PreferredKey() string {
	return o.preferred
}

// HasKey - Indicates if label is one of the option keys.
// The empty label is the key of keyless options.
func (o Option) HasKey(label string) bool {
	if len(o.keys) == 0 {
		return label == ""
	}
	for _, k := range o.keys {
		if k.Label == label {
			return true
		}
	}
	return false
}

// Keyless - Indicates if the option matches arguments instead of keys.
func (o Option) Keyless() bool { return len(o.keys) == 0 }

// IsFlag - Indicates if the option takes no value.
func (o Option) IsFlag() bool { return o.flag }

// IsEphemeral - Indicates if the option is left out of the saved options.
func (o Option) IsEphemeral() bool { return o.ephemeral }

// IsSingle - Indicates if the option matches at most once.
func (o Option) IsSingle() bool { return o.single }

// IsMandatory - Indicates if the option has to match.
func (o Option) IsMandatory() bool { return o.mandatory }

// IsExit - Indicates if a match ends the run without saved options.
func (o Option) IsExit() bool { return o.exit }

// IsStop - Indicates if a match ends option processing.
func (o Option) IsStop() bool { return o.stop }

// Active - Indicates if the option takes part in matching for mode.
func (o Option) Active(mode int) bool {
	return o.when == nil || o.when(mode)
}

// Next - returns the mode that follows a match in mode.
func (o Option) Next(mode int) int {
	if o.then == nil {
		return mode
	}
	return o.then(mode)
}

// Apply - sends value to the option sink as if key had matched.
//
// It returns ErrorMissingArgument for options that take a value when value
// is Nothing, ErrorParsing when the sink rejects value and ErrorUser for
// Fail sinks.
func (o Option) Apply(key string, value maybe.Maybe[string]) error {
	if f, ok := o.sink.(failSink); ok {
		return &OptionError{Kind: ErrorUser, Key: key, Value: value, Msg: f.msg}
	}
	if !o.flag && !value.Ok() {
		return missingArgumentError(key)
	}
	if !o.sink.consume(value) {
		return parseError(key, value)
	}
	return nil
}
