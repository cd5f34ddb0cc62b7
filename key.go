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

	"github.com/DavidGamba/go-tinyopt/internal/state"
)

// Style - how a key is matched against an argument.
type Style = state.Style

// Key styles
const (
	// Short - the key has to be the whole argument, the value is the next argument.
	Short = state.Short
	// Long - like Short but a value can also be joined with '=': --key=value.
	Long = state.Long
	// Compact - keys can be bundled in one argument, -abc, and take the rest
	// of the argument as their value, -n3.
	Compact = state.Compact
)

// Key - option label plus its matching style.
type Key struct {
	Label string
	Style Style
}

// NewKey - infers the style from the label: Long for a "--" prefix, Short otherwise.
func NewKey(label string) Key {
	if strings.HasPrefix(label, "--") {
		return newKey(label, Long)
	}
	return newKey(label, Short)
}

// ShortKey - key matched as a whole argument.
func ShortKey(label string) Key { return newKey(label, Short) }

// LongKey - key that also accepts '=' joined values.
func LongKey(label string) Key { return newKey(label, Long) }

// CompactKey - key that can be bundled with other compact keys.
func CompactKey(label string) Key { return newKey(label, Compact) }

func newKey(label string, style Style) Key {
	if label == "" {
		panic("key label can't be empty")
	}
	return Key{Label: label, Style: style}
}

func (k Key) String() string {
	return k.Label
}
