// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package state - cursor over a command line argument list used to match option keys.
//
// The argument slice given to New is never modified. Consumed tokens are
// dropped by advancing the cursor, skipped tokens are kept aside, so that
// Remaining reports the tokens that were never matched in their original
// order.
package state

import (
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Style - how a key is matched against an argument.
type Style int

const (
	// Short keys match a whole argument; the value is the next argument.
	Short Style = iota
	// Long keys also accept the value joined with '=': --key=value.
	Long
	// Compact keys can be combined in one argument (-abc) and take the rest
	// of the argument as their value (-n3).
	Compact
)

func (s Style) String() string {
	switch s {
	case Short:
		return "short"
	case Long:
		return "long"
	case Compact:
		return "compact"
	}
	return "unknown"
}

// State - arguments under examination.
type State struct {
	args   []string
	pos    int      // index of the current argument
	offset int      // bytes of the current argument consumed by compact keys
	kept   []string // arguments skipped over
}

// New - builds a State over args.
func New(args []string) *State {
	return &State{args: args}
}

// More - tells if there are arguments left to examine.
func (s *State) More() bool {
	return s.pos < len(s.args)
}

// Current - returns the argument under examination or an empty string when there are none left.
func (s *State) Current() string {
	if !s.More() {
		return ""
	}
	return s.args[s.pos]
}

// Offset - returns how much of the current argument has been consumed by compact keys.
func (s *State) Offset() int {
	return s.offset
}

// Len - number of arguments not consumed so far, skipped ones included.
func (s *State) Len() int {
	return len(s.kept) + len(s.args) - s.pos
}

// Shift - consumes n arguments starting at the current one.
func (s *State) Shift(n int) {
	s.pos += n
	if s.pos > len(s.args) {
		s.pos = len(s.args)
	}
	s.offset = 0
}

// Skip - moves past the current argument leaving it in the remaining list.
func (s *State) Skip() {
	if !s.More() {
		return
	}
	Logger.Printf("skip: %q", s.args[s.pos])
	s.kept = append(s.kept, s.args[s.pos])
	s.pos++
	s.offset = 0
}

// Remaining - returns the arguments that have not been consumed.
func (s *State) Remaining() []string {
	out := make([]string, 0, s.Len())
	out = append(out, s.kept...)
	return append(out, s.args[s.pos:]...)
}

// next - returns the argument following the current one.
func (s *State) next() maybe.Maybe[string] {
	if s.pos+1 >= len(s.args) {
		return maybe.Nothing[string]()
	}
	return maybe.Just(s.args[s.pos+1])
}

// MatchOption - matches a key that takes a value.
//
// On a match the key and its value are consumed and matched is true. The
// value is Nothing when the key was found but there was no value to take
// for it.
func (s *State) MatchOption(label string, style Style) (value maybe.Maybe[string], matched bool) {
	if !s.More() {
		return value, false
	}
	arg := s.args[s.pos]

	if style == Compact {
		rest, ok := s.matchCompact(label)
		if !ok {
			return value, false
		}
		if rest == "" {
			value = s.next()
			s.Shift(2)
			return value, true
		}
		s.Shift(1)
		return maybe.Just(strings.TrimPrefix(rest, "=")), true
	}

	if s.offset != 0 {
		return value, false
	}
	if arg == label {
		value = s.next()
		s.Shift(2)
		return value, true
	}
	if style == Long && strings.HasPrefix(arg, label+"=") {
		s.Shift(1)
		return maybe.Just(arg[len(label)+1:]), true
	}
	return value, false
}

// MatchFlag - matches a key that takes no value.
//
// Short and long flags have to match the whole argument. Compact flags
// consume their label and leave the rest of the argument for the next
// compact key.
func (s *State) MatchFlag(label string, style Style) bool {
	if !s.More() {
		return false
	}
	if style == Compact {
		rest, ok := s.matchCompact(label)
		if !ok {
			return false
		}
		if rest == "" {
			s.Shift(1)
		}
		return true
	}
	if s.offset == 0 && s.args[s.pos] == label {
		s.Shift(1)
		return true
	}
	return false
}

// matchCompact - matches label at the current offset of the current argument.
//
// Compact keys combined in one argument only need their common prefix
// once, at the start of the argument: with keys "-a" and "-b", "-ab"
// matches "-a" and then "b" matches "-b" since "-" was given already.
// It returns what is left of the argument after the label.
func (s *State) matchCompact(label string) (string, bool) {
	arg := s.args[s.pos]
	if label == "" {
		return "", false
	}
	prefixMax := len(label) - 1
	if s.offset < prefixMax {
		prefixMax = s.offset
	}
	for l := 0; l <= prefixMax; l++ {
		if l > 0 && !strings.HasPrefix(arg, label[:l]) {
			break
		}
		if !strings.HasPrefix(arg[s.offset:], label[l:]) {
			continue
		}
		s.offset += len(label) - l
		Logger.Printf("compact match: %q in %q, offset %d", label, arg, s.offset)
		return arg[s.offset:], true
	}
	return "", false
}
