// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"io"
	"log"

	"github.com/DavidGamba/go-tinyopt/internal/state"
	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// run - match counts and mode of one Run call.
type run struct {
	options []Option
	counts  []int
	mode    int
	saved   SavedOptions

	exit bool
	stop bool
}

func newRun(options []Option) *run {
	return &run{
		options: options,
		counts:  make([]int, len(options)),
		saved:   SavedOptions{},
	}
}

// eligible - the option is not at its single cap and accepts the current mode.
func (r *run) eligible(i int) bool {
	o := r.options[i]
	if o.single && r.counts[i] > 0 {
		return false
	}
	return o.Active(r.mode)
}

// accept - applies a match of option i and records it.
func (r *run) accept(i int, key string, value maybe.Maybe[string]) error {
	o := r.options[i]
	Logger.Printf("match %q: value %s, mode %d", key, value, r.mode)
	if err := o.Apply(key, value); err != nil {
		return err
	}
	if !o.ephemeral {
		r.saved = append(r.saved, Entry{Key: key, Value: value})
	}
	r.counts[i]++
	r.mode = o.Next(r.mode)
	r.exit = o.exit
	r.stop = o.stop
	return nil
}

// restore - replays saved entries straight into the sinks of the options
// that hold their keys. Mode, exit and stop are not applied.
func (r *run) restore(saved SavedOptions) error {
ENTRIES:
	for _, e := range saved {
		for i, o := range r.options {
			if !o.HasKey(e.Key) || (o.single && r.counts[i] > 0) {
				continue
			}
			Logger.Printf("restore %q: value %s", e.Key, e.Value)
			if err := o.Apply(e.Key, e.Value); err != nil {
				return err
			}
			if !o.ephemeral {
				r.saved = append(r.saved, e)
			}
			r.counts[i]++
			continue ENTRIES
		}
		Logger.Printf("restore %q: no option takes it", e.Key)
	}
	return nil
}

// matchKeyed - tries every eligible keyed option at the current argument.
func (r *run) matchKeyed(st *state.State) (bool, error) {
	for i, o := range r.options {
		if o.Keyless() || !r.eligible(i) {
			continue
		}
		for _, k := range o.keys {
			var value maybe.Maybe[string]
			var ok bool
			if o.flag {
				ok = st.MatchFlag(k.Label, k.Style)
			} else {
				value, ok = st.MatchOption(k.Label, k.Style)
			}
			if ok {
				return true, r.accept(i, k.Label, value)
			}
		}
	}
	return false, nil
}

// matchKeyless - gives the whole current argument to the first eligible keyless option.
func (r *run) matchKeyless(st *state.State) (bool, error) {
	for i, o := range r.options {
		if !o.Keyless() || !r.eligible(i) {
			continue
		}
		value := maybe.Just(st.Current())
		st.Shift(1)
		return true, r.accept(i, "", value)
	}
	return false, nil
}

// parse - matches the arguments under st until they run out or a run ending
// option or "--" is found.
func (r *run) parse(st *state.State) error {
	for st.More() {
		matched, err := r.matchKeyed(st)
		if err != nil {
			return err
		}
		if !matched && st.Offset() == 0 {
			if st.Current() == "--" {
				Logger.Printf("end of options")
				st.Shift(1)
				return nil
			}
			matched, err = r.matchKeyless(st)
			if err != nil {
				return err
			}
		}
		switch {
		case r.exit:
			Logger.Printf("exit")
			return nil
		case r.stop:
			Logger.Printf("stop")
			return nil
		case !matched:
			st.Skip()
		}
	}
	return nil
}

func (r *run) checkMandatory() error {
	for i, o := range r.options {
		if o.mandatory && r.counts[i] == 0 {
			return missingMandatoryError(o.PreferredKey())
		}
	}
	return nil
}

// Run - matches options against args.
//
// Entries in restore are replayed first, straight into the sinks of the
// options holding their keys. Then every argument is tried against the keyed
// options, in declaration order, then "--", which ends option processing, and
// then against the keyless options. Arguments nothing matched are kept.
// After every match the search starts again from the first option.
//
// On return args holds the arguments that were not matched, in their
// original order. The saved options are Nothing when an Exit option matched,
// in which case mandatory options are not checked.
//
// An OptionError is returned for values that fail to parse, missing values
// and missing mandatory options. Options matched before the error keep their
// effects.
func Run(options []Option, args *[]string, restore ...SavedOptions) (maybe.Maybe[SavedOptions], error) {
	r := newRun(options)
	for _, saved := range restore {
		if err := r.restore(saved); err != nil {
			return maybe.Nothing[SavedOptions](), err
		}
	}

	if args != nil {
		st := state.New(*args)
		err := r.parse(st)
		*args = st.Remaining()
		if err != nil {
			return maybe.Nothing[SavedOptions](), err
		}
	}
	if r.exit {
		return maybe.Nothing[SavedOptions](), nil
	}

	if err := r.checkMandatory(); err != nil {
		return maybe.Nothing[SavedOptions](), err
	}
	return maybe.Just(r.saved), nil
}

// Restore - replays saved into options without any command line arguments.
// Mandatory options are checked.
func Restore(options []Option, saved SavedOptions) (SavedOptions, error) {
	so, err := Run(options, nil, saved)
	if err != nil {
		return nil, err
	}
	return so.MustValue(), nil
}
