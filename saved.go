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
	"io"
	"strings"

	"github.com/DavidGamba/go-tinyopt/internal/shellquote"
	"github.com/DavidGamba/go-tinyopt/maybe"
)

// Entry - one matched option: the key that matched and its value.
// Keyless options have an empty Key, flags have no Value.
type Entry struct {
	Key   string
	Value maybe.Maybe[string]
}

// SavedOptions - log of the options matched by Run, ephemeral ones excluded.
//
// The text form holds one entry per line: the key followed by the value, if
// any, each quoted for a POSIX shell. The empty key of keyless options is
// written as ''.
//
//	-n 3
//	--name 'Jane Doe'
//	'' positional
type SavedOptions []Entry

// Add - appends an entry with no value.
func (s *SavedOptions) Add(key string) {
	*s = append(*s, Entry{Key: key})
}

// AddValue - appends an entry with a value.
func (s *SavedOptions) AddValue(key, value string) {
	*s = append(*s, Entry{Key: key, Value: maybe.Just(value)})
}

// Extend - appends all the entries of o.
func (s *SavedOptions) Extend(o SavedOptions) {
	*s = append(*s, o...)
}

// Args - returns the entries as an argument list: each key, when not empty,
// followed by its value, when present.
func (s SavedOptions) Args() []string {
	args := []string{}
	for _, e := range s {
		if e.Key != "" {
			args = append(args, e.Key)
		}
		if v, ok := e.Value.Get(); ok {
			args = append(args, v)
		}
	}
	return args
}

func (s SavedOptions) String() string {
	var b strings.Builder
	for _, e := range s {
		b.WriteString(shellquote.Quote(e.Key))
		if v, ok := e.Value.Get(); ok {
			b.WriteByte(' ')
			b.WriteString(shellquote.Quote(v))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalText - encoding.TextMarshaler implementation.
func (s SavedOptions) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - encoding.TextUnmarshaler implementation.
//
// An open quote at the end of the text is closed implicitly.
func (s *SavedOptions) UnmarshalText(b []byte) error {
	out := SavedOptions{}
	for _, rec := range shellquote.SplitRecords(string(b)) {
		switch len(rec) {
		case 1:
			out.Add(rec[0])
		case 2:
			out.AddValue(rec[0], rec[1])
		default:
			return fmt.Errorf("%w: %s", ErrorMalformedSavedOptions, shellquote.Join(rec))
		}
	}
	*s = out
	return nil
}

// WriteTo - writes the text form to w.
func (s SavedOptions) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// ReadSavedOptions - reads the text form from r.
func ReadSavedOptions(r io.Reader) (SavedOptions, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved options: %w", err)
	}
	var s SavedOptions
	err = s.UnmarshalText(b)
	return s, err
}

// FormatArgs - quotes args into a single space separated line.
//
// Deprecated: the line form loses the key to value association, use
// SavedOptions.
func FormatArgs(args []string) string {
	return shellquote.Join(args)
}

// ParseArgs - splits a FormatArgs line back into arguments.
//
// Deprecated: use ReadSavedOptions.
func ParseArgs(s string) []string {
	return shellquote.Split(s)
}
