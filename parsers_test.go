// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"net/netip"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/DavidGamba/go-tinyopt/maybe"
)

func TestDefaultParser(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		p := Default[string]()
		if got := p(maybe.Just("  test string ")); !maybe.Equal(got, maybe.Just("  test string ")) {
			t.Errorf("wrong value: %v", got)
		}
		if got := p(maybe.Just("")); !maybe.Equal(got, maybe.Just("")) {
			t.Errorf("wrong value: %v", got)
		}
		if got := p(maybe.Nothing[string]()); got.Ok() {
			t.Errorf("nothing parsed: %v", got)
		}
	})

	t.Run("int", func(t *testing.T) {
		tests := []struct {
			input    string
			expected maybe.Maybe[int]
		}{
			{"", maybe.Nothing[int]()},
			{"abc", maybe.Nothing[int]()},
			{"-123x", maybe.Nothing[int]()},
			{"1.5", maybe.Nothing[int]()},
			{"-123", maybe.Just(-123)},
			{" -123   ", maybe.Just(-123)},
			{"\t42\n", maybe.Just(42)},
		}
		p := Default[int]()
		for _, tt := range tests {
			if got := p(maybe.Just(tt.input)); !maybe.Equal(got, tt.expected) {
				t.Errorf("Default[int](%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	})

	t.Run("widths", func(t *testing.T) {
		if got := Default[int8]()(maybe.Just("128")); got.Ok() {
			t.Errorf("int8 overflow parsed: %v", got)
		}
		if got := Default[int8]()(maybe.Just("-128")); !maybe.Equal(got, maybe.Just(int8(-128))) {
			t.Errorf("wrong int8: %v", got)
		}
		if got := Default[uint]()(maybe.Just("-1")); got.Ok() {
			t.Errorf("negative uint parsed: %v", got)
		}
		if got := Default[uint16]()(maybe.Just(" 65535 ")); !maybe.Equal(got, maybe.Just(uint16(65535))) {
			t.Errorf("wrong uint16: %v", got)
		}
	})

	t.Run("float", func(t *testing.T) {
		if got := Default[float64]()(maybe.Just("-0.5e1")); !maybe.Equal(got, maybe.Just(-5.0)) {
			t.Errorf("wrong float: %v", got)
		}
		if got := Default[float32]()(maybe.Just("fish")); got.Ok() {
			t.Errorf("fish parsed: %v", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		if got := Default[bool]()(maybe.Just("true")); !maybe.Equal(got, maybe.Just(true)) {
			t.Errorf("wrong bool: %v", got)
		}
		if got := Default[bool]()(maybe.Just("yes")); got.Ok() {
			t.Errorf("yes parsed: %v", got)
		}
	})

	t.Run("duration", func(t *testing.T) {
		if got := Default[time.Duration]()(maybe.Just("1m30s")); !maybe.Equal(got, maybe.Just(90*time.Second)) {
			t.Errorf("wrong duration: %v", got)
		}
		if got := Default[time.Duration]()(maybe.Just("90")); got.Ok() {
			t.Errorf("duration without unit parsed: %v", got)
		}
	})

	t.Run("named type", func(t *testing.T) {
		type level int
		if got := Default[level]()(maybe.Just("3")); !maybe.Equal(got, maybe.Just(level(3))) {
			t.Errorf("wrong level: %v", got)
		}
	})

	t.Run("text unmarshaler", func(t *testing.T) {
		got := Default[netip.Addr]()(maybe.Just("127.0.0.1"))
		if v, ok := got.Get(); !ok || v != netip.MustParseAddr("127.0.0.1") {
			t.Errorf("wrong address: %v", got)
		}
		if got := Default[netip.Addr]()(maybe.Just("localhost")); got.Ok() {
			t.Errorf("hostname parsed: %v", got)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil || !strings.Contains(r.(string), "no default parser") {
				t.Errorf("wrong panic: %v", r)
			}
		}()
		Default[chan int]()
	})
}

func TestVoid(t *testing.T) {
	if !Void()(maybe.Nothing[string]()).Ok() {
		t.Errorf("void failed on nothing")
	}
	if !Void()(maybe.Just("fish")).Ok() {
		t.Errorf("void failed on a value")
	}
}

func TestKeywords(t *testing.T) {
	parser := Keywords(Keyword[int]{"one", 1}, Keyword[int]{"two", 2})

	if got := parser(maybe.Just("one")); !maybe.Equal(got, maybe.Just(1)) {
		t.Errorf("wrong value: %v", got)
	}
	if got := parser(maybe.Just("two")); !maybe.Equal(got, maybe.Just(2)) {
		t.Errorf("wrong value: %v", got)
	}
	for _, input := range []string{"three", "", " one", "one ", "on", "One"} {
		if got := parser(maybe.Just(input)); got.Ok() {
			t.Errorf("keyword %q matched: %v", input, got)
		}
	}
	if got := parser(maybe.Nothing[string]()); got.Ok() {
		t.Errorf("nothing matched: %v", got)
	}

	first := Keywords(Keyword[int]{"x", 1}, Keyword[int]{"x", 2})
	if got := first(maybe.Just("x")); !maybe.Equal(got, maybe.Just(1)) {
		t.Errorf("first keyword did not win: %v", got)
	}
}

func TestDelimited(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		parser := DelimitedDefault[int]('/')
		tests := []struct {
			input    string
			expected maybe.Maybe[[]int]
		}{
			{"1/2/3", maybe.Just([]int{1, 2, 3})},
			{"", maybe.Just([]int{})},
			{"7", maybe.Just([]int{7})},
			{"/2", maybe.Nothing[[]int]()},
			{"1/", maybe.Nothing[[]int]()},
			{"1a/2", maybe.Nothing[[]int]()},
		}
		for _, tt := range tests {
			got := parser(maybe.Just(tt.input))
			if diff := cmp.Diff(tt.expected.Ptr(), got.Ptr()); diff != "" {
				t.Errorf("delimited(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		}
	})

	t.Run("empty segments", func(t *testing.T) {
		parser := DelimitedDefault[string]('/')
		tests := []struct {
			input    string
			expected []string
		}{
			{"", []string{}},
			{"/", []string{"", ""}},
			{"//", []string{"", "", ""}},
			{"a/", []string{"a", ""}},
			{"/a", []string{"", "a"}},
		}
		for _, tt := range tests {
			got, ok := parser(maybe.Just(tt.input)).Get()
			if !ok {
				t.Errorf("delimited(%q) failed", tt.input)
				continue
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("delimited(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		}
	})

	t.Run("keywords", func(t *testing.T) {
		parser := Delimited(DefaultDelimiter, Keywords(Keyword[int]{"one", 1}, Keyword[int]{"two", 2}))
		got, ok := parser(maybe.Just("one,one,two")).Get()
		if !ok {
			t.Fatalf("failed to parse")
		}
		if diff := cmp.Diff([]int{1, 1, 2}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		for _, input := range []string{"one, one,two", "one,three"} {
			if got := parser(maybe.Just(input)); got.Ok() {
				t.Errorf("delimited(%q) parsed: %v", input, got)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		values := []float64{1, -2.5, 1e10, 0}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		got, ok := DelimitedDefault[float64](';')(maybe.Just(strings.Join(parts, ";"))).Get()
		if !ok {
			t.Fatalf("failed to parse %v", parts)
		}
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		if got := DelimitedDefault[int](',')(maybe.Nothing[string]()); got.Ok() {
			t.Errorf("nothing parsed: %v", got)
		}
	})
}
