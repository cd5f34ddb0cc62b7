// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package shellquote - POSIX shell compatible single quote escaping.
//
// Quoted text can be pasted into a shell as is. Split and SplitRecords read
// it back: single quotes group text literally, a backslash outside quotes
// escapes the next character and whitespace separates fields. SplitRecords
// also ends a record on every newline found outside quotes.
package shellquote

import "strings"

// special - characters that force a token to be quoted.
const special = "\\*?[#~=%|^;<>()$'`\" \t\n\r"

// Quote - returns s as a single shell word.
//
// Tokens without special characters are returned unchanged, anything else is
// wrapped in single quotes with each internal quote written as '\''.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, special) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			b.WriteString(`'\''`)
			continue
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('\'')
	return b.String()
}

// Join - quotes every token and joins them with a single space.
func Join(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = Quote(t)
	}
	return strings.Join(quoted, " ")
}

// Split - splits s into words. Newlines are plain whitespace.
func Split(s string) []string {
	t := tokenizer{}
	t.run(s, false)
	out := []string{}
	for _, r := range t.records {
		out = append(out, r...)
	}
	return out
}

// SplitRecords - splits s into records of words, one record per line.
//
// Quoted newlines are part of the word that holds them. Blank lines produce
// no record. An unterminated quote at the end of s keeps the partial record.
func SplitRecords(s string) [][]string {
	t := tokenizer{}
	t.run(s, true)
	return t.records
}

type tokenizer struct {
	records [][]string
	fields  []string
	word    strings.Builder
	inWord  bool // a word has started, possibly empty: ''
}

func (t *tokenizer) endWord() {
	if !t.inWord {
		return
	}
	t.fields = append(t.fields, t.word.String())
	t.word.Reset()
	t.inWord = false
}

func (t *tokenizer) endRecord() {
	t.endWord()
	if len(t.fields) == 0 {
		return
	}
	t.records = append(t.records, t.fields)
	t.fields = nil
}

func (t *tokenizer) run(s string, lines bool) {
	quote, escape := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote:
			if c == '\'' {
				quote = false
				continue
			}
			t.word.WriteByte(c)
		case escape:
			escape = false
			if c == '\n' {
				// Line continuation.
				continue
			}
			t.inWord = true
			t.word.WriteByte(c)
		case c == '\\':
			escape = true
		case c == '\'':
			quote = true
			t.inWord = true
		case c == '\n' && lines:
			t.endRecord()
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			t.endWord()
		default:
			t.inWord = true
			t.word.WriteByte(c)
		}
	}
	t.endRecord()
}
