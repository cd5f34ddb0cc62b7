// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tinyopt

import (
	"errors"

	"github.com/DavidGamba/go-tinyopt/maybe"
	"github.com/DavidGamba/go-tinyopt/text"
)

// ErrorParsing - Indicates that a sink rejected the value given to an option.
var ErrorParsing = errors.New(text.ErrorParsing)

// ErrorMissingArgument - Indicates that an option that takes a value was the last argument.
var ErrorMissingArgument = errors.New(text.ErrorMissingArgument)

// ErrorMissingMandatoryOption - Indicates that a mandatory option was never matched.
var ErrorMissingMandatoryOption = errors.New(text.ErrorMissingMandatoryOption)

// ErrorUser - Raised by Fail sinks and NewUserError.
var ErrorUser = errors.New("user error")

// ErrorMalformedSavedOptions - Indicates a saved options record that can't be read back.
var ErrorMalformedSavedOptions = errors.New(text.ErrorMalformedSavedOptions)

// OptionError - error raised while matching options.
//
// Kind is one of the sentinel errors above and is what errors.Is compares
// against.
type OptionError struct {
	Kind  error
	Key   string              // key label the error refers to
	Value maybe.Maybe[string] // offending value, if any
	Msg   string              // overrides the Kind message
}

func (e *OptionError) Error() string {
	msg := e.Msg
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	arg := e.Key
	if e.Kind == ErrorUser || arg == "" {
		// keyless options report the argument itself
		arg = e.Value.OrElse(e.Key)
	}
	if arg == "" {
		return msg
	}
	return msg + ": " + arg
}

func (e *OptionError) Unwrap() error {
	return e.Kind
}

// NewUserError - builds an error printed as "msg: arg", or just msg when arg is empty.
//
//	return tinyopt.NewUserError(text.ErrorUnrecognizedArgument, args[0])
func NewUserError(msg, arg string) error {
	e := &OptionError{Kind: ErrorUser, Msg: msg}
	if arg != "" {
		e.Value = maybe.Just(arg)
	}
	return e
}

func parseError(key string, value maybe.Maybe[string]) error {
	return &OptionError{Kind: ErrorParsing, Key: key, Value: value}
}

func missingArgumentError(key string) error {
	return &OptionError{Kind: ErrorMissingArgument, Key: key}
}

func missingMandatoryError(key string) error {
	return &OptionError{Kind: ErrorMissingMandatoryOption, Key: key}
}
