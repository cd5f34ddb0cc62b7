// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package tinyopt - small table driven command line option parser.

A program declares a table of options, each one a sink for its value plus
keys and behaviour flags, and runs it against the command line. Run leaves
the arguments it didn't match in place and returns a log of the options it
did match, which can be written to a file and replayed later.

# Features

• Short (`-n 3`), long (`--number 3`, `--number=3`) and compact keys.
Compact keys can be bundled: with compact `-a`, `-b` and `-c`, `-abc3` is
the same as `-a -b -c 3`.

• Sinks that assign, append, increment, set constants or call functions.
Values are converted with parsers: the Default parser for the destination
type, Keywords tables and Delimited lists.

• Keyless options that take the arguments no keyed option matched.

• Flag, Ephemeral, Single, Mandatory, Exit and Stop behaviour flags.

• Modal parsing: When restricts an option to some modes, Then switches the
mode after a match.

• `--` ends option processing, everything after it is left for the caller.

• Saved options: the log of matched options in a shell friendly text form,
replayed with Run before the command line.

• Parse and ParseFlag for programs that just want to loop over the
arguments one option at a time.

# Example

	var n int
	var verbose bool
	opts := []tinyopt.Option{
		tinyopt.New(tinyopt.Assign(&n), tinyopt.Keys("-n", "--number")),
		tinyopt.New(tinyopt.SetTrue(&verbose), tinyopt.Keys("-v"), tinyopt.Flag),
	}
	args := os.Args[1:]
	_, err := tinyopt.Run(opts, &args)
	if err != nil {
		tinyopt.UsageError(os.Stderr, os.Args[0], "[-n N] [-v]", err)
		os.Exit(1)
	}

Errors are *OptionError values; use errors.Is with ErrorParsing,
ErrorMissingArgument, ErrorMissingMandatoryOption or ErrorUser to tell them
apart.
*/
package tinyopt
