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
	"path/filepath"

	"github.com/DavidGamba/go-tinyopt/text"
)

// Usage - writes "Usage: <program> <synopsis>" to w, program being the base name of argv0.
func Usage(w io.Writer, argv0, synopsis string) {
	fmt.Fprintf(w, "%s %s %s\n", text.UsagePrefix, filepath.Base(argv0), synopsis)
}

// UsageError - writes "<program>: <err>" followed by the Usage line to w.
func UsageError(w io.Writer, argv0, synopsis string, err error) {
	fmt.Fprintf(w, "%s: %s\n", filepath.Base(argv0), err)
	Usage(w, argv0, synopsis)
}
