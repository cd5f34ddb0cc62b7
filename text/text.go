// This file is part of go-tinyopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorParsing - an option value could not be parsed.
var ErrorParsing = "option parse error"

// ErrorMissingArgument - an option that takes a value was given without one.
var ErrorMissingArgument = "option missing argument"

// ErrorMissingMandatoryOption - a mandatory option was never matched.
var ErrorMissingMandatoryOption = "missing mandatory option"

// ErrorMalformedSavedOptions - a saved options record holds more than a key and a value.
var ErrorMalformedSavedOptions = "malformed saved options record"

// ErrorUnrecognizedArgument - used by callers to report tokens left unmatched.
var ErrorUnrecognizedArgument = "unrecognized argument"

// UsagePrefix - heading of the usage line.
var UsagePrefix = "Usage:"
