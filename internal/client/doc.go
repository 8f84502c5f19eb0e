// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the courses API.
//
// It wires cobra commands to the API adapter and renders the answers as
// tables. Basic credentials come from the client configuration and can be
// overridden per invocation with flags.
package client
