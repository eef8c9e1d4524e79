// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNothingToServe is returned by NewServer when there is no HTTP handler
// or no address to listen on.
var errNothingToServe = errors.New("server has no handler or listen address")
