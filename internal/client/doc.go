// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive note client runtime.
//
// It restores or opens the session, starts the background note refresh and
// runs the terminal UI, returning to the sign-in screen after a logout.
package client
