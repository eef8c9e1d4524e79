// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

const buildValueUnknown = "N/A"

// AppBuildInfo is the version metadata linked into a binary with -ldflags.
// Values that were not linked read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linked build variables.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) Version() string { return orUnknown(a.version) }

func (a AppBuildInfo) Date() string { return orUnknown(a.date) }

func (a AppBuildInfo) Commit() string { return orUnknown(a.commit) }

// WriteTo prints the build banner both binaries show on start.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.Version(), a.Date(), a.Commit())
	return int64(n), err
}

func orUnknown(v string) string {
	if v == "" {
		return buildValueUnknown
	}
	return v
}
