// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view derives the ordered list of notes the presentation layer
// renders. It is a pure function of a note snapshot and the active filters:
// it never mutates its input, performs no I/O and never fails.
//
// Filtering is the conjunction of a text query, a section selector and a
// date filter. Sorting always places pinned notes first, then orders each
// partition by the sort key with a stable sort, so ties keep collection
// order.
package view
