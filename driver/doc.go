// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package driver defines the windowing platform abstraction peck runs
// on: a raw event stream, a window handle, and a presentable surface.
//
// Platform bindings register themselves in the driver registry, usually
// from an init function:
//
//	func init() {
//	    driver.Register("gogpu", 100, factory, available)
//	}
//
// and applications select one implicitly (best available, by priority)
// or explicitly by name. The headless driver ships in
// peck/driver/headless and is always available, which keeps tests and
// CI free of display dependencies.
//
// Raw events deliberately mirror what windowing systems emit: physical
// pixel coordinates, separate pixel/line wheel deltas, possibly
// unresolved keycodes. Normalization into the user-facing event set is
// peck's job, not the driver's.
package driver
