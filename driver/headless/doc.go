// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a windowless driver that replays a
// scripted event sequence through the event loop and renders frames
// into memory.
//
// It exists for tests and for offscreen rendering on machines without
// a display. The driver registers itself at low priority so a real
// windowing driver wins automatic selection when one is linked in:
//
//	import _ "github.com/gogpu/peck/driver/headless"
//
// Events pushed to the Driver before Run are delivered in order after
// the synthetic Resumed event. Presented frames can be inspected with
// Surface.Snapshot.
package headless
