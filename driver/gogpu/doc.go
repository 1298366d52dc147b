// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpu provides the windowing driver backed by gogpu/gogpu.
//
// Import it for its registration side effect:
//
//	import _ "github.com/gogpu/peck/driver/gogpu"
//
// The driver registers at high priority, so a blank import is all an
// application needs for automatic selection to pick it. gogpu owns the
// native event loop; the driver translates its callbacks into raw
// events and exposes each frame's draw context as a surface frame.
package gogpu
