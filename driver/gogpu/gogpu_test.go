// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"testing"

	"github.com/gogpu/peck/driver"
)

func TestRegistered(t *testing.T) {
	entry, ok := driver.Get(Name)
	if !ok {
		t.Fatal("gogpu driver not registered")
	}
	if entry.Priority != Priority {
		t.Errorf("priority = %d, want %d", entry.Priority, Priority)
	}
}

func TestCreateSurfaceRequiresOwnWindow(t *testing.T) {
	d := New()
	if _, err := d.CreateSurface(nil); !errors.Is(err, ErrNoWindow) {
		t.Errorf("CreateSurface(nil) = %v, want ErrNoWindow", err)
	}
}

func TestRequestExitStopsEmission(t *testing.T) {
	d := New()
	delivered := 0
	d.loop = func(driver.Event) { delivered++ }

	d.emit(driver.RedrawRequested{})
	d.RequestExit(0)
	d.emit(driver.RedrawRequested{})

	if delivered != 1 {
		t.Errorf("delivered %d events, want 1", delivered)
	}
}
