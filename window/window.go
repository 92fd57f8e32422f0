// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window defines the contract between interactive render targets
// and the platform window system.
//
// A Driver owns the event loop. It delivers input to an App through Handle
// and asks the App for a frame to present through Frame. Both calls happen
// on the goroutine running the loop, so App implementations need no
// locking of their own.
package window

import (
	"errors"
	"image"
)

// ErrQuit is returned by App.Handle to end the event loop. Drivers treat
// it as a clean shutdown and return nil from Run.
var ErrQuit = errors.New("window: quit")

// EventType identifies the kind of an input event.
type EventType int

const (
	// MouseDown is a button press at X, Y.
	MouseDown EventType = iota + 1

	// MouseUp is a button release at X, Y.
	MouseUp

	// MouseMove is a cursor move to X, Y.
	MouseMove

	// Wheel is a scroll of WheelY notches; positive scrolls away from
	// the user.
	Wheel

	// KeyPress is a typed character in Key.
	KeyPress
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case Wheel:
		return "Wheel"
	case KeyPress:
		return "KeyPress"
	default:
		return "Unknown"
	}
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is one input event. X and Y are in window pixels with the origin
// at the top-left corner.
type Event struct {
	Type   EventType
	X, Y   int
	Button Button
	Key    rune
	WheelY float64
}

// App is driven by a Driver.
type App interface {
	// Handle processes one input event. Returning ErrQuit ends the loop;
	// any other error aborts it and is returned from Driver.Run.
	Handle(ev Event) error

	// Frame returns the image to present for a window of the given size.
	// The image must be exactly width x height.
	Frame(width, height int) (*image.RGBA, error)
}

// Options configures the window a Driver opens.
type Options struct {
	Title  string
	Width  int
	Height int
}

// Driver runs an App in a platform window.
type Driver interface {
	// Run opens the window and blocks until it is closed or the App ends
	// the loop. A close by the user or ErrQuit returns nil.
	Run(opts Options, app App) error
}
