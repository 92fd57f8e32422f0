// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/window"
)

// motionFactor scales mouse motion into camera motion.
const motionFactor = 10

// TrackballCamera moves the camera of a scene with the mouse.
//
//   - left drag rotates the camera about the focal point
//   - right drag dollies towards or away from the focal point
//   - the wheel dollies in steps
//   - 'r' resets the camera to frame the scene
//   - 'q' or 'e' ends the event loop
type TrackballCamera struct {
	rotating bool
	dollying bool
	lastX    int
	lastY    int
}

// Handle applies ev to ren's camera for a window of size w x h. It reports
// whether the view changed, and returns window.ErrQuit for the quit keys.
func (tc *TrackballCamera) Handle(ev window.Event, ren *scene.Renderer, w, h int) (bool, error) {
	switch ev.Type {
	case window.MouseDown:
		switch ev.Button {
		case window.ButtonLeft:
			tc.rotating = true
		case window.ButtonRight:
			tc.dollying = true
		}
		tc.lastX, tc.lastY = ev.X, ev.Y
	case window.MouseUp:
		switch ev.Button {
		case window.ButtonLeft:
			tc.rotating = false
		case window.ButtonRight:
			tc.dollying = false
		}
	case window.MouseMove:
		dx, dy := ev.X-tc.lastX, tc.lastY-ev.Y
		tc.lastX, tc.lastY = ev.X, ev.Y
		if ren == nil || (dx == 0 && dy == 0) {
			return false, nil
		}
		switch {
		case tc.rotating:
			tc.rotate(ren, dx, dy, w, h)
			return true, nil
		case tc.dollying:
			dolly(ren, motionFactor*float32(dy)/(float32(max(h, 2))/2))
			return true, nil
		}
	case window.Wheel:
		if ren == nil || ev.WheelY == 0 {
			return false, nil
		}
		dolly(ren, motionFactor*0.2*float32(ev.WheelY))
		return true, nil
	case window.KeyPress:
		switch ev.Key {
		case 'q', 'Q', 'e', 'E':
			return false, window.ErrQuit
		case 'r', 'R':
			if ren == nil {
				return false, nil
			}
			ren.ResetCamera()
			return true, nil
		}
	}
	return false, nil
}

func (tc *TrackballCamera) rotate(ren *scene.Renderer, dx, dy, w, h int) {
	cam := ren.Camera()
	cam.Azimuth(float32(dx) * -20 / float32(max(w, 1)) * motionFactor)
	cam.Elevation(float32(dy) * -20 / float32(max(h, 1)) * motionFactor)
	cam.OrthogonalizeViewUp()
	ren.ResetCameraClippingRange()
}

// dolly moves the camera by 1.1^steps.
func dolly(ren *scene.Renderer, steps float32) {
	ren.Camera().Dolly(math32.Pow(1.1, steps))
	ren.ResetCameraClippingRange()
}
