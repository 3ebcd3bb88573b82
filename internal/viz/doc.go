// Package viz renders Lorenz trajectory sets in the terminal and to images.
//
// [Scene] is the retained-mode surface the animation updater draws into.
// Renderers read it back:
//
//   - [DrawScene]: colored braille canvas for the TUI
//   - [RenderImage]: RGBA frame for GIF and still export
//
// [Model] is the Bubble Tea program that plays a set interactively.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from frame 0
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	[]    - Seek 10 frames back/forward
//
// # Recording
//
// Recordings are saved to lorenz.gif in the current directory.
package viz

import "errors"

var ErrNoFrames = errors.New("no frames captured")
