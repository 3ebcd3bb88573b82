// Package anim turns a precomputed trajectory set into per-frame render
// state.
//
// Everything a frame shows is a pure function of its index: [Window] picks
// the visible slice of each trajectory, [PoseAt] the camera angles, and the
// marker pulse depends only on the frame. [Updater] pushes that state into a
// [Surface], and [Driver] decides which frame to render next. Because no
// frame depends on the previous one, hosts may seek or drop frames freely.
package anim
