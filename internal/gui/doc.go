// Package gui plays a trajectory set in a raylib window.
//
// The window host shares the animation updater and scene with the
// terminal player; only drawing differs. Data z maps to the window's
// vertical axis.
package gui
