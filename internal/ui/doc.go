// Package ui provides the demo host program that embeds the splash overlay.
//
// # Architecture Overview
//
// The host is a Bubble Tea program. Its Update loop is the UI context the
// splash controller requires: every controller method runs inside Update, and
// other goroutines reach the controller through the bridge, which forwards
// their calls as messages with Program.Send.
//
//	loader goroutine ──► bridge ──► Program.Send ──► Model.Update
//	                                                   │
//	                                     splash.Controller.Update
//	                                                   │
//	                                         overlay.Layer (frames)
//
// # Screens
//
//   - Splash: while the overlay is attached it covers the whole window
//   - Host: loading progress, controller status, isAnimating answer and the
//     onAnimationEnd events received so far
//   - Help: key bindings, opened with "?"
//
// # Keys
//
// Keys call the bridge like any embedding code would: s shows again, d and l
// show with a forced appearance, o shows the override animation, h hides and
// a reports the app as loaded.
package ui
