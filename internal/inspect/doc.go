// Package inspect implements the interactive presentation layer.
//
// The Session controller holds the current frame and object list as
// explicit state and consumes user events (pointer queries, next, quit)
// from a Display implementation. TerminalDisplay is the default Display:
// frames go to a scratch PNG for out-of-band viewing and events are read
// as terminal commands. The detection core never references a concrete
// display.
package inspect
