// Package history provides reversible edit commands and the linear
// undo/redo history that owns them.
//
// Every buffer mutation made through an editing action is expressed as a
// Command that captures enough state to undo itself. The History keeps the
// executed commands in order; undoing and then executing a new command
// truncates the stale redo branch, so the history is a line, not a tree.
package history
