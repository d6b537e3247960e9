// Package key defines the key event type consumed by the mode handlers and
// its conversion from tcell terminal events.
package key
