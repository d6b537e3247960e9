// Package cursor keeps the cursor valid against buffer bounds, tracks the
// viewport scroll offset, and models the visual-mode selection.
package cursor
