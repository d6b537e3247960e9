// Package buffer provides the document buffer: an ordered sequence of text
// lines together with the cursor position, the associated file path, and the
// modified flag.
//
// The buffer is line oriented. It always contains at least one line; deleting
// the final line clears it instead of removing it. All mutating operations are
// total functions: out-of-range inputs are clamped or become no-ops, they
// never fail.
package buffer
