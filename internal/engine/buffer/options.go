package buffer

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithPath sets the file path associated with the buffer.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithStrictModified controls how the modified flag is maintained.
//
// By default the flag is set by every mutating call, including a DeleteText
// whose range does not fit and therefore removes nothing. Strict mode only
// sets the flag when the buffer content actually changed.
func WithStrictModified(strict bool) Option {
	return func(b *Buffer) {
		b.strictModified = strict
	}
}
