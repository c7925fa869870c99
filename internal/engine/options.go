package engine

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures a Pad during creation.
type Option func(*Pad)

// WithContent sets the initial content of the pad.
func WithContent(content string) Option {
	return func(p *Pad) {
		p.initContent = content
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(p *Pad) {
		if max > 0 {
			p.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only pad.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(p *Pad) {
		p.readOnly = true
	}
}
