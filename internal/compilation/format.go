package compilation

// DefaultCommandAsArray is the wire shape written when nothing is configured
const DefaultCommandAsArray = true

// Format selects the wire shape used when a database is saved. Loading
// auto-detects the shape of each record and never consults the format.
//
// Other attributes might attach here later, e.g. whether output is written
// at all, or whether paths are kept absolute.
type Format struct {
	commandAsArray bool
}

// NewFormat returns a format with defaults applied
func NewFormat() *Format {
	return &Format{commandAsArray: DefaultCommandAsArray}
}

// SetCommandAsArray selects between the "arguments" array shape (true) and
// the single shell-quoted "command" string shape (false). Returns the same
// format for chaining.
func (f *Format) SetCommandAsArray(value bool) *Format {
	f.commandAsArray = value
	return f
}

// IsCommandAsArray reports which wire shape Save will emit
func (f *Format) IsCommandAsArray() bool {
	return f.commandAsArray
}
