package cadcodec

// Options holds configuration for reading and writing documents.
type Options struct {
	// Reading
	codePage        string // fallback when the file declares none
	codeWarnings    bool
	rawUnknown      bool
	danglingWarning bool

	// Writing
	passThrough bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() Options {
	return Options{
		codePage:        "",
		codeWarnings:    true,
		rawUnknown:      true,
		danglingWarning: false,
		passThrough:     false,
	}
}

// clone returns a copy of o. Options has no reference fields, so a value
// copy is complete.
func (o Options) clone() Options {
	return o
}
