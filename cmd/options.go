package cmd

// Options holds the shared command-line options for the propsbot CLI.
type Options struct {
	Repo      string // owner/name
	Number    int    // pull request number
	Format    string // text, trailers, json
	Verbosity int
	NoColor   bool
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRepo sets the target repository (owner/name).
func WithRepo(repo string) Option {
	return func(o *Options) {
		o.Repo = repo
	}
}

// WithNumber sets the pull request number.
func WithNumber(number int) Option {
	return func(o *Options) {
		o.Number = number
	}
}

// WithFormat sets the output format (text, trailers, json).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
