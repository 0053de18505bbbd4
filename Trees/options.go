package Trees

import "github.com/rs/zerolog"

type options struct {
	log zerolog.Logger
}

// Option configures a tree at construction.
type Option func(*options)

// WithLogger makes the tree report structural mutations (splices, child
// promotions and successor replacements) at debug level on l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
