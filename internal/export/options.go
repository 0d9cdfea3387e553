package export

import "github.com/jonboulle/clockwork"

// Option configures rendering.
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock sets the clock used to stamp exports. The default is the real
// clock.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
