package sweep

import "github.com/sgostarter/i/l"

type Options struct {
	clock  Clock
	easing Easing
	logger l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.clock == nil {
		opts.clock = SystemClock()
	}

	if opts.easing == nil {
		opts.easing = FastOutSlowIn
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func WithClock(clock Clock) Option {
	return func(o *Options) {
		o.clock = clock
	}
}

func WithEasing(easing Easing) Option {
	return func(o *Options) {
		o.easing = easing
	}
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
