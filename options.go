package grove

import "log/slog"

type options struct {
	logger          *slog.Logger
	lenientBooleans bool
}

// Option configures a container build or a [Coerce] call.
type Option func(*options)

// WithLogger sets the logger that receives per-bean debug records during
// the build. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLenientBooleans makes boolean literals other than "true" (in any
// case) coerce to false instead of failing with [ErrMalformedLiteral].
func WithLenientBooleans() Option {
	return func(o *options) {
		o.lenientBooleans = true
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
