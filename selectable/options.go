package selectable

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures a List.
type Option func(*options)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
