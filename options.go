package tickseq

// Option configures a Sequence via the functional options pattern.
type Option func(*options)

type options struct {
	sink     Sink
	capacity int
}

func defaultOptions() options {
	return options{sink: LogSink(DefaultLogger)}
}

// WithSink configures the sink that receives diagnostics.
// A nil sink silences diagnostics.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s == nil {
			s = NopSink{}
		}
		o.sink = s
	}
}

// WithCapacity preallocates storage for n terms.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
