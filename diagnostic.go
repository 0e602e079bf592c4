package tickseq

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrTickOutOfRange is reported when a single tick is outside the dense range.
	ErrTickOutOfRange = errors.New("tickseq: tick outside of sequence")
	// ErrRangeOutOfBounds is reported when a [lo, until) range had to be clamped.
	ErrRangeOutOfBounds = errors.New("tickseq: range outside of sequence")
	// ErrSinkClosed is returned by ChannelSink.ReportContext after Close.
	ErrSinkClosed = errors.New("tickseq: sink closed")
)

// Diagnostic describes a tolerated misuse of a sequence, or a failed write.
type Diagnostic struct {
	Op       string // method that reported, e.g. "Sequence.At"
	Sequence string // sequence name at the time of the call
	Tick     int    // requested tick, or lower bound for range operations
	Until    int    // exclusive upper bound for range operations, -1 otherwise
	LastTick int    // last tick when the condition was detected
	Err      error
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// NopSink drops every diagnostic.
type NopSink struct{}

func (NopSink) Report(Diagnostic) {}

// DefaultLogger is the logger behind the sink new sequences use when no
// WithSink option is given.
var DefaultLogger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "tickseq").Logger()

// LoggerSink writes diagnostics as structured zerolog events.
// Range violations are logged at warn level, everything else at error level.
type LoggerSink struct {
	Logger zerolog.Logger
}

// LogSink returns a Sink backed by logger.
func LogSink(logger zerolog.Logger) *LoggerSink {
	return &LoggerSink{Logger: logger}
}

func (s *LoggerSink) Report(d Diagnostic) {
	var ev *zerolog.Event
	if errors.Is(d.Err, ErrTickOutOfRange) || errors.Is(d.Err, ErrRangeOutOfBounds) {
		ev = s.Logger.Warn()
	} else {
		ev = s.Logger.Error()
	}
	ev = ev.Err(d.Err).
		Str("op", d.Op).
		Str("sequence", d.Sequence).
		Int("tick", d.Tick).
		Int("last_tick", d.LastTick)
	if d.Until >= 0 {
		ev = ev.Int("until", d.Until)
	}
	ev.Msg("sequence diagnostic")
}

// ChannelSink forwards diagnostics to a Go channel.
// Report never blocks: diagnostics are dropped when the channel is full,
// and after Close.
type ChannelSink struct {
	mu     sync.RWMutex
	ch     chan<- Diagnostic
	closed bool
}

// NewChannelSink creates a ChannelSink with the given output channel.
func NewChannelSink(ch chan<- Diagnostic) *ChannelSink {
	return &ChannelSink{ch: ch}
}

func (s *ChannelSink) Report(d Diagnostic) {
	_ = s.ReportContext(context.Background(), d)
}

// ReportContext is Report with a cancellation check before the send.
// After Close it drops d and returns ErrSinkClosed.
func (s *ChannelSink) ReportContext(ctx context.Context, d Diagnostic) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSinkClosed
	}
	select {
	case s.ch <- d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // non-blocking drop
	}
}

// Close closes the channel. Calling it again is a no-op.
func (s *ChannelSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	return nil
}

// MultiSink fans a diagnostic out to several sinks in order.
// Nil sinks are ignored.
func MultiSink(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multiSink []Sink

func (m multiSink) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}

// CountingSink counts diagnostics per operation. Useful as a cheap
// health signal next to a logging sink.
type CountingSink struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *CountingSink) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[d.Op]++
}

// Count returns the number of diagnostics reported for op.
func (c *CountingSink) Count(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[op]
}

// Total returns the number of diagnostics reported overall.
func (c *CountingSink) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}
