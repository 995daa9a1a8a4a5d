package capture

import (
	"sync"
	"sync/atomic"

	"github.com/gobwas/glob"

	"runlog/internal/app/errors"
	"runlog/internal/app/logbuf"
	"runlog/internal/app/navigator"
	"runlog/internal/app/severity"
	"runlog/internal/app/stream"
	"runlog/internal/config/logger"
)

// Stats counts events seen by the sink
type Stats struct {
	Accepted uint64
	Masked   uint64
	Ignored  uint64
}

// Sink filters host log events and records accepted ones on the navigator
type Sink struct {
	source  stream.Source
	mask    severity.Mask
	ignores []glob.Glob
	nav     navigator.Navigator
	log     logger.Logger

	mu       sync.Mutex
	sub      stream.Subscription
	watchers []func(logbuf.Entry)

	accepted atomic.Uint64
	masked   atomic.Uint64
	ignored  atomic.Uint64
}

// Options configures a sink
type Options struct {
	Mask severity.Mask
	// Ignore holds glob patterns; matching messages are dropped after the mask check
	Ignore []string
}

// NewSink creates a sink bound to source; it does not subscribe until Start
func NewSink(source stream.Source, nav navigator.Navigator, opts Options, log logger.Logger) (*Sink, error) {
	ignores := make([]glob.Glob, 0, len(opts.Ignore))

	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.ErrInvalidIgnorePattern
		}

		ignores = append(ignores, g)
	}

	return &Sink{
		source:  source,
		mask:    opts.Mask,
		ignores: ignores,
		nav:     nav,
		log:     log.WithComponent("CAPTURE"),
	}, nil
}

// Start subscribes to the source
func (s *Sink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return errors.ErrSinkAlreadyStarted
	}

	s.sub = s.source.Subscribe(s.handle)
	s.log.Debug().Msgf("Subscribed with mask [%s]", s.mask)

	return nil
}

// Close releases the subscription; it is safe to call more than once or before Start
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub == nil {
		return
	}

	s.sub.Unsubscribe()
	s.sub = nil

	stats := s.Stats()
	s.log.Debug().Msgf("Unsubscribed (accepted: %d, masked: %d, ignored: %d)", stats.Accepted, stats.Masked, stats.Ignored)
}

// OnEvent applies the mask and records accepted events. Unknown severities never
// match the mask and are dropped.
func (s *Sink) OnEvent(sev severity.Severity, message, detail string) bool {
	if !s.mask.Contains(sev) {
		s.masked.Add(1)
		return false
	}

	for _, g := range s.ignores {
		if g.Match(message) {
			s.ignored.Add(1)
			return false
		}
	}

	entry := s.nav.Append(sev, message, detail)
	s.accepted.Add(1)

	s.mu.Lock()
	watchers := s.watchers
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(entry)
	}

	return true
}

// Watch registers fn to be called with every accepted entry after it is recorded
func (s *Sink) Watch(fn func(logbuf.Entry)) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.watchers = append(s.watchers[:len(s.watchers):len(s.watchers)], fn)
}

// Stats returns event counters
func (s *Sink) Stats() Stats {
	return Stats{
		Accepted: s.accepted.Load(),
		Masked:   s.masked.Load(),
		Ignored:  s.ignored.Load(),
	}
}

func (s *Sink) handle(e stream.Event) {
	s.OnEvent(e.Severity, e.Message, e.Detail)
}
