package producer

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runlog/internal/app/severity"
	"runlog/internal/app/stream"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

type recorder struct {
	mu     sync.Mutex
	events []stream.Event
}

func (r *recorder) handle(e stream.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []stream.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]stream.Event(nil), r.events...)
}

func newTestProducer(t *testing.T, rate time.Duration) (*producer, *recorder) {
	t.Helper()

	return newTestProducerAt(t, rate, logger.TraceLevel)
}

func newTestProducerAt(t *testing.T, rate time.Duration, level string) (*producer, *recorder) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Logging.Level = level

	hub := stream.NewHub()
	t.Cleanup(hub.Close)

	rec := &recorder{}
	hub.Subscribe(rec.handle)

	p := newProducer(rate, rand.New(rand.NewPCG(1, 2)), hub, logger.NewLoggerWithOutput(cfg, io.Discard))

	return p, rec
}

func Test_Emit_PublishesMatchingSeverity(t *testing.T) {
	p, rec := newTestProducer(t, time.Second)

	var emitted []severity.Severity
	for i := 0; i < 200; i++ {
		emitted = append(emitted, p.Emit())
	}

	events := rec.snapshot()
	require.Len(t, events, len(emitted))

	seen := map[severity.Severity]bool{}

	for i, e := range events {
		assert.Equal(t, emitted[i], e.Severity)
		assert.NotEmpty(t, e.Message)
		assert.Contains(t, messages[e.Severity], e.Message)

		seen[e.Severity] = true
	}

	for _, sev := range severity.All {
		assert.True(t, seen[sev], "severity %s never emitted", sev)
	}
}

func Test_Emit_IgnoresAppLogLevel(t *testing.T) {
	for _, level := range []string{logger.InfoLevel, logger.ErrorLevel} {
		t.Run(level, func(t *testing.T) {
			p, rec := newTestProducerAt(t, time.Second, level)

			emitted := map[severity.Severity]int{}
			for i := 0; i < 200; i++ {
				emitted[p.Emit()]++
			}

			published := map[severity.Severity]int{}
			for _, e := range rec.snapshot() {
				published[e.Severity]++
			}

			assert.Equal(t, emitted, published)
			assert.Positive(t, published[severity.Info])
			assert.Positive(t, published[severity.Warning])
		})
	}
}

func Test_Emit_Detail(t *testing.T) {
	p, rec := newTestProducer(t, time.Second)

	for i := 0; i < 200; i++ {
		p.Emit()
	}

	for _, e := range rec.snapshot() {
		switch e.Severity {
		case severity.Error:
			assert.Contains(t, e.Detail, "error: "+e.Message)
			assert.Regexp(t, `request_id=[0-9a-f-]{36}`, e.Detail)
		case severity.Exception:
			assert.Contains(t, e.Detail, "error: "+e.Message)
			assert.Contains(t, e.Detail, "producer.go")
		case severity.Assert:
			assert.NotContains(t, e.Detail, stream.AssertField)
		case severity.Warning:
			assert.Contains(t, e.Detail, "attempt=")
		}

		assert.Contains(t, e.Detail, "component=DEMO")
	}
}

func Test_Run_StopsOnCancel(t *testing.T) {
	p, rec := newTestProducer(t, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- p.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("producer did not stop")
	}
}

func Test_NewProducer(t *testing.T) {
	cfg := config.DefaultConfig()
	hub := stream.NewHub()
	defer hub.Close()

	p := NewProducer(cfg, hub, logger.Nop())

	assert.NotNil(t, p)
}
