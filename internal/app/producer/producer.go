//go:generate mockgen -source=producer.go -destination=producer_mock.go -package=producer
package producer

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"runlog/internal/app/severity"
	"runlog/internal/app/stream"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

// Module provides the demo producer
var Module = fx.Options(
	fx.Provide(NewProducer),
)

var messages = map[severity.Severity][]string{
	severity.Info: {
		"cache warmed",
		"request served",
		"worker idle",
	},
	severity.Warning: {
		"slow query",
		"retrying upstream call",
		"queue above high watermark",
	},
	severity.Error: {
		"upstream returned 502",
		"failed to decode payload",
		"connection reset by peer",
	},
	severity.Assert: {
		"invariant violated: negative balance",
		"unexpected nil handler",
	},
	severity.Exception: {
		"index out of range",
		"nil pointer dereference",
	},
}

// Producer emits synthetic host log records through the stream writer
type Producer interface {
	Run(ctx context.Context) error
	Emit() severity.Severity
}

type producer struct {
	rate time.Duration
	rng  *rand.Rand
	log  logger.Logger
}

// NewProducer creates a producer writing to hub at the configured rate
func NewProducer(cfg *config.Config, hub stream.Hub, log logger.Logger) Producer {
	//nolint:gosec // weak random is fine for demo traffic
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	return newProducer(cfg.Producer.Rate, rng, hub, log)
}

func newProducer(rate time.Duration, rng *rand.Rand, hub stream.Hub, log logger.Logger) *producer {
	return &producer{
		rate: rate,
		rng:  rng,
		log:  log.WithComponent("DEMO").WithOutput(stream.NewWriter(hub)).WithMinLevel(zerolog.TraceLevel),
	}
}

// Run emits one record per tick until ctx is cancelled
func (p *producer) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Emit()
		}
	}
}

// Emit writes a single record of random severity and returns that severity
func (p *producer) Emit() severity.Severity {
	sev := severity.All[p.rng.IntN(len(severity.All))]
	pool := messages[sev]
	msg := pool[p.rng.IntN(len(pool))]

	switch sev {
	case severity.Warning:
		p.log.Warn().Int("attempt", p.rng.IntN(5)+1).Msg(msg)
	case severity.Error:
		p.log.Error().Str("request_id", uuid.NewString()).Err(errors.New(msg)).Msg(msg)
	case severity.Assert:
		p.log.Error().Bool(stream.AssertField, true).Msg(msg)
	case severity.Exception:
		p.log.WithLevel(zerolog.FatalLevel).Stack().Err(errors.New(msg)).Msg(msg)
	default:
		p.log.Info().Msg(msg)
	}

	return sev
}
