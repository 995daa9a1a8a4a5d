package cli

import (
	"io"

	"github.com/rs/zerolog"

	"runlog/internal/app/logbuf"
)

// printer writes accepted entries as JSON lines
type printer struct {
	log zerolog.Logger
}

func newPrinter(w io.Writer) *printer {
	return &printer{log: zerolog.New(w)}
}

func (p *printer) print(e logbuf.Entry) {
	event := p.log.Log().
		Uint64("seq", e.Seq).
		Time("time", e.Time).
		Str("severity", e.Severity.String()).
		Str("message", e.Message)

	if e.Detail != "" {
		event = event.Str("detail", e.Detail)
	}

	event.Send()
}
