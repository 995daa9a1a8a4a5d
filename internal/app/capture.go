package app

import (
	"context"

	"go.uber.org/fx"

	"runlog/internal/app/capture"
	"runlog/internal/app/navigator"
	"runlog/internal/app/stream"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

func newSource(hub stream.Hub) stream.Source {
	return hub
}

func newNavigator(cfg *config.Config, log logger.Logger) navigator.Navigator {
	return navigator.New(cfg.Buffer.Capacity, log)
}

func newSink(cfg *config.Config, source stream.Source, nav navigator.Navigator, log logger.Logger) (*capture.Sink, error) {
	mask, err := cfg.Mask()
	if err != nil {
		return nil, err
	}

	return capture.NewSink(source, nav, capture.Options{
		Mask:   mask,
		Ignore: cfg.Capture.Ignore,
	}, log)
}

// RegisterCapture subscribes the sink on start and releases the stream on stop
func RegisterCapture(lifecycle fx.Lifecycle, hub stream.Hub, sink *capture.Sink) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sink.Start()
		},
		OnStop: func(ctx context.Context) error {
			sink.Close()
			hub.Close()

			return nil
		},
	})
}
