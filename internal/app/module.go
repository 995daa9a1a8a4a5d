package app

import (
	"go.uber.org/fx"

	"runlog/internal/app/cli"
	"runlog/internal/app/generator"
	"runlog/internal/app/overlay"
	"runlog/internal/app/producer"
	"runlog/internal/app/stream"
)

var Module = fx.Options(
	fx.Provide(
		stream.NewHub,
		newSource,
		newNavigator,
		newSink,
	),
	producer.Module,
	overlay.Module,
	generator.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(RegisterCapture),
	fx.Invoke(Register),
)
