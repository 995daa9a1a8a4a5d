package config

import "time"

// app constants
const (
	AppName        = "runlog"
	AppDescription = "in-process log capture with an unread-error overlay"
	Version        = "0.3.0"

	FileName     = "runlog.yaml"
	TOMLFileName = "runlog.toml"
	EnvFileName  = ".env"
	EnvPrefix    = "RUNLOG"
)

// config file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// logging constants
const (
	LogLevel  = "info"
	LogFormat = "console"
)

// capture constants
const (
	// DefaultBufferCapacity keeps every captured entry
	DefaultBufferCapacity = 0
)

// overlay constants
const (
	// DefaultBannerRate is the compact banner height as a share of the draw rect
	DefaultBannerRate = 0.04
)

// producer constants
const (
	DefaultProducerRate = 750 * time.Millisecond
)

// ShutdownTimeout bounds fx lifecycle stop hooks
const ShutdownTimeout = 5 * time.Second
