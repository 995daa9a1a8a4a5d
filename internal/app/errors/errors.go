package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrFailedToLoadEnv     = errors.New("failed to load env file")
	ErrUnknownFormat       = errors.New("unknown config format")

	ErrUnknownSeverity      = errors.New("unknown severity")
	ErrEmptySeverityMask    = errors.New("severity mask must contain at least one severity")
	ErrInvalidBufferSize    = errors.New("buffer capacity must not be negative")
	ErrInvalidBannerRate    = errors.New("banner rate must be within (0, 1]")
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
	ErrInvalidProducerRate  = errors.New("producer rate must be positive")

	ErrSinkAlreadyStarted = errors.New("capture sink already started")
	ErrStreamClosed       = errors.New("log stream closed")
	ErrFileExists         = errors.New("file already exists")
	ErrNotTerminal        = errors.New("stdout is not a terminal, use --no-ui")

	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
