package overlay

import "time"

// Frame timing
const (
	// FrameInterval is how often the overlay polls the navigator
	FrameInterval = 100 * time.Millisecond

	// FramesPerSecond drives the pulse spring
	FramesPerSecond = int(time.Second / FrameInterval)
)

// Layout constants
const (
	minBannerHeight = 1
	detailHeader    = 1
	detailFooter    = 1
	fallbackWidth   = 80
	fallbackHeight  = 24
	bannerPadding   = 2
)
