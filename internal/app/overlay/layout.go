package overlay

// Rect is an axis-aligned rectangle in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Geometry is the host display information the overlay draws against.
// The safe area uses a bottom-left origin.
type Geometry struct {
	SafeArea      Rect
	DisplayHeight int
}

// DrawRect converts a bottom-left origin safe area into top-left draw coordinates
func DrawRect(g Geometry) Rect {
	return Rect{
		X:      g.SafeArea.X,
		Y:      g.DisplayHeight - g.SafeArea.Height - g.SafeArea.Y,
		Width:  g.SafeArea.Width,
		Height: g.SafeArea.Height,
	}
}

// Layout caches the draw rectangle and recomputes it only when geometry changes
type Layout struct {
	geometry   Geometry
	rect       Rect
	bannerRate float64
	valid      bool
}

// NewLayout creates a layout; bannerRate is the banner height share of the draw rect
func NewLayout(bannerRate float64) *Layout {
	return &Layout{bannerRate: bannerRate}
}

// Apply updates the geometry and reports whether the draw rect was recomputed
func (l *Layout) Apply(g Geometry) bool {
	if l.valid && l.geometry == g {
		return false
	}

	l.geometry = g
	l.rect = DrawRect(g)
	l.valid = true

	return true
}

// Ready reports whether geometry has been applied
func (l *Layout) Ready() bool {
	return l.valid
}

// Rect returns the full draw rectangle used by the detail view
func (l *Layout) Rect() Rect {
	return l.rect
}

// Banner returns the compact banner rectangle at the top of the draw rect
func (l *Layout) Banner() Rect {
	r := l.rect

	height := int(float64(r.Height) * l.bannerRate)
	if height < minBannerHeight {
		height = minBannerHeight
	}

	if height > r.Height {
		height = r.Height
	}

	r.Height = height

	return r
}

// TerminalGeometry treats the whole terminal as the safe area
func TerminalGeometry(width, height int) Geometry {
	return Geometry{
		SafeArea:      Rect{X: 0, Y: 0, Width: width, Height: height},
		DisplayHeight: height,
	}
}
