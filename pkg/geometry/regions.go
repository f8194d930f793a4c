package geometry

const (
	// CloseRegionSize is the edge length of the square close control.
	CloseRegionSize = 24.0
	// ResizeRegionSize is the edge length of the square resize handle.
	ResizeRegionSize = 20.0
	// RegionMargin is the gap between a control and the edges it is anchored to.
	RegionMargin = 8.0
)

// CloseRegion returns the close control's hit region for a surface of the
// given size, flush to the top-right corner minus the margin.
func CloseRegion(bounds Size) Rect {
	return Rect{
		X: bounds.W - CloseRegionSize - RegionMargin,
		Y: RegionMargin,
		W: CloseRegionSize,
		H: CloseRegionSize,
	}
}

// ResizeRegion returns the resize handle's hit region, flush to the
// bottom-right corner minus the margin.
func ResizeRegion(bounds Size) Rect {
	return Rect{
		X: bounds.W - ResizeRegionSize - RegionMargin,
		Y: bounds.H - ResizeRegionSize - RegionMargin,
		W: ResizeRegionSize,
		H: ResizeRegionSize,
	}
}
