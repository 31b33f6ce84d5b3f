package domain

// LayoutBlock is the rectangle a booking occupies on a vertical pixel
// timeline. Derived and ephemeral: recomputed on every date or config change,
// never persisted or cached across renders.
type LayoutBlock struct {
	BookingID    string
	TopOffset    float64 // >= 0, pixels from the top of the visible window
	HeightPixels float64 // >= MinBlockHeightPixels
	Pending      bool
	Past         bool
}
