package web

// Rect is a container's vertical extent relative to the viewport top,
// as reported by getBoundingClientRect.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// NavVisible reports whether the navigation bar should show: true while any
// part of the container is inside a viewport of the given height.
func NavVisible(container Rect, viewportHeight float64) bool {
	return container.Bottom > 0 && container.Top < viewportHeight
}
