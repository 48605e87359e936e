package windows

// chartDimensions applies the width/height clamp rules used for chart
// images: roughly the available width with a bounded aspect ratio.
func chartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.45)
	if h < 300 {
		h = 300
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// truncatePath shortens long file paths for status display.
func truncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	if max <= 1 {
		return "…"
	}
	return "…" + p[len(p)-max+1:]
}
