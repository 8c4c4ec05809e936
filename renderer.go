package ink

// Renderer rasterizes filled paths into a pixmap.
type Renderer interface {
	// Fill fills every subpath of path with c using the nonzero winding
	// rule. Returns an error if the rendering operation fails.
	Fill(pixmap *Pixmap, path *Path, c RGBA) error
}
