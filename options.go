package ink

import "golang.org/x/image/font"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default software rendering
//	dc := ink.NewCanvas(800, 600)
//
//	// Render into an existing pixmap
//	dc := ink.NewCanvas(800, 600, ink.WithPixmap(pm))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer Renderer
	pixmap   *Pixmap
	face     font.Face
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		renderer: nil, // SoftwareRenderer
		pixmap:   nil, // sized from NewCanvas arguments
		face:     nil, // basicfont.Face7x13
	}
}

// WithRenderer sets a custom renderer for the Canvas.
func WithRenderer(r Renderer) CanvasOption {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithPixmap renders into an existing pixmap. The width and height passed
// to NewCanvas are ignored.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithFace sets the font face used for text drawables.
func WithFace(face font.Face) CanvasOption {
	return func(o *canvasOptions) {
		o.face = face
	}
}
