// Package object holds committed canvas objects.
//
// Strokes keep their recorded points untouched and cache the built outline
// until the next move. The other drawables (polylines, shapes and text
// labels) share the same Draw, HitTest, Move, Clone and Bounds operations
// through the sealed Drawable interface.
package object
