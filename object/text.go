package object

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ink"
)

// textMargin is the hit-test slack around a text label.
const textMargin = 2.0

// Text is a single line label. Content is stored in NFC so equal strings
// typed with different composition measure and compare alike. Glyphs are
// always drawn upright.
type Text struct {
	content string
	origin  ink.Point
	color   ink.RGBA
	face    font.Face
}

// NewText creates a label with its baseline origin at origin. A nil face
// uses basicfont.Face7x13.
func NewText(content string, origin ink.Point, c ink.RGBA, face font.Face) *Text {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Text{
		content: norm.NFC.String(content),
		origin:  origin,
		color:   c,
		face:    face,
	}
}

// Content returns the normalized text.
func (t *Text) Content() string { return t.content }

// Origin returns the baseline origin.
func (t *Text) Origin() ink.Point { return t.origin }

// Color returns the text color.
func (t *Text) Color() ink.RGBA { return t.color }

// Bounds returns the ink bounds of the drawn glyphs.
func (t *Text) Bounds() ink.Rect {
	if t.content == "" {
		return ink.Rect{}
	}
	return ink.MeasureString(t.face, t.content, t.origin)
}

// Move translates the label.
func (t *Text) Move(dx, dy float64) {
	t.origin = t.origin.Add(ink.V2(ink.Finite(dx, 0), ink.Finite(dy, 0)))
}

// HitTest reports whether pt is on or near the glyph bounds.
func (t *Text) HitTest(pt ink.Point) bool {
	if t.content == "" {
		return false
	}
	return t.Bounds().Grow(textMargin).Contains(pt)
}

// Draw renders the label.
func (t *Text) Draw(dc *ink.Canvas) {
	if t.content == "" {
		return
	}
	dc.DrawStringFace(t.face, t.content, t.origin, t.color)
}

// Clone returns a copy. The face is shared.
func (t *Text) Clone() *Text {
	c := *t
	return &c
}
