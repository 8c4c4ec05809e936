package input

// Source is the classified origin of a pointer.
type Source uint8

const (
	SourceUnknown Source = iota
	SourceStylus
	SourceEraser
	SourceFinger
	SourceMouse
)

// SourceOf classifies a reported tool type.
func SourceOf(t ToolType) Source {
	switch t {
	case ToolStylus:
		return SourceStylus
	case ToolEraser:
		return SourceEraser
	case ToolFinger:
		return SourceFinger
	case ToolMouse:
		return SourceMouse
	default:
		return SourceUnknown
	}
}

// IsPen reports whether s is either end of a pen.
func (s Source) IsPen() bool {
	return s == SourceStylus || s == SourceEraser
}

func (s Source) String() string {
	switch s {
	case SourceStylus:
		return "Stylus"
	case SourceEraser:
		return "Eraser"
	case SourceFinger:
		return "Finger"
	case SourceMouse:
		return "Mouse"
	default:
		return "Unknown"
	}
}
