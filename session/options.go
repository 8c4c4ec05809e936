package session

import (
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/object"
	"github.com/gogpu/ink/outline"
)

// Option configures a Session.
//
// Example:
//
//	msgs := make(chan session.Message, 16)
//	s := session.New(
//	    session.WithStyle(session.Style{Width: 6, Color: ink.Black, Tilt: true}),
//	    session.WithMessages(msgs),
//	)
type Option func(*Session)

// WithBuilder sets the outline builder for committed strokes and preview
// widths. A nil builder is ignored.
func WithBuilder(b *outline.Builder) Option {
	return func(s *Session) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithMessages sets the channel notifications are sent on. Sends block, so
// the receiver must keep draining the channel while events are handled.
func WithMessages(ch chan<- Message) Option {
	return func(s *Session) {
		s.messages = ch
	}
}

// WithCalibration shares a pressure calibration with other sessions. A nil
// calibration is ignored.
func WithCalibration(c *input.Calibration) Option {
	return func(s *Session) {
		if c != nil {
			s.calibration = c
		}
	}
}

// WithTransform sets the screen to canvas transform. A nil transform is
// ignored.
func WithTransform(t Transform) Option {
	return func(s *Session) {
		if t != nil {
			s.transform = t
		}
	}
}

// WithStyle sets the initial pen style.
func WithStyle(st Style) Option {
	return func(s *Session) {
		s.style = st.sanitize()
	}
}

// WithSmoothing sets the pressure smoothing factor applied at commit.
// Values outside (0, 1] are ignored.
func WithSmoothing(alpha float64) Option {
	return func(s *Session) {
		if alpha > 0 && alpha <= 1 {
			s.alpha = alpha
		}
	}
}

// WithTouchMarginFloor sets the smallest hit-test margin of committed
// strokes.
func WithTouchMarginFloor(m float64) Option {
	return func(s *Session) {
		if m >= 0 {
			s.marginFloor = m
		}
	}
}

func defaultSession() Session {
	return Session{
		transform:   IdentityTransform(),
		builder:     outline.NewBuilder(),
		alpha:       outline.DefaultAlpha,
		style:       DefaultStyle(),
		marginFloor: object.MinTouchMargin,
	}
}
