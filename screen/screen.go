// Package screen pushes monochrome frames to a periph.io display with
// differential updates.
//
// Rendering a maze view redraws the whole frame, but between two frames only
// the walls that moved change. Dev keeps the last frame it pushed and forwards
// only the bounding rectangle of the changed pixels to the wrapped display,
// which keeps slow I²C panels responsive.
//
// See the examples for how to use this package.
package screen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/maze3d/mono"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts is the configuration for a Dev.
type Opts struct {
	// Logger for update traces (default: logrus standard logger)
	Logger logrus.FieldLogger
}

// Dev is a differential presenter in front of a display.Drawer.
type Dev struct {
	d   display.Drawer
	log logrus.FieldLogger

	rect image.Rectangle

	// Pixel buffers
	next *mono.Image // Frame being composed
	last *mono.Image // Last frame pushed to the display

	// State
	primed bool // A full frame has been pushed
	halted bool
}

// New wraps d.
//
// opts can be nil to use defaults.
func New(d display.Drawer, opts *Opts) (*Dev, error) {
	if d == nil {
		return nil, errors.New("screen: nil display")
	}
	if opts == nil {
		opts = &Opts{}
	}

	rect := d.Bounds()
	if rect.Empty() {
		return nil, fmt.Errorf("screen: %s has empty bounds", d)
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Dev{
		d:    d,
		log:  log,
		rect: rect,
		next: mono.New(rect),
		last: mono.New(rect),
	}, nil
}

// ColorModel returns the color model of the presenter.
func (s *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the bounds of the wrapped display.
func (s *Dev) Bounds() image.Rectangle {
	return s.rect
}

// Draw draws src onto the display, forwarding only the region that changed
// since the previous frame. The first frame is always pushed in full.
func (s *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if s.halted {
		return errors.New("screen: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(s.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full mono frame is copied instead of converted pixel by pixel
	if m, ok := src.(*mono.Image); ok && dst == s.rect && sp == s.rect.Min && m.Rect == s.rect {
		copy(s.next.Pix, m.Pix)
	} else {
		draw.Draw(s.next, dst, src, sp, draw.Src)
	}

	changed := s.rect
	if s.primed {
		changed = s.calculateDiff()
		if changed.Empty() {
			return nil
		}
	}

	if err := s.d.Draw(changed, s.next, changed.Min); err != nil {
		return fmt.Errorf("screen: update %v: %w", changed, err)
	}
	s.log.WithField("rect", changed).Trace("screen: pushed")

	copy(s.last.Pix, s.next.Pix)
	s.primed = true
	return nil
}

// calculateDiff compares the next and last frames and returns the minimal
// changed rectangle, aligned to 8-pixel columns and clipped to the display.
// The rectangle is empty if nothing changed.
func (s *Dev) calculateDiff() image.Rectangle {
	stride := s.next.Stride
	height := s.rect.Dy()

	minRow, maxRow := height, -1
	minByte, maxByte := stride, -1

	// Scan row by row to find differences
	for y := 0; y < height; y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride

		if bytes.Equal(s.last.Pix[rowStart:rowEnd], s.next.Pix[rowStart:rowEnd]) {
			continue
		}
		minRow = min(minRow, y)
		maxRow = max(maxRow, y)

		// Scan bytes within this row for precise boundaries
		for x := 0; x < stride; x++ {
			if s.last.Pix[rowStart+x] != s.next.Pix[rowStart+x] {
				minByte = min(minByte, x)
				maxByte = max(maxByte, x)
			}
		}
	}

	if maxRow < 0 {
		return image.Rectangle{}
	}

	// Each byte covers 8 pixels
	r := image.Rect(minByte*8, minRow, (maxByte+1)*8, maxRow+1).Add(s.rect.Min)
	return r.Intersect(s.rect)
}

// Invalidate forces the next Draw to push the full frame, for example after
// the panel was power cycled.
func (s *Dev) Invalidate() {
	s.primed = false
}

// Halt halts the wrapped display.
// After calling Halt, every further Draw fails.
func (s *Dev) Halt() error {
	if s.halted {
		return nil
	}
	s.halted = true
	return s.d.Halt()
}

// String returns a string representation of the device.
func (s *Dev) String() string {
	return fmt.Sprintf("screen.Dev{%s}", s.d)
}
