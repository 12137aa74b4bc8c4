// Package mono provides a 1-bit horizontally packed frame buffer.
//
// Each byte holds 8 pixels; the high bit is the leftmost pixel.
package mono

import (
	"image"
	"image/color"
	"math/bits"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Image is a 1-bit image where pixels are packed horizontally, 8 per byte.
type Image struct {
	Pix    []byte          // Pixel data (8 pixels per byte, MSB first)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// New creates a new Image with the specified bounds.
// Widths that are not a multiple of 8 leave the trailing bits of each row unused.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}

	stride := (w + 7) / 8
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *Image) BitAt(x, y int) image1bit.Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return image1bit.Off
	}
	offset, mask := p.pixOffset(x, y)
	return image1bit.Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetBit(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetBit(x, y int, b image1bit.Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear turns every pixel off.
func (p *Image) Clear() {
	clear(p.Pix)
}

// Count returns the number of pixels that are on.
func (p *Image) Count() int {
	n := 0
	for _, b := range p.Pix {
		n += bits.OnesCount8(b)
	}
	return n
}

// Size returns the image dimensions.
// It implements the tinygo.org/x/drivers Displayer interface.
func (p *Image) Size() (x, y int16) {
	return int16(p.Rect.Dx()), int16(p.Rect.Dy())
}

// SetPixel sets the pixel at (x, y) relative to the image origin.
// Colors are thresholded through image1bit.BitModel.
func (p *Image) SetPixel(x, y int16, c color.RGBA) {
	p.Set(p.Rect.Min.X+int(x), p.Rect.Min.Y+int(y), c)
}

// Display is a no-op; the image is pushed to a panel by the caller.
func (p *Image) Display() error {
	return nil
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *Image) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}
