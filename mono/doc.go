// Package mono provides a 1-bit monochrome frame buffer for small OLED and LCD panels.
//
// Pixels are packed horizontally, 8 per byte. The most significant bit of each
// byte is the leftmost pixel, which is the layout used by XBM bitmaps and by
// most monochrome graphics libraries on microcontrollers.
//
// Memory layout example for a 10-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9
//	Values: 1 0 1 1 0 0 0 1 | 1 1
//	Bytes:  0xB1            | 0xC0
//	        (bits 7..0 = pixels 0..7, trailing bits of the last byte unused)
//
// The Image type serves two worlds at once:
//
// - It is a draw.Image, so it can be handed to image/draw and to any periph.io
// display.Drawer. Its color model is image1bit.BitModel from the periph
// ssd1306 driver.
//
// - It is a tinygo.org/x/drivers Displayer, so TinyGo drawing helpers such as
// tinydraw and tinyfont can render straight into it.
//
// Example usage:
//
//	img := mono.New(image.Rect(0, 0, 128, 64))
//	img.SetBit(10, 20, image1bit.On)
//	tinydraw.Line(img, 0, 0, 127, 63, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
//	dev.Draw(dev.Bounds(), img, image.Point{})
package mono
