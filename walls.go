package maze3d

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Corner indices into Corners.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corners holds the four corners of a projected depth plane,
// indexed by TopLeft, TopRight, BottomRight and BottomLeft.
type Corners [4]image.Point

func line(d drivers.Displayer, a, b image.Point, c color.RGBA) {
	tinydraw.Line(d, int16(a.X), int16(a.Y), int16(b.X), int16(b.Y), c)
}

// DrawFrontLeftWall draws the left side wall running from the near plane to the far plane.
func DrawFrontLeftWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	line(d, outs[TopLeft], ins[TopLeft], c)
	line(d, ins[TopLeft], ins[BottomLeft], c)
	line(d, ins[BottomLeft], outs[BottomLeft], c)
}

// DrawFrontRightWall draws the right side wall running from the near plane to the far plane.
func DrawFrontRightWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	line(d, outs[TopRight], ins[TopRight], c)
	line(d, ins[TopRight], ins[BottomRight], c)
	line(d, ins[BottomRight], outs[BottomRight], c)
}

// DrawBackLeftWall draws the face of the wall seen through an opening on the left.
// Its top and bottom edges stay level with the far plane.
func DrawBackLeftWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	line(d, image.Pt(outs[TopLeft].X, ins[TopLeft].Y), ins[TopLeft], c)
	line(d, ins[TopLeft], ins[BottomLeft], c)
	line(d, ins[BottomLeft], image.Pt(outs[BottomLeft].X, ins[BottomLeft].Y), c)
}

// DrawBackRightWall draws the face of the wall seen through an opening on the right.
func DrawBackRightWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	line(d, image.Pt(outs[TopRight].X, ins[TopRight].Y), ins[TopRight], c)
	line(d, ins[TopRight], ins[BottomRight], c)
	line(d, ins[BottomRight], image.Pt(outs[BottomRight].X, ins[BottomRight].Y), c)
}

// DrawFrontWall outlines a wall standing on the near plane.
func DrawFrontWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	outline(d, outs, c)
}

// DrawBackWall outlines a wall standing on the far plane.
func DrawBackWall(d drivers.Displayer, outs, ins Corners, c color.RGBA) {
	outline(d, ins, c)
}

func outline(d drivers.Displayer, p Corners, c color.RGBA) {
	line(d, p[TopLeft], p[TopRight], c)
	line(d, p[TopRight], p[BottomRight], c)
	line(d, p[BottomRight], p[BottomLeft], c)
	line(d, p[BottomLeft], p[TopLeft], c)
}
