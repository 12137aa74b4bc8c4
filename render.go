package maze3d

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// Renderer draws the first-person view of a maze.
type Renderer struct {
	opts Opts

	// Projection
	halfW, halfH int

	// Animation
	zoom int

	debug rate.Sometimes
}

// New creates a new Renderer.
//
// opts can be nil to use DefaultOpts.
func New(opts *Opts) (*Renderer, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		opts:  o,
		halfW: o.W / 2,
		halfH: o.H / 2,
		debug: rate.Sometimes{Interval: 2 * time.Second},
	}, nil
}

// Opts returns the effective configuration, defaults included.
func (r *Renderer) Opts() Opts {
	return r.opts
}

// Inset returns the horizontal step in pixels between two depth planes.
func (r *Renderer) Inset() int {
	return r.opts.Inset
}

// Zoom returns the current forward offset of the depth planes.
func (r *Renderer) Zoom() int {
	return r.zoom
}

// SetZoom moves every depth plane but the nearest one outwards by z pixels,
// which animates a step forward. z is clamped to [0, Inset).
func (r *Renderer) SetZoom(z int) {
	r.zoom = max(0, min(z, r.opts.Inset-1))
}

// XToCorners projects the half-width x of a depth plane into its four corners
// around the centre of the screen, keeping the screen aspect ratio.
func (r *Renderer) XToCorners(x int) Corners {
	y := x * r.opts.H / r.opts.W
	x0, y0 := r.halfW, r.halfH
	var p Corners
	p[TopLeft].X, p[TopLeft].Y = x0-x, y0-y
	p[TopRight].X, p[TopRight].Y = x0+x, y0-y
	p[BottomRight].X, p[BottomRight].Y = x0+x, y0+y
	p[BottomLeft].X, p[BottomLeft].Y = x0-x, y0+y
	return p
}

// planes returns the near and far plane of the layer at depth.
// The nearest plane is the screen edge and never moves.
func (r *Renderer) planes(depth int) (outs, ins Corners) {
	outX := r.halfW - r.opts.Inset*depth
	if depth != 0 {
		outX += r.zoom
	}
	inX := r.halfW - r.opts.Inset*(depth+1) + r.zoom
	return r.XToCorners(outX), r.XToCorners(inX)
}

// DrawWalls draws the layer depth cells ahead of the player and returns the
// walls it found there.
func (r *Renderer) DrawWalls(d drivers.Displayer, m Maze, v View, depth int) Walls {
	if !v.Heading.Valid() {
		r.opts.Logger.WithField("heading", v.Heading).Warn("maze3d: invalid heading")
		return Walls{}
	}
	outs, ins := r.planes(depth)

	ar, ac := v.Heading.Ahead()
	w := Look(m, v.Row+ar*depth, v.Col+ac*depth, v.Heading)
	r.debugWalls(depth, w)

	c := r.opts.Color
	if w.Front {
		DrawFrontWall(d, outs, ins, c)
		return w
	}

	if w.Back {
		DrawBackWall(d, outs, ins, c)
	}

	if w.FrontLeft {
		DrawFrontLeftWall(d, outs, ins, c)
	} else if w.BackLeft {
		DrawBackLeftWall(d, outs, ins, c)
	}

	if w.FrontRight {
		DrawFrontRightWall(d, outs, ins, c)
	} else if w.BackRight {
		DrawBackRightWall(d, outs, ins, c)
	}
	return w
}

// DrawMaze draws the screen frame and the depth layers in front of the
// player, nearest first, stopping after the first layer closed by a wall.
// It returns the number of layers drawn.
func (r *Renderer) DrawMaze(d drivers.Displayer, m Maze, v View) int {
	tinydraw.Rectangle(d, 0, 0, int16(r.opts.W), int16(r.opts.H), r.opts.Color)

	drawn := 0
	for depth := 0; depth < r.opts.Layers; depth++ {
		drawn++
		if r.DrawWalls(d, m, v, depth).Blocked() {
			break
		}
	}

	if r.opts.HUD {
		tinyfont.WriteLine(d, &tinyfont.TomThumb, 2, 7, v.Heading.String(), r.opts.Color)
	}
	return drawn
}

func (r *Renderer) debugWalls(depth int, w Walls) {
	if !r.opts.Debug {
		return
	}
	r.debug.Do(func() {
		r.opts.Logger.WithFields(logrus.Fields{
			"depth":      depth,
			"frontLeft":  w.FrontLeft,
			"front":      w.Front,
			"frontRight": w.FrontRight,
			"backLeft":   w.BackLeft,
			"back":       w.Back,
			"backRight":  w.BackRight,
		}).Debug("walls")
	})
}

// String returns a string representation of the renderer.
func (r *Renderer) String() string {
	return fmt.Sprintf("maze3d.Renderer{%dx%d, inset %d, %d layers}", r.opts.W, r.opts.H, r.opts.Inset, r.opts.Layers)
}
