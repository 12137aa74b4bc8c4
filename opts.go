package maze3d

import (
	"errors"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
)

// Opts is the configuration for a Renderer.
type Opts struct {
	// Screen dimensions in pixels
	W int // Width (default: 128)
	H int // Height (default: 64)

	// Horizontal step in pixels between two depth planes (default: W/8).
	Inset int
	// Number of depth layers drawn in front of the player (default: 3).
	Layers int

	// Line color; thresholded by monochrome panels (default: white)
	Color color.RGBA

	// Draw the heading letter in the top-left corner
	HUD bool

	// Log the walls of each layer, at most every two seconds
	Debug bool
	// Logger for debug and warning output (default: logrus standard logger)
	Logger logrus.FieldLogger
}

// DefaultOpts matches a 128x64 monochrome OLED, the usual panel for this kind of game.
var DefaultOpts = Opts{
	W:      128,
	H:      64,
	Inset:  16,
	Layers: 3,
	Color:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// withDefaults fills zero fields and validates the result.
func (o Opts) withDefaults() (Opts, error) {
	if o.W == 0 && o.H == 0 {
		o.W, o.H = DefaultOpts.W, DefaultOpts.H
	}
	if o.W <= 0 || o.H <= 0 {
		return o, errors.New("maze3d: width and height must be positive")
	}
	if o.W > math.MaxInt16 || o.H > math.MaxInt16 {
		return o, errors.New("maze3d: width and height must fit in int16")
	}
	if o.Layers == 0 {
		o.Layers = DefaultOpts.Layers
	}
	if o.Layers < 0 {
		return o, errors.New("maze3d: layers must be positive")
	}
	if o.Inset == 0 {
		o.Inset = o.W / 8
	}
	if o.Inset <= 0 {
		return o, errors.New("maze3d: inset must be positive")
	}
	if o.Inset*o.Layers >= o.W/2 {
		return o, errors.New("maze3d: inset times layers must be less than half the width")
	}
	if o.Color == (color.RGBA{}) {
		o.Color = DefaultOpts.Color
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o, nil
}
