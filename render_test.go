package maze3d

import (
	"image"
	"image/color"
	"testing"

	"github.com/flavioheleno/maze3d/mono"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestRenderer(t *testing.T, opts *Opts) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNewOpts(t *testing.T) {
	tests := []struct {
		name       string
		opts       *Opts
		wantErr    bool
		wantInset  int
		wantLayers int
	}{
		{"nil options (uses defaults)", nil, false, 16, 3},
		{"zero options (uses defaults)", &Opts{}, false, 16, 3},
		{"84x48 derives inset", &Opts{W: 84, H: 48}, false, 10, 3},
		{"custom inset and layers", &Opts{W: 128, H: 64, Inset: 10, Layers: 5}, false, 10, 5},
		{"negative width", &Opts{W: -1, H: 64}, true, 0, 0},
		{"zero height", &Opts{W: 128, H: 0}, true, 0, 0},
		{"too wide for int16", &Opts{W: 40000, H: 64}, true, 0, 0},
		{"negative layers", &Opts{Layers: -1}, true, 0, 0},
		{"negative inset", &Opts{Inset: -2}, true, 0, 0},
		{"planes collapse", &Opts{W: 128, H: 64, Inset: 16, Layers: 4}, true, 0, 0},
		{"too narrow for an inset", &Opts{W: 4, H: 4}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			o := r.Opts()
			if o.Inset != tt.wantInset {
				t.Errorf("Inset = %d, want %d", o.Inset, tt.wantInset)
			}
			if o.Layers != tt.wantLayers {
				t.Errorf("Layers = %d, want %d", o.Layers, tt.wantLayers)
			}
			if o.Color != DefaultOpts.Color {
				t.Errorf("Color = %v, want %v", o.Color, DefaultOpts.Color)
			}
			if o.Logger == nil {
				t.Error("Logger = nil, want standard logger")
			}
		})
	}
}

func TestXToCorners(t *testing.T) {
	r := newTestRenderer(t, nil)

	tests := []struct {
		x    int
		want Corners
	}{
		{64, Corners{{0, 0}, {128, 0}, {128, 64}, {0, 64}}},
		{48, Corners{{16, 8}, {112, 8}, {112, 56}, {16, 56}}},
		{32, Corners{{32, 16}, {96, 16}, {96, 48}, {32, 48}}},
		{16, Corners{{48, 24}, {80, 24}, {80, 40}, {48, 40}}},
		{33, Corners{{31, 16}, {97, 16}, {97, 48}, {31, 48}}}, // y truncates
		{0, Corners{{64, 32}, {64, 32}, {64, 32}, {64, 32}}},
	}

	for _, tt := range tests {
		if got := r.XToCorners(tt.x); got != tt.want {
			t.Errorf("XToCorners(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestXToCornersAspect(t *testing.T) {
	r := newTestRenderer(t, &Opts{W: 84, H: 48})

	// 42 * 48 / 84 = 24 exactly, with no floating point drift
	want := Corners{{0, 0}, {84, 0}, {84, 48}, {0, 48}}
	if got := r.XToCorners(42); got != want {
		t.Errorf("XToCorners(42) = %v, want %v", got, want)
	}
}

func TestPlanes(t *testing.T) {
	r := newTestRenderer(t, nil)

	tests := []struct {
		name       string
		zoom       int
		depth      int
		outX, inX  int
	}{
		{"depth 0", 0, 0, 64, 48},
		{"depth 1", 0, 1, 48, 32},
		{"depth 2", 0, 2, 32, 16},
		{"depth 0 zoomed keeps the screen edge", 4, 0, 64, 52},
		{"depth 1 zoomed", 4, 1, 52, 36},
		{"depth 2 zoomed", 4, 2, 36, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.SetZoom(tt.zoom)
			outs, ins := r.planes(tt.depth)
			if got := r.halfW - outs[TopLeft].X; got != tt.outX {
				t.Errorf("outer half-width = %d, want %d", got, tt.outX)
			}
			if got := r.halfW - ins[TopLeft].X; got != tt.inX {
				t.Errorf("inner half-width = %d, want %d", got, tt.inX)
			}
		})
	}
}

func TestSetZoomClamps(t *testing.T) {
	r := newTestRenderer(t, nil)

	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{7, 7},
		{15, 15},
		{16, 15},
		{100, 15},
	}

	for _, tt := range tests {
		r.SetZoom(tt.in)
		if got := r.Zoom(); got != tt.want {
			t.Errorf("SetZoom(%d) then Zoom() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDrawMazeLayers(t *testing.T) {
	g := mustGrid(t, testMaze)
	r := newTestRenderer(t, nil)

	tests := []struct {
		name string
		view View
		want int
	}{
		{"long corridor north", View{Row: 3, Col: 1, Heading: North}, 3},
		{"long corridor east", View{Row: 3, Col: 1, Heading: East}, 3},
		{"long corridor south", View{Row: 1, Col: 3, Heading: South}, 3},
		{"facing the outer wall", View{Row: 3, Col: 1, Heading: West}, 1},
		{"wall two cells ahead", View{Row: 1, Col: 2, Heading: East}, 2},
		{"standing inside a wall", View{Row: 2, Col: 2, Heading: South}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := mono.New(image.Rect(0, 0, 128, 64))
			if got := r.DrawMaze(img, g, tt.view); got != tt.want {
				t.Errorf("DrawMaze() drew %d layers, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawMazeStopsAtWall(t *testing.T) {
	g := mustGrid(t, testMaze)
	r := newTestRenderer(t, nil)
	img := mono.New(image.Rect(0, 0, 128, 64))

	// Facing west from the bottom-left corner: the outer wall is right ahead,
	// the side on the left is solid and the side on the right is open.
	r.DrawMaze(img, g, View{Row: 3, Col: 1, Heading: West})

	on := []image.Point{
		{0, 32}, {127, 32}, {64, 0}, {64, 63}, // frame
		{16, 8}, {64, 8}, {112, 8}, {112, 32}, {64, 56}, {16, 32}, // back wall on the far plane
		{120, 8}, {120, 56}, // face of the wall behind the right opening
	}
	for _, p := range on {
		if !img.BitAt(p.X, p.Y) {
			t.Errorf("pixel %v is off, want on", p)
		}
	}

	off := []image.Point{
		{64, 32},  // centre
		{32, 16},  // corner of the next layer, hidden behind the wall
		{48, 24},  // corner of the innermost plane
		{120, 4},  // no right side wall
		{120, 60}, // no right side wall
	}
	for _, p := range off {
		if img.BitAt(p.X, p.Y) {
			t.Errorf("pixel %v is on, want off", p)
		}
	}
}

func TestDrawMazeFrontWallOnScreenEdge(t *testing.T) {
	g := mustGrid(t, testMaze)
	r := newTestRenderer(t, nil)
	img := mono.New(image.Rect(0, 0, 128, 64))

	// The nearest plane is the screen edge, so a front wall there only
	// retraces the frame.
	if n := r.DrawMaze(img, g, View{Row: 2, Col: 2, Heading: South}); n != 1 {
		t.Fatalf("DrawMaze() drew %d layers, want 1", n)
	}
	want := 2*128 + 2*(64-2)
	if got := img.Count(); got != want {
		t.Errorf("Count() = %d, want %d (frame only)", got, want)
	}
}

func TestDrawWallsSideWalls(t *testing.T) {
	g := mustGrid(t, testMaze)
	r := newTestRenderer(t, nil)

	tests := []struct {
		name  string
		view  View
		depth int
		on    []image.Point
		off   []image.Point
	}{
		{
			// Cell (2,1): solid on both sides.
			name:  "corridor walls at depth 1",
			view:  View{Row: 3, Col: 1, Heading: North},
			depth: 1,
			on:    []image.Point{{16, 8}, {32, 16}, {32, 32}, {32, 48}, {96, 16}, {96, 32}, {96, 48}, {112, 56}},
			off:   []image.Point{{64, 16}, {64, 48}},
		},
		{
			// Cell (3,1) facing north: solid on the left, open on the right
			// with the wall of (2,2) facing the player.
			name:  "open right side at depth 0",
			view:  View{Row: 3, Col: 1, Heading: North},
			depth: 0,
			on:    []image.Point{{0, 0}, {16, 8}, {16, 32}, {16, 56}, {112, 8}, {112, 32}, {120, 8}, {127, 56}},
			off:   []image.Point{{120, 4}, {64, 8}, {64, 56}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := mono.New(image.Rect(0, 0, 128, 64))
			w := r.DrawWalls(img, g, tt.view, tt.depth)
			if w.Blocked() {
				t.Errorf("DrawWalls() = %+v, want an open layer", w)
			}
			for _, p := range tt.on {
				if !img.BitAt(p.X, p.Y) {
					t.Errorf("pixel %v is off, want on", p)
				}
			}
			for _, p := range tt.off {
				if img.BitAt(p.X, p.Y) {
					t.Errorf("pixel %v is on, want off", p)
				}
			}
		})
	}
}

func TestDrawWallsInvalidHeading(t *testing.T) {
	g := mustGrid(t, testMaze)
	logger, hook := test.NewNullLogger()
	r := newTestRenderer(t, &Opts{Logger: logger})
	img := mono.New(image.Rect(0, 0, 128, 64))

	w := r.DrawWalls(img, g, View{Row: 1, Col: 1, Heading: Heading(5)}, 0)
	if w != (Walls{}) {
		t.Errorf("DrawWalls() = %+v, want no walls", w)
	}
	if n := img.Count(); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel {
		t.Errorf("last log entry = %v, want a warning", e)
	}
}

func TestDrawMazeHUD(t *testing.T) {
	g := mustGrid(t, testMaze)
	v := View{Row: 3, Col: 1, Heading: West}

	plain := mono.New(image.Rect(0, 0, 128, 64))
	newTestRenderer(t, nil).DrawMaze(plain, g, v)

	hud := mono.New(image.Rect(0, 0, 128, 64))
	newTestRenderer(t, &Opts{HUD: true}).DrawMaze(hud, g, v)

	if hud.Count() <= plain.Count() {
		t.Errorf("HUD frame has %d pixels on, want more than %d", hud.Count(), plain.Count())
	}

	// The heading letter stays in the top-left corner.
	for y := 10; y < 64; y++ {
		for x := 10; x < 128; x++ {
			if hud.BitAt(x, y) != plain.BitAt(x, y) {
				t.Fatalf("pixel (%d, %d) differs outside the HUD corner", x, y)
			}
		}
	}
}

func TestDrawMazeColor(t *testing.T) {
	g := mustGrid(t, testMaze)
	r := newTestRenderer(t, &Opts{Color: color.RGBA{A: 0xFF}})
	img := mono.New(image.Rect(0, 0, 128, 64))

	r.DrawMaze(img, g, View{Row: 3, Col: 1, Heading: North})
	if n := img.Count(); n != 0 {
		t.Errorf("Count() = %d after drawing in black, want 0", n)
	}
}

func TestDebugWallsRateLimited(t *testing.T) {
	g := mustGrid(t, testMaze)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := newTestRenderer(t, &Opts{Debug: true, Logger: logger})
	img := mono.New(image.Rect(0, 0, 128, 64))

	r.DrawMaze(img, g, View{Row: 3, Col: 1, Heading: North})
	r.DrawMaze(img, g, View{Row: 3, Col: 1, Heading: North})

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Message != "walls" || e.Level != logrus.DebugLevel {
		t.Errorf("entry = %q at %v, want \"walls\" at debug", e.Message, e.Level)
	}
	if e.Data["depth"] != 0 || e.Data["frontLeft"] != true || e.Data["back"] != false {
		t.Errorf("entry fields = %v", e.Data)
	}
}

func TestDebugWallsDisabled(t *testing.T) {
	g := mustGrid(t, testMaze)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := newTestRenderer(t, &Opts{Logger: logger})

	r.DrawMaze(mono.New(image.Rect(0, 0, 128, 64)), g, View{Row: 3, Col: 1, Heading: North})
	if n := len(hook.AllEntries()); n != 0 {
		t.Errorf("got %d log entries with debug off, want 0", n)
	}
}

func TestRendererString(t *testing.T) {
	r := newTestRenderer(t, nil)
	want := "maze3d.Renderer{128x64, inset 16, 3 layers}"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
