// Package maze3d draws a first-person view of a grid maze on a small monochrome display.
//
// The view is the classic wireframe dungeon of early home computer games: the
// corridor in front of the player is split into depth layers, each bounded by
// two nested rectangles (depth planes) centred on the screen. Walls are drawn
// as lines between the corners of those rectangles, which gives a convincing
// sense of depth with nothing more than a line primitive.
//
// # Depth Planes
//
// Plane 0 is the screen edge. Every following plane is Inset pixels narrower
// on each side, and its height follows the screen aspect ratio:
//
//	plane 0  ┌──────────────────────────┐
//	plane 1  │   ┌──────────────────┐   │
//	plane 2  │   │   ┌──────────┐   │   │
//	plane 3  │   │   │  ┌────┐  │   │   │
//	         │   │   │  └────┘  │   │   │
//	         │   │   └──────────┘   │   │
//	         │   └──────────────────┘   │
//	         └──────────────────────────┘
//
// Layer n lies between plane n (outs) and plane n+1 (ins). With the default
// three layers, four planes are used.
//
// # Walls
//
// For the cell a layer covers, the renderer looks at six neighbours relative
// to the heading:
//
//	Front       the cell itself is solid; the near plane is outlined
//	Back        the cell ahead is solid; the far plane is outlined
//	FrontLeft   the cell on the left is solid; a side wall joins the planes
//	BackLeft    the left side is open but the cell beyond it is solid;
//	            its face is drawn level with the far plane
//	FrontRight  mirror of FrontLeft
//	BackRight   mirror of BackLeft
//
// Layers are drawn nearest first. Once a layer has a Front or Back wall the
// view is blocked and deeper layers are skipped.
//
// # Basic Usage
//
//	m, _ := maze3d.ParseGrid([]string{
//		"#####",
//		"#...#",
//		"#.#.#",
//		"#...#",
//		"#####",
//	})
//	r, _ := maze3d.New(nil) // 128x64
//	img := mono.New(image.Rect(0, 0, 128, 64))
//	r.DrawMaze(img, m, maze3d.View{Row: 3, Col: 1, Heading: maze3d.North})
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// Any tinygo.org/x/drivers Displayer can be drawn on, so the same code runs on
// a microcontroller with a TinyGo display driver and on a Linux host through
// the mono and screen packages.
//
// # Walking Animation
//
// SetZoom pushes every plane except the screen edge outwards, which makes the
// corridor appear to approach. Walk drives the zoom over time and reports when
// a full step has been played, at which point the caller moves the player:
//
//	w := r.NewWalk(1, 20*time.Millisecond)
//	w.Start(time.Now())
//	for w.Active() {
//		if w.Tick(time.Now()) {
//			view.Row-- // facing north
//		}
//		img.Clear()
//		r.DrawMaze(img, m, view)
//	}
//
// # Debugging
//
// With Opts.Debug set, the walls found for each layer are logged at debug
// level through logrus, at most once every two seconds.
package maze3d
