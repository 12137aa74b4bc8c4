// Package demo holds the maze and the scripted walk shared by the example programs.
package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/maze3d"
	"github.com/sirupsen/logrus"
)

// Maze is a small hand-drawn maze with corridors of every length the
// renderer can show.
var Maze = []string{
	"##########",
	"#....#...#",
	"#.##.#.#.#",
	"#.#..#.#.#",
	"#.#.##.#.#",
	"#.#....#.#",
	"#.######.#",
	"#........#",
	"##########",
}

// Start is where the tour begins.
var Start = maze3d.View{Row: 7, Col: 1, Heading: maze3d.North}

// Script walks once around Maze and returns to Start.
// F steps forward, L and R turn on the spot.
const Script = "FFFFFFRFFFRFFRFLFFLFFFLFFFFRFFRFFFFFFRFFFFFFFR"

// Route expands a script of F, L and R moves into the views it passes through,
// starting with start itself. It does not look at any maze.
func Route(start maze3d.View, script string) ([]maze3d.View, error) {
	if !start.Heading.Valid() {
		return nil, errors.New("demo: invalid start heading")
	}
	route := []maze3d.View{start}
	v := start
	for i, m := range script {
		switch m {
		case 'F':
			dr, dc := v.Heading.Ahead()
			v.Row += dr
			v.Col += dc
		case 'L':
			v.Heading = (v.Heading + 3) % 4
		case 'R':
			v.Heading = (v.Heading + 1) % 4
		default:
			return nil, fmt.Errorf("demo: invalid move %q at %d", m, i)
		}
		route = append(route, v)
	}
	return route, nil
}

// Tour replays a route, animating every forward step with a Walk and
// pausing on each view. It loops forever.
type Tour struct {
	walk  *maze3d.Walk
	route []maze3d.View
	pause time.Duration
	log   logrus.FieldLogger

	i    int
	next time.Time
}

// NewTour returns a tour over route drawn by r.
func NewTour(r *maze3d.Renderer, route []maze3d.View, pause time.Duration, log logrus.FieldLogger) (*Tour, error) {
	if len(route) == 0 {
		return nil, errors.New("demo: empty route")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tour{
		walk:  r.NewWalk(2, 30*time.Millisecond),
		route: route,
		pause: pause,
		log:   log,
	}, nil
}

// View returns the current view.
func (t *Tour) View() maze3d.View {
	return t.route[t.i]
}

// Step advances the tour to now.
func (t *Tour) Step(now time.Time) {
	if t.walk.Active() {
		if t.walk.Tick(now) {
			t.advance(now)
		}
		return
	}
	if now.Before(t.next) {
		return
	}
	if t.forward() {
		t.walk.Start(now)
		return
	}
	t.advance(now)
}

// forward reports whether the next view is one step ahead of the current one.
func (t *Tour) forward() bool {
	cur, nxt := t.View(), t.route[(t.i+1)%len(t.route)]
	dr, dc := cur.Heading.Ahead()
	return nxt.Heading == cur.Heading && nxt.Row == cur.Row+dr && nxt.Col == cur.Col+dc
}

func (t *Tour) advance(now time.Time) {
	t.i = (t.i + 1) % len(t.route)
	t.next = now.Add(t.pause)
	v := t.View()
	t.log.WithFields(logrus.Fields{
		"row":     v.Row,
		"col":     v.Col,
		"heading": v.Heading,
	}).Debug("demo: view")
}
