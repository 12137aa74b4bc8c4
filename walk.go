package maze3d

import "time"

// Walk animates a step forward by growing the renderer zoom until the depth
// planes have moved by one inset. It never moves the player; the caller does
// that when Tick reports the step as complete.
type Walk struct {
	r        *Renderer
	speed    int
	interval time.Duration

	active bool
	next   time.Time
}

// NewWalk returns a walk animation for r that grows the zoom by speed pixels
// every interval.
func (r *Renderer) NewWalk(speed int, interval time.Duration) *Walk {
	if speed <= 0 {
		speed = 1
	}
	return &Walk{r: r, speed: speed, interval: interval}
}

// Start begins a step at now. Starting an active walk restarts it.
func (w *Walk) Start(now time.Time) {
	w.active = true
	w.next = now.Add(w.interval)
	w.r.zoom = 0
}

// Active reports whether a step is in progress.
func (w *Walk) Active() bool {
	return w.active
}

// Tick advances the animation to now and reports whether the step finished
// during this call. A finished step resets the zoom to 0.
func (w *Walk) Tick(now time.Time) bool {
	if !w.active {
		return false
	}
	for !now.Before(w.next) {
		w.next = w.next.Add(w.interval)
		w.r.zoom += w.speed
		if w.r.zoom >= w.r.opts.Inset {
			w.r.zoom = 0
			w.active = false
			return true
		}
		if w.interval <= 0 {
			break
		}
	}
	return false
}
