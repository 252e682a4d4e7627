package editor

// DefaultWheelStep converts one scroll notch into a wheel delta.
const DefaultWheelStep = 100

// Orbit turns pointer and wheel events into camera commands. A drag starts
// on pointer-down; each move while dragging posts the pixel offset since the
// last applied rotation.
type Orbit struct {
	queue *Queue

	// WheelStep is the wheel delta for one notch; scrolling towards the
	// user is positive and widens the view.
	WheelStep float64

	tracking     bool
	lastX, lastY float64
}

func NewOrbit(q *Queue, wheelStep float64) *Orbit {
	if wheelStep <= 0 {
		wheelStep = DefaultWheelStep
	}
	return &Orbit{queue: q, WheelStep: wheelStep}
}

func (o *Orbit) PointerDown(x, y float64) {
	o.tracking = true
	o.lastX, o.lastY = x, y
	o.queue.Post(DragCommand{Active: true})
}

func (o *Orbit) PointerUp() {
	if !o.tracking {
		return
	}
	o.tracking = false
	o.queue.Post(DragCommand{Active: false})
}

func (o *Orbit) PointerMove(x, y float64) {
	if !o.tracking {
		return
	}
	dx, dy := x-o.lastX, y-o.lastY
	if dx == 0 && dy == 0 {
		return
	}
	o.queue.Post(OrbitCommand{DX: float32(dx), DY: float32(dy)})
	o.lastX, o.lastY = x, y
}

// Scroll takes a GLFW vertical offset (positive away from the user).
func (o *Orbit) Scroll(yoff float64) {
	if yoff == 0 {
		return
	}
	o.queue.Post(ZoomCommand{DeltaY: -yoff * o.WheelStep})
}

func (o *Orbit) Tracking() bool { return o.tracking }
