package widget

// Direction of a drag across the widget.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionDown
)

// Action is what a completed gesture asks the controller to do.
type Action int

const (
	ActionNone Action = iota
	ActionComplete
	ActionSkip
	ActionSnooze
)

// GestureMapper accumulates drag distance per direction and fires the
// mapped action once the configured threshold is exceeded, then resets.
// Changing direction mid-drag discards the accumulated distance.
type GestureMapper struct {
	threshold float64
	direction Direction
	distance  float64
	active    bool
}

func NewGestureMapper(threshold float64) *GestureMapper {
	if threshold <= 0 {
		threshold = 80
	}
	return &GestureMapper{threshold: threshold}
}

// Track feeds one drag delta. It returns ActionNone until the threshold is
// crossed, then the mapped action exactly once.
func (g *GestureMapper) Track(direction Direction, distance float64) Action {
	if distance < 0 {
		distance = -distance
	}
	if !g.active || g.direction != direction {
		g.direction = direction
		g.distance = 0
		g.active = true
	}
	g.distance += distance
	if g.distance < g.threshold {
		return ActionNone
	}
	g.Reset()
	return actionFor(direction)
}

// Reset clears any in-flight drag, e.g. when the finger lifts early.
func (g *GestureMapper) Reset() {
	g.active = false
	g.distance = 0
}

func actionFor(direction Direction) Action {
	switch direction {
	case DirectionRight:
		return ActionComplete
	case DirectionLeft:
		return ActionSkip
	case DirectionDown:
		return ActionSnooze
	default:
		return ActionNone
	}
}
