package component

// Input stores the direction keys held this frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Direction sums +1/-1 per held key on each axis. Opposing keys cancel and
// diagonals are not normalized.
func (in Input) Direction() (x, y float64) {
	if in.Up {
		y++
	}
	if in.Down {
		y--
	}
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	return x, y
}

var InputComponent = NewComponent[Input]()
