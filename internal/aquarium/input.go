package aquarium

// Intent is the held-movement snapshot for one tick.
type Intent struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
}

// Axes folds the flags into per-axis steps in {-1, 0, 1}. Forward is +Y and
// Right is +X, matching Player.Yaw.
func (in Intent) Axes() (dx, dy, dz float64) {
	return axis(in.Right, in.Left), axis(in.Forward, in.Back), axis(in.Up, in.Down)
}

func (in Intent) Idle() bool {
	dx, dy, dz := in.Axes()
	return dx == 0 && dy == 0 && dz == 0
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
