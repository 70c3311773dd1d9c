// Package input turns raw pointer movement into lane-change gestures.
package input

// Direction is the outcome of a gesture.
type Direction int

const (
	None  Direction = 0
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// DefaultThreshold is the minimum horizontal travel of a swipe.
const DefaultThreshold = 30

// Swipe detects horizontal swipes between a press and a release.
// The zero value uses DefaultThreshold.
type Swipe struct {
	Threshold float64

	startX float64
	active bool
}

// NewSwipe creates a detector with the given threshold.
func NewSwipe(threshold float64) *Swipe {
	return &Swipe{Threshold: threshold}
}

// Begin records the press position.
func (s *Swipe) Begin(x float64) {
	s.startX = x
	s.active = true
}

// Active reports whether a press is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Cancel drops the current press.
func (s *Swipe) Cancel() {
	s.active = false
}

// End finishes the gesture at x. Travel must exceed the threshold
// strictly; a release without a press yields None.
func (s *Swipe) End(x float64) Direction {
	if !s.active {
		return None
	}
	s.active = false
	return Classify(s.startX, x, s.Threshold)
}

// Classify reports the direction of a swipe from start to end.
// A non-positive threshold means DefaultThreshold.
func Classify(start, end, threshold float64) Direction {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	switch dx := end - start; {
	case dx < -threshold:
		return Left
	case dx > threshold:
		return Right
	default:
		return None
	}
}
