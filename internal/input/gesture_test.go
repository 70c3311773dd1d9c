package input

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		threshold  float64
		want       Direction
	}{
		{"left swipe", 200, 150, 30, Left},
		{"right swipe", 100, 140, 30, Right},
		{"too short", 100, 120, 30, None},
		{"exactly threshold", 100, 130, 30, None},
		{"exactly threshold left", 100, 70, 30, None},
		{"just past threshold", 100, 130.5, 30, Right},
		{"zero threshold uses default", 0, 25, 0, None},
		{"zero threshold default right", 0, 31, 0, Right},
		{"terminal cells", 10, 7, 2, Left},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.start, tc.end, tc.threshold); got != tc.want {
				t.Errorf("Classify(%v, %v, %v) = %v, expected %v", tc.start, tc.end, tc.threshold, got, tc.want)
			}
		})
	}
}

func TestSwipeEndWithoutBegin(t *testing.T) {
	s := NewSwipe(30)
	if got := s.End(500); got != None {
		t.Errorf("End without Begin = %v, expected none", got)
	}
}

func TestSwipeIsSingleUse(t *testing.T) {
	s := NewSwipe(30)
	s.Begin(0)
	if !s.Active() {
		t.Fatal("expected active after Begin")
	}
	if got := s.End(100); got != Right {
		t.Fatalf("End = %v, expected right", got)
	}
	if got := s.End(200); got != None {
		t.Errorf("second End = %v, expected none", got)
	}

	s.Begin(0)
	s.Cancel()
	if got := s.End(-100); got != None {
		t.Errorf("End after Cancel = %v, expected none", got)
	}
}
