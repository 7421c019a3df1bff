package curriculum

import "testing"

func lockUnits() []Unit {
	return []Unit{{ID: 1}, {ID: 2}, {ID: 9}}
}

func TestIsLocked(t *testing.T) {
	units := lockUnits()

	tests := []struct {
		name      string
		pos       int
		completed []int
		want      bool
	}{
		{"first unit never locked", 0, nil, false},
		{"second locked when first incomplete", 1, nil, true},
		{"second open when first complete", 1, []int{1}, false},
		{"third locked when only first complete", 2, []int{1}, true},
		{"third open when second complete", 2, []int{2}, false},
		{"completed unit stays open", 2, []int{9}, false},
		{"out of range is locked", 3, []int{1, 2, 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLocked(units, tt.pos, tt.completed); got != tt.want {
				t.Errorf("IsLocked(pos=%d, completed=%v) = %v, want %v", tt.pos, tt.completed, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	units := lockUnits()
	completed := []int{1}

	want := []UnitStatus{StatusCompleted, StatusOpen, StatusLocked}
	for i, w := range want {
		if got := Status(units, i, completed); got != w {
			t.Errorf("Status(%d) = %d, want %d", i, got, w)
		}
	}
}
