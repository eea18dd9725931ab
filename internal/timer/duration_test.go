package timer

import "testing"

func TestTotal(t *testing.T) {
	cases := []struct {
		name             string
		minutes, seconds int
		want             int
	}{
		{"plain", 2, 5, 125},
		{"seconds only", 0, 45, 45},
		{"zero clamps to minimum", 0, 0, 1},
		{"over an hour clamps", 100, 0, 3600},
		{"exactly an hour", 60, 0, 3600},
		{"negative minutes floored", -5, 30, 30},
		{"negative seconds floored", 1, -30, 60},
		{"all negative clamps to minimum", -1, -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Total(tc.minutes, tc.seconds); got != tc.want {
				t.Errorf("Total(%d, %d) = %d, want %d", tc.minutes, tc.seconds, got, tc.want)
			}
		})
	}
}
