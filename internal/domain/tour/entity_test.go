package tour

import "testing"

func TestDaysExtraction(t *testing.T) {
	cases := []struct {
		duration string
		want     int
	}{
		{"12 Days", 12},
		{"10 Days", 10},
		{"1 Day", 1},
		{"Days", 0},
		{"", 0},
		{"approx 7 Days", 7},
		{"7-10 Days", 7},
	}

	for _, c := range cases {
		if got := Days(c.duration); got != c.want {
			t.Errorf("Days(%q) = %d, want %d", c.duration, got, c.want)
		}
	}
}
