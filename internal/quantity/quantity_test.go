package quantity

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1 kg", 1},
		{"2 किलो", 2},
		{"1.5", 1.5},
		{"no numbers here", DefaultKg},
		{"", DefaultKg},
		{"about 25kg please", 25},
		{"3.75 kilo", 3.75},
		{"-4 kg", 4},
		{"1,000 kg", 1},
		{"2.", 2},
		{".5", 5},
		{"500 g", 500},
		{"12 bags of 50kg", 12},
		{"1e3", 1},
		{"२ किलो", 2},
		{"१५.५ किलो", 15.5},
		{"৩ কেজি", 3},
		{"௭ கிலோ", 7},
		{"੪ ਕਿੱਲੋ", 4},
	}
	for _, tc := range cases {
		if got := Extract(tc.in); got != tc.want {
			t.Fatalf("Extract(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExtract_OverflowFallsBack(t *testing.T) {
	huge := "1"
	for i := 0; i < 400; i++ {
		huge += "0"
	}
	if got := Extract(huge + " kg"); got != DefaultKg {
		t.Fatalf("expected default for overflowing token, got %v", got)
	}
}
