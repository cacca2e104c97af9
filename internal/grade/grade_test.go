package grade

import "testing"

func TestFor(t *testing.T) {
	tests := []struct {
		seconds float64
		want    Tier
	}{
		{0, TierS},
		{45.2, TierS},
		{60, TierS},
		{60.1, TierA},
		{90, TierA},
		{90.01, TierB},
		{120.0, TierB},
		{120.5, TierC},
		{500, TierC},
		{9999, TierC},
	}
	for _, tt := range tests {
		if got := For(tt.seconds).Tier; got != tt.want {
			t.Errorf("For(%v) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func TestFor_HasCopy(t *testing.T) {
	for _, s := range []float64{10, 70, 100, 200} {
		g := For(s)
		if g.Title == "" || g.Comment == "" {
			t.Errorf("For(%v) missing title or comment: %+v", s, g)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{65, "65.0"},
		{75.04, "75.0"},
		{75.06, "75.1"},
		{119.96, "120.0"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
