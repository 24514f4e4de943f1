package level

import "testing"

func TestForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{1000, 4},
		{1600, 5},
		{10000, 11},
	}

	for _, tt := range tests {
		if got := ForXP(tt.xp); got != tt.want {
			t.Errorf("ForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestForXPMonotonic(t *testing.T) {
	prev := ForXP(0)
	for xp := 1; xp <= 50000; xp += 7 {
		got := ForXP(xp)
		if got < prev {
			t.Fatalf("ForXP(%d) = %d, lower than previous %d", xp, got, prev)
		}
		prev = got
	}
}

func TestMinXPMatchesForXP(t *testing.T) {
	for lvl := 1; lvl <= 60; lvl++ {
		start := MinXP(lvl)
		if got := ForXP(start); got != lvl {
			t.Errorf("ForXP(MinXP(%d)) = %d", lvl, got)
		}
		if lvl > 1 {
			if got := ForXP(start - 1); got != lvl-1 {
				t.Errorf("ForXP(MinXP(%d)-1) = %d, want %d", lvl, got, lvl-1)
			}
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Novice"},
		{1, "Novice"},
		{4, "Novice"},
		{5, "Apprentice"},
		{9, "Apprentice"},
		{10, "Problem Solver"},
		{24, "System Architect"},
		{49, "Grandmaster"},
		{50, "Legend"},
		{120, "Legend"},
	}

	for _, tt := range tests {
		if got := Title(tt.level); got != tt.want {
			t.Errorf("Title(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	cur, into, span := Progress(1000)
	if cur != 4 || into != 100 || span != 700 {
		t.Errorf("Progress(1000) = (%d, %d, %d), want (4, 100, 700)", cur, into, span)
	}

	cur, into, span = Progress(0)
	if cur != 1 || into != 0 || span != 100 {
		t.Errorf("Progress(0) = (%d, %d, %d), want (1, 0, 100)", cur, into, span)
	}
}
