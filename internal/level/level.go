package level

import "math"

// XPPerLevelUnit scales the level curve. Level L starts at (L-1)^2 * XPPerLevelUnit.
const XPPerLevelUnit = 100

// DefaultTitle is used when no threshold in the title table applies.
const DefaultTitle = "Novice"

// titleThreshold maps the first level of a band to its title.
type titleThreshold struct {
	Level int
	Title string
}

// titles is sorted by ascending level.
var titles = []titleThreshold{
	{1, "Novice"},
	{5, "Apprentice"},
	{10, "Problem Solver"},
	{15, "Algorithm Adept"},
	{20, "System Architect"},
	{25, "Interview Ninja"},
	{30, "Code Master"},
	{40, "Grandmaster"},
	{50, "Legend"},
}

// ForXP returns the level for a cumulative XP total.
// Negative totals are treated as zero, so the minimum level is 1.
func ForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	lvl := int(math.Floor(math.Sqrt(float64(xp)/XPPerLevelUnit))) + 1
	// Guard against float rounding right at a boundary.
	for MinXP(lvl+1) <= xp {
		lvl++
	}
	for lvl > 1 && MinXP(lvl) > xp {
		lvl--
	}
	return lvl
}

// MinXP returns the XP at which the given level starts.
func MinXP(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * XPPerLevelUnit
}

// Title returns the title for the largest threshold not above level.
func Title(level int) string {
	title := DefaultTitle
	for _, t := range titles {
		if t.Level > level {
			break
		}
		title = t.Title
	}
	return title
}

// Progress reports the current level, XP earned inside it and the XP span
// of the whole level.
func Progress(xp int) (current, into, span int) {
	if xp < 0 {
		xp = 0
	}
	current = ForXP(xp)
	start := MinXP(current)
	return current, xp - start, MinXP(current+1) - start
}
