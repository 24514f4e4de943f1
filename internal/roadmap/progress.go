package roadmap

// Progress summarises completion of a roadmap.
type Progress struct {
	CompletedCount  int     `json:"completedCount"`
	TotalDays       int     `json:"totalDays"`
	ProgressPercent float64 `json:"progressPercent"`
	TotalXP         int     `json:"totalXP"`
	EarnedXP        int     `json:"earnedXP"`
}

// CalculateProgress projects completedDays onto r. Day numbers outside the
// schedule and repeats are ignored. A nil roadmap yields the zero Progress.
func CalculateProgress(r *Roadmap, completedDays []int) Progress {
	if r == nil {
		return Progress{}
	}
	p := Progress{TotalDays: r.TotalDays}
	for _, d := range r.Schedule {
		p.TotalXP += d.XP
	}

	seen := make(map[int]bool, len(completedDays))
	for _, n := range completedDays {
		d, ok := r.Day(n)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		p.CompletedCount++
		p.EarnedXP += d.XP
	}
	if p.TotalDays > 0 {
		p.ProgressPercent = float64(p.CompletedCount) / float64(p.TotalDays) * 100
	}
	return p
}
