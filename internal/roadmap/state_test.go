package roadmap

import (
	"errors"
	"testing"
)

func generated(t *testing.T) *Roadmap {
	t.Helper()
	r, err := Generate(RoleBackend, ThreeMonths, CompanyMixed)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCalculateProgress(t *testing.T) {
	r := generated(t)
	total := 0
	for _, d := range r.Schedule {
		total += d.XP
	}

	p := CalculateProgress(r, []int{1, 2, 2, 6, 0, 91, -3})
	if p.CompletedCount != 3 {
		t.Errorf("CompletedCount = %d, want 3", p.CompletedCount)
	}
	if p.TotalDays != 90 || p.TotalXP != total {
		t.Errorf("totals = %+v", p)
	}
	want := r.Schedule[0].XP + r.Schedule[1].XP + RestDayXP
	if p.EarnedXP != want {
		t.Errorf("EarnedXP = %d, want %d", p.EarnedXP, want)
	}
	if p.ProgressPercent < 3.33 || p.ProgressPercent > 3.34 {
		t.Errorf("ProgressPercent = %v", p.ProgressPercent)
	}

	if z := CalculateProgress(nil, []int{1}); z != (Progress{}) {
		t.Errorf("nil roadmap progress = %+v", z)
	}
}

func TestStateDays(t *testing.T) {
	s := NewState()
	if _, err := s.CompleteDay(1); !errors.Is(err, ErrNoRoadmap) {
		t.Fatalf("err = %v, want ErrNoRoadmap", err)
	}
	if s.NextDay() != 0 {
		t.Error("NextDay without roadmap should be 0")
	}

	s.Replace(generated(t))
	if changed, err := s.CompleteDay(1); err != nil || !changed {
		t.Fatalf("CompleteDay(1) = %v, %v", changed, err)
	}
	if changed, _ := s.CompleteDay(1); changed {
		t.Error("second CompleteDay(1) changed state")
	}
	if _, err := s.CompleteDay(91); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("err = %v, want ErrDayOutOfRange", err)
	}
	s.CompleteDay(2)
	if s.NextDay() != 3 {
		t.Errorf("NextDay = %d, want 3", s.NextDay())
	}

	if changed, _ := s.UncompleteDay(1); !changed {
		t.Error("UncompleteDay(1) did not change state")
	}
	if s.IsCompleted(1) || s.NextDay() != 1 {
		t.Errorf("after uncomplete: completed %v next %d", s.CompletedDays, s.NextDay())
	}
	if changed, _ := s.UncompleteDay(1); changed {
		t.Error("UncompleteDay on incomplete day changed state")
	}

	s.Replace(generated(t))
	if len(s.CompletedDays) != 0 {
		t.Error("Replace kept completed days")
	}
}

func TestDecodeState(t *testing.T) {
	s, recovered, err := DecodeState(nil)
	if err != nil || recovered || s.Roadmap != nil {
		t.Fatalf("DecodeState(nil) = %+v, %v, %v", s, recovered, err)
	}

	orig := NewState()
	orig.Replace(generated(t))
	orig.CompleteDay(5)
	orig.CompleteDay(6)
	orig.CompletedDays = append(orig.CompletedDays, 5, 400)

	raw, err := EncodeState(orig)
	if err != nil {
		t.Fatal(err)
	}
	got, recovered, err := DecodeState(raw)
	if err != nil || recovered {
		t.Fatalf("decode: %v %v", recovered, err)
	}
	if len(got.Roadmap.Schedule) != 90 || got.Roadmap.Role != RoleBackend {
		t.Errorf("roadmap = %+v", got.Roadmap)
	}
	if len(got.CompletedDays) != 2 {
		t.Errorf("CompletedDays = %v, want [5 6]", got.CompletedDays)
	}

	for _, raw := range []string{
		`{"roadmap": 3}`,
		`{"roadmap": {"totalDays": 90, "schedule": []}}`,
		`{"completedDays": ["one"]}`,
		`not json`,
	} {
		s, recovered, err := DecodeState([]byte(raw))
		if !recovered || err == nil || s.Roadmap != nil {
			t.Errorf("DecodeState(%s) = recovered %v err %v", raw, recovered, err)
		}
	}
}
