package badges

import "testing"

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("expected non-empty catalog")
	}
	for _, id := range []string{FirstTask, WeeklyWarrior, GoalCrusher, InterviewReady, "xp-1000", "streak-100"} {
		if _, ok := c.Lookup(id); !ok {
			t.Errorf("Lookup(%q) missing", id)
		}
	}
}

func TestEligible(t *testing.T) {
	c := Default()

	tests := []struct {
		trigger Trigger
		value   int
		want    []string
	}{
		{TriggerXP, 999, nil},
		{TriggerXP, 1000, []string{"xp-1000"}},
		{TriggerXP, 12000, []string{"xp-1000", "xp-5000", "xp-10000"}},
		{TriggerStreak, 7, []string{"streak-3", "streak-7"}},
		{TriggerPomodoros, 0, nil},
		{TriggerNotes, 10, []string{"note-1", "note-10"}},
		{TriggerGoalStreak, 9, nil},
	}

	for _, tt := range tests {
		got := c.Eligible(tt.trigger, tt.value)
		if len(got) != len(tt.want) {
			t.Errorf("Eligible(%s, %d) = %d badges, want %d", tt.trigger, tt.value, len(got), len(tt.want))
			continue
		}
		for i, b := range got {
			if b.ID != tt.want[i] {
				t.Errorf("Eligible(%s, %d)[%d] = %s, want %s", tt.trigger, tt.value, i, b.ID, tt.want[i])
			}
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Badge{
		{ID: "a", Rarity: RarityCommon, Trigger: TriggerXP, Threshold: 1},
		{ID: "a", Rarity: RarityRare, Trigger: TriggerXP, Threshold: 2},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewCatalogRejectsBadRarity(t *testing.T) {
	_, err := NewCatalog([]Badge{{ID: "a", Rarity: "mythic", Trigger: TriggerXP, Threshold: 1}})
	if err == nil {
		t.Fatal("expected rarity error")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"
	if b, _ := c.Lookup(all[0].ID); b.Name == "changed" {
		t.Error("All() should not expose internal storage")
	}
}

func TestRarityDisplayName(t *testing.T) {
	for _, r := range AllRarities() {
		if r.DisplayName() == string(r) {
			t.Errorf("DisplayName(%s) not mapped", r)
		}
	}
}

func TestAllTriggersCoverCatalog(t *testing.T) {
	known := make(map[Trigger]bool)
	for _, tr := range AllTriggers() {
		known[tr] = true
	}
	for _, b := range Default().All() {
		if !known[b.Trigger] {
			t.Errorf("badge %s uses trigger %q missing from AllTriggers", b.ID, b.Trigger)
		}
	}
}
