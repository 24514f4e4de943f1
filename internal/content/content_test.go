package content

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	names := c.Names()
	if len(names) != 2 || names[0] != InterviewSheet || names[1] != TopicCalendar {
		t.Fatalf("Names() = %v", names)
	}

	sheet, err := c.Set(InterviewSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Items) == 0 || sheet.TotalXP() <= 0 {
		t.Errorf("interview sheet is empty: %+v", sheet)
	}

	cal, err := c.Set(TopicCalendar)
	if err != nil {
		t.Fatal(err)
	}
	if len(cal.Items) != 30 {
		t.Errorf("topic calendar has %d days, want 30", len(cal.Items))
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	it, err := c.Item(InterviewSheet, "two-sum")
	if err != nil {
		t.Fatal(err)
	}
	if it.XP != Easy.XP() || it.Difficulty != Easy {
		t.Errorf("two-sum = %+v", it)
	}

	if _, err := c.Set("leetcode-all"); !errors.Is(err, ErrUnknownSet) {
		t.Errorf("Set err = %v, want ErrUnknownSet", err)
	}
	if _, err := c.Item("leetcode-all", "two-sum"); !errors.Is(err, ErrUnknownSet) {
		t.Errorf("Item err = %v, want ErrUnknownSet", err)
	}
	if _, err := c.Item(InterviewSheet, "fizz-buzz"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Item err = %v, want ErrUnknownItem", err)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		sets []Set
	}{
		{"unnamed set", []Set{{Items: []Item{{ID: "a", XP: 1}}}}},
		{"duplicate set", []Set{{Name: "a"}, {Name: "a"}}},
		{"duplicate item", []Set{{Name: "a", Items: []Item{{ID: "x", XP: 1}, {ID: "x", XP: 1}}}}},
		{"empty item id", []Set{{Name: "a", Items: []Item{{XP: 1}}}}},
		{"no xp", []Set{{Name: "a", Items: []Item{{ID: "x"}}}}},
	}
	for _, tt := range tests {
		if _, err := NewCatalog(tt.sets...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	c, err := NewCatalog(Set{Name: "custom", Items: []Item{{ID: "x", XP: 7}}})
	if err != nil {
		t.Fatal(err)
	}
	if it, err := c.Item("custom", "x"); err != nil || it.XP != 7 {
		t.Errorf("custom item = %+v, %v", it, err)
	}
}
