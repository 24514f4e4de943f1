// Package content holds the static problem-set catalogs that problem
// toggles and sync refer to.
package content

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownSet  = errors.New("unknown problem set")
	ErrUnknownItem = errors.New("unknown problem")
)

// Difficulty grades an item.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// XP returns the default reward for an item of difficulty d.
func (d Difficulty) XP() int {
	switch d {
	case Easy:
		return 10
	case Medium:
		return 25
	case Hard:
		return 50
	}
	return 0
}

// Item is one completable entry of a set.
type Item struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	XP         int        `json:"xp"`
}

// Set is a named, ordered list of items.
type Set struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item returns the item with the given id.
func (s Set) Item(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// TotalXP sums the rewards of every item in s.
func (s Set) TotalXP() int {
	total := 0
	for _, it := range s.Items {
		total += it.XP
	}
	return total
}

// Catalog indexes sets by name.
type Catalog struct {
	sets map[string]Set
}

// NewCatalog builds a catalog, rejecting duplicate set names, duplicate
// item ids within a set and items without positive XP.
func NewCatalog(sets ...Set) (Catalog, error) {
	c := Catalog{sets: make(map[string]Set, len(sets))}
	for _, s := range sets {
		if s.Name == "" {
			return Catalog{}, errors.New("problem set without a name")
		}
		if _, dup := c.sets[s.Name]; dup {
			return Catalog{}, fmt.Errorf("duplicate problem set %q", s.Name)
		}
		seen := make(map[string]bool, len(s.Items))
		for _, it := range s.Items {
			if it.ID == "" || seen[it.ID] {
				return Catalog{}, fmt.Errorf("set %q: missing or duplicate item id %q", s.Name, it.ID)
			}
			if it.XP <= 0 {
				return Catalog{}, fmt.Errorf("set %q: item %q has no xp", s.Name, it.ID)
			}
			seen[it.ID] = true
		}
		c.sets[s.Name] = s
	}
	return c, nil
}

// Set returns the named set.
func (c Catalog) Set(name string) (Set, error) {
	s, ok := c.sets[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	return s, nil
}

// Item returns one item of a set.
func (c Catalog) Item(set, id string) (Item, error) {
	s, err := c.Set(set)
	if err != nil {
		return Item{}, err
	}
	it, ok := s.Item(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s/%s", ErrUnknownItem, set, id)
	}
	return it, nil
}

// Names returns the set names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.sets))
	for n := range c.sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
