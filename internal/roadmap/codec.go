package roadmap

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/prepquest/internal/docschema"
)

// StorageKey is the stable storage name of the roadmap document.
const StorageKey = "roadmap-storage"

var stateSchema = &docschema.Schema{
	Name: "roadmap-state",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type":     []any{"object", "null"},
				"required": []any{"totalDays", "schedule"},
				"properties": map[string]any{
					"totalDays": map[string]any{"type": "integer", "minimum": 1},
					"schedule": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"day", "xp", "category"},
						},
					},
				},
			},
			"completedDays": map[string]any{
				"type":  []any{"array", "null"},
				"items": map[string]any{"type": "integer"},
			},
		},
	},
}

// EncodeState serialises s as the persisted JSON document.
func EncodeState(s State) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal roadmap state: %w", err)
	}
	return b, nil
}

// DecodeState parses a persisted document. A missing document yields the
// empty state; a corrupt one yields the empty state with recovered set.
func DecodeState(raw []byte) (s State, recovered bool, err error) {
	if len(raw) == 0 {
		return NewState(), false, nil
	}
	if err := docschema.Validate(stateSchema, raw); err != nil {
		return NewState(), true, err
	}
	var decoded State
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return NewState(), true, fmt.Errorf("unmarshal roadmap state: %w", err)
	}
	if r := decoded.Roadmap; r != nil && len(r.Schedule) != r.TotalDays {
		return NewState(), true, fmt.Errorf("roadmap schedule has %d days, want %d", len(r.Schedule), r.TotalDays)
	}
	return normalize(decoded), false, nil
}

// normalize drops completed day numbers that do not exist or repeat.
func normalize(s State) State {
	days := make([]int, 0, len(s.CompletedDays))
	for _, n := range s.CompletedDays {
		if s.Roadmap == nil || n < 1 || n > s.Roadmap.TotalDays || slices.Contains(days, n) {
			continue
		}
		days = append(days, n)
	}
	s.CompletedDays = days
	return s
}
