package presentation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// NoVibes is shown when nothing tagged is worn.
const NoVibes = "Al naturale"

// Vibe is one tag counted across the equipped clothing.
type Vibe struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func (v Vibe) String() string {
	return fmt.Sprintf("%s (%d)", v.Label, v.Count)
}

// Vibes counts the tags on equipped clothing, covered or not, sorted by tag.
func (e *Engine) Vibes(equipped []string) []Vibe {
	if e.catalog == nil {
		return nil
	}
	counts := make(map[string]int)
	for _, id := range equipped {
		if id == "" {
			continue
		}
		item, ok := e.catalog.Get(id)
		if !ok || item.Category() != catalog.CategoryClothes {
			continue
		}
		for _, tag := range item.Info().Tags {
			if tag != "" {
				counts[tag]++
			}
		}
	}
	out := make([]Vibe, 0, len(counts))
	for tag, n := range counts {
		out = append(out, Vibe{Tag: tag, Label: catalog.Capitalize(tag), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// VibesText joins vibes for display.
func VibesText(vibes []Vibe) string {
	if len(vibes) == 0 {
		return NoVibes
	}
	parts := make([]string, len(vibes))
	for i, v := range vibes {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
