package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
)

func TestNewSheet_Defaults(t *testing.T) {
	s := stats.NewSheet()
	for _, name := range stats.Attributes {
		assert.Equal(t, 10, s.Attributes[name], name)
	}
	assert.Equal(t, 10, s.Skills["athletics"])
	assert.Equal(t, 10, s.Status["confidence"])
	assert.Equal(t, 0, s.Status["stress"])
	assert.Empty(t, s.Effects)
	assert.Equal(t, presentation.Stats{Beauty: 10, Confidence: 10}, s.Presentation())
}

func TestSheet_NormalizeKeepsExisting(t *testing.T) {
	s := &stats.Sheet{Status: map[string]int{"confidence": 50}}
	s.Normalize()
	assert.Equal(t, 50, s.Status["confidence"])
	assert.Equal(t, 10, s.Attributes["beauty"])
}

func TestSheet_ApplyEffects(t *testing.T) {
	s := stats.NewSheet()
	s.ApplyEffects([]catalog.Effect{
		{Kind: catalog.EffectStatAdd, Stat: "confidence", Add: 2},
		{Kind: catalog.EffectStatAdd, Stat: "beauty", Add: 1},
		{Kind: catalog.EffectStatAdd, Stat: "athletics", Add: -3},
		{Kind: catalog.EffectStatAdd, Stat: "sparkle", Add: 4},
		{Kind: catalog.EffectAddStatus, Status: "glam", Turns: 5},
		{Kind: catalog.EffectAddStatus, Status: "glam", Turns: 2},
		{Kind: catalog.EffectAddStatus, Status: "tired", Turns: 3},
		{Kind: catalog.EffectRemoveStatus, Status: "tired"},
	})
	assert.Equal(t, 12, s.Status["confidence"])
	assert.Equal(t, 11, s.Attributes["beauty"])
	assert.Equal(t, 7, s.Skills["athletics"])
	assert.Equal(t, 4, s.Attributes["sparkle"])
	assert.Equal(t, map[string]int{"glam": 5}, s.Effects)
}

func TestSheet_Tick(t *testing.T) {
	s := stats.NewSheet()
	s.ApplyEffects([]catalog.Effect{
		{Kind: catalog.EffectAddStatus, Status: "b", Turns: 1},
		{Kind: catalog.EffectAddStatus, Status: "a", Turns: 1},
		{Kind: catalog.EffectAddStatus, Status: "c", Turns: 3},
	})
	assert.Equal(t, []string{"a", "b"}, s.Tick())
	assert.Equal(t, map[string]int{"c": 2}, s.Effects)
}

func TestSheet_Unmet(t *testing.T) {
	s := stats.NewSheet()
	reqs := []catalog.Requirement{
		{Stat: "charisma", Min: 8},
		{Stat: "beauty", Min: 12},
		{Stat: "mystery", Min: 1},
	}
	unmet := s.Unmet(reqs)
	require.Len(t, unmet, 2)
	assert.Equal(t, "beauty", unmet[0].Stat)
	assert.Equal(t, "mystery", unmet[1].Stat)
	assert.False(t, s.Meets(reqs))
	assert.True(t, s.Meets(reqs[:1]))
}

func TestSheet_CloneIsDeep(t *testing.T) {
	s := stats.NewSheet()
	c := s.Clone()
	c.Attributes["beauty"] = 99
	assert.Equal(t, 10, s.Attributes["beauty"])
}

func TestProperty_AddStatusKeepsMaximum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		turns := rapid.SliceOfN(rapid.IntRange(0, 20), 1, 10).Draw(rt, "turns")
		s := stats.NewSheet()
		want := 0
		for _, n := range turns {
			s.ApplyEffects([]catalog.Effect{{Kind: catalog.EffectAddStatus, Status: "glam", Turns: n}})
			want = max(want, n)
		}
		if s.Effects["glam"] != want {
			rt.Fatalf("got %d want %d", s.Effects["glam"], want)
		}
	})
}
