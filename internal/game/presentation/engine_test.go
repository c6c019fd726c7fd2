package presentation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
)

var neutral = presentation.Context{Stats: presentation.Stats{Beauty: 10, Confidence: 10}}

func testEngine(items ...catalog.Item) *presentation.Engine {
	return presentation.NewEngine(presentation.DefaultConfig(), catalogtest.Registry(items...))
}

func TestEvaluate_EmptyIsZero(t *testing.T) {
	e := testEngine()
	r := e.Evaluate(nil, neutral)
	assert.Zero(t, r.RawScore)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.DisplayScore)
	assert.Equal(t, presentation.LabelMale, r.ReadLabel)
	assert.Equal(t, presentation.ReadMasculine, r.ReadAs)
	assert.False(t, r.IsExposedPublic)
	assert.InDelta(t, 1/(1+math.Exp(58.0/9)), r.PassChance, 1e-12)
}

func TestEvaluate_FeminineWeights(t *testing.T) {
	e := testEngine(
		catalogtest.Clothing("dress", catalog.SlotUpper, catalog.IntentFeminine, catalogtest.Subtype("dresses")),
		catalogtest.Clothing("gown", catalog.SlotUpper, catalog.IntentFeminine,
			catalogtest.Subtype("dresses"), catalogtest.Tags("feminine", "elegant")),
		catalogtest.Clothing("odd", catalog.SlotThighs, catalog.IntentFeminine, catalogtest.Subtype("mystery")),
	)

	r := e.Evaluate([]string{"dress"}, neutral)
	assert.InDelta(t, 36.0, r.RawScore, 1e-9)
	assert.InDelta(t, 36.0, r.Score, 1e-9)
	assert.Equal(t, 30, r.DisplayScore)
	assert.Equal(t, presentation.LabelAndrogynous, r.ReadLabel)
	assert.Equal(t, presentation.ReadAndrogynous, r.ReadAs)

	r = e.Evaluate([]string{"gown"}, neutral)
	assert.InDelta(t, 36.0*1.06, r.RawScore, 1e-9)

	r = e.Evaluate([]string{"odd"}, neutral)
	assert.InDelta(t, 20*0.5*0.6, r.RawScore, 1e-9, "default slot and type weights")
}

func TestEvaluate_IntentAndAdjustment(t *testing.T) {
	e := testEngine(
		catalogtest.Clothing("boots", catalog.SlotFeet, catalog.IntentMasculine, catalogtest.Adjust(10)),
		catalogtest.Clothing("scarf", catalog.SlotNeck, catalog.IntentUnisex, catalogtest.Adjust(5)),
		catalogtest.Clothing("neg", catalog.SlotHands, catalog.IntentFeminine, catalogtest.Adjust(-100)),
	)
	assert.Zero(t, e.Evaluate([]string{"boots"}, neutral).RawScore)
	assert.InDelta(t, 5.0, e.Evaluate([]string{"scarf"}, neutral).RawScore, 1e-9)
	assert.Zero(t, e.Evaluate([]string{"neg"}, neutral).RawScore, "feminine items never subtract")
	assert.Zero(t, e.Evaluate([]string{"ghost", "", "boots"}, neutral).RawScore)
}

func TestEvaluate_Coverage(t *testing.T) {
	e := testEngine(
		catalogtest.Clothing("dress", catalog.SlotUpper, catalog.IntentFeminine,
			catalogtest.Subtype("dresses"), catalogtest.Covers(catalog.SlotUnderUpper)),
		catalogtest.Clothing("bra", catalog.SlotUnderUpper, catalog.IntentFeminine, catalogtest.Subtype("bra")),
		catalogtest.Clothing("coat", catalog.SlotOverUpper, catalog.IntentMasculine,
			catalogtest.Covers(catalog.SlotUpper, catalog.SlotOverUpper)),
		catalogtest.Clothing("cape", catalog.SlotOverUpper, catalog.IntentMasculine,
			catalogtest.Covers(catalog.SlotUpper)),
	)

	assert.InDelta(t, 20*0.15*0.35, e.Evaluate([]string{"bra"}, neutral).RawScore, 1e-9)
	assert.InDelta(t, 36.0, e.Evaluate([]string{"dress", "bra"}, neutral).RawScore, 1e-9)
	assert.Zero(t, e.Evaluate([]string{"coat", "dress"}, neutral).RawScore)
	assert.Equal(t, []string{"coat"}, e.Visible([]string{"coat", "dress", "bra"}), "hidden items still cover")
	assert.Equal(t, []string{"cape", "bra"}, e.Visible([]string{"cape", "bra"}), "coverage is one hop")
}

func TestEvaluate_StatDelta(t *testing.T) {
	e := testEngine(catalogtest.Clothing("dress", catalog.SlotUpper, catalog.IntentFeminine, catalogtest.Subtype("dresses")))
	ctx := presentation.Context{Stats: presentation.Stats{Beauty: 14, Confidence: 15, Stress: 4, Shame: 5}}
	r := e.Evaluate([]string{"dress"}, ctx)
	assert.InDelta(t, 36.0, r.RawScore, 1e-9)
	assert.InDelta(t, 36.0+2+2-2-2, r.Score, 1e-9)

	r = e.Evaluate(nil, presentation.Context{Stats: presentation.Stats{Beauty: 50, Confidence: 10}})
	assert.Zero(t, r.RawScore)
	assert.InDelta(t, 20.0, r.Score, 1e-9)
}

func TestEvaluate_PublicGate(t *testing.T) {
	e := testEngine(
		catalogtest.Clothing("dress", catalog.SlotUpper, catalog.IntentFeminine, catalogtest.Subtype("dresses")),
		catalogtest.Clothing("jacket", catalog.SlotOverUpper, catalog.IntentUnisex),
		catalogtest.Clothing("skirt", catalog.SlotLower, catalog.IntentFeminine, catalogtest.Subtype("bottoms")),
	)
	public := neutral
	public.Public = true

	r := e.Evaluate(nil, public)
	assert.True(t, r.IsExposedPublic)
	assert.Equal(t, presentation.LabelInappropriate, r.ReadLabel)
	assert.Equal(t, presentation.ReadMasculine, r.ReadAs)

	r = e.Evaluate([]string{"dress"}, public)
	assert.True(t, r.IsExposedPublic)
	assert.False(t, r.IsReadAsFemale)

	assert.False(t, e.Evaluate([]string{"dress", "skirt"}, public).IsExposedPublic)
	assert.False(t, e.Evaluate([]string{"jacket", "skirt"}, public).IsExposedPublic)
	assert.False(t, e.Evaluate([]string{"dress"}, neutral).IsExposedPublic, "private is never exposed")
}

func TestEvaluate_ClampAndTiers(t *testing.T) {
	cat := catalogtest.Wardrobe()
	e := presentation.NewEngine(presentation.DefaultConfig(), cat)
	var all []string
	for _, s := range catalog.BodySlots {
		all = append(all, "f:"+string(s))
	}
	r := e.Evaluate(all, neutral)
	assert.Equal(t, 120.0, r.RawScore)
	assert.Equal(t, 100, r.DisplayScore)
	assert.Equal(t, presentation.LabelFemale, r.ReadLabel)
	assert.Equal(t, presentation.ReadPassing, r.ReadAs)
	assert.True(t, r.IsReadAsFemale)
}

func TestEvaluate_PassChanceAtThreshold(t *testing.T) {
	e := testEngine(catalogtest.Clothing("pin", catalog.SlotNeck, catalog.IntentUnisex, catalogtest.Adjust(58)))
	r := e.Evaluate([]string{"pin"}, neutral)
	assert.InDelta(t, 0.5, r.PassChance, 1e-12)
	assert.Equal(t, presentation.LabelFemaleLeaning, r.ReadLabel)
}

func TestEvaluate_NilCatalog(t *testing.T) {
	e := presentation.NewEngine(presentation.DefaultConfig(), nil)
	r := e.Evaluate([]string{"anything"}, presentation.Context{Public: true})
	assert.Equal(t, presentation.Result{ReadLabel: presentation.LabelMale, ReadAs: presentation.ReadMasculine}, r)
	assert.Nil(t, e.Vibes([]string{"anything"}))
}

func TestEvaluate_ReferenceSets(t *testing.T) {
	reg, err := catalog.LoadDir("../../../content/items")
	require.NoError(t, err)
	e := presentation.NewEngine(presentation.DefaultConfig(), reg)

	fem := e.Evaluate([]string{"it:00d", "it:014", "it:00j", "it:00i"}, neutral)
	assert.InDelta(t, 38.16+20.352+35.828+14.08, fem.RawScore, 1e-9)
	assert.Equal(t, presentation.LabelFemale, fem.ReadLabel)

	masc := e.Evaluate([]string{"it:m01", "it:m02", "it:m03", "it:m04", "it:m05", "it:m06"}, neutral)
	assert.Zero(t, masc.RawScore)
	assert.Equal(t, presentation.LabelMale, masc.ReadLabel)
}

func drawOutfit(rt *rapid.T, label string) []string {
	var out []string
	for _, s := range catalog.BodySlots {
		switch rapid.IntRange(0, 2).Draw(rt, label+string(s)) {
		case 1:
			out = append(out, "m:"+string(s))
		case 2:
			out = append(out, "f:"+string(s))
		}
	}
	return out
}

func TestProperty_FeminineItemNeverLowersScore(t *testing.T) {
	e := presentation.NewEngine(presentation.DefaultConfig(), catalogtest.Wardrobe())
	rapid.Check(t, func(rt *rapid.T) {
		outfit := drawOutfit(rt, "slot")
		var free []catalog.BodySlot
		used := map[string]bool{}
		for _, id := range outfit {
			used[id[2:]] = true
		}
		for _, s := range catalog.BodySlots {
			if !used[string(s)] {
				free = append(free, s)
			}
		}
		if len(free) == 0 {
			return
		}
		slot := rapid.SampledFrom(free).Draw(rt, "added")
		ctx := presentation.Context{Stats: presentation.Stats{
			Beauty:     rapid.IntRange(0, 30).Draw(rt, "beauty"),
			Confidence: rapid.IntRange(0, 30).Draw(rt, "confidence"),
		}}
		before := e.Evaluate(outfit, ctx)
		after := e.Evaluate(append(outfit, "f:"+string(slot)), ctx)
		if after.RawScore < before.RawScore || after.Score < before.Score {
			rt.Fatalf("adding f:%s lowered score: %+v -> %+v", slot, before, after)
		}
	})
}

func TestProperty_ScoresStayInRange(t *testing.T) {
	e := presentation.NewEngine(presentation.DefaultConfig(), catalogtest.Wardrobe())
	rapid.Check(t, func(rt *rapid.T) {
		ctx := presentation.Context{
			Public: rapid.Bool().Draw(rt, "public"),
			Stats: presentation.Stats{
				Beauty:     rapid.IntRange(-100, 100).Draw(rt, "beauty"),
				Confidence: rapid.IntRange(-100, 100).Draw(rt, "confidence"),
				Stress:     rapid.IntRange(-100, 100).Draw(rt, "stress"),
				Shame:      rapid.IntRange(-100, 100).Draw(rt, "shame"),
			},
		}
		outfit := drawOutfit(rt, "slot")
		r := e.Evaluate(outfit, ctx)
		if r.RawScore < 0 || r.RawScore > 120 || r.Score < 0 || r.Score > 120 {
			rt.Fatalf("score out of range: %+v", r)
		}
		if r.DisplayScore < 0 || r.DisplayScore > 100 || r.PassChance < 0 || r.PassChance > 1 {
			rt.Fatalf("display or pass out of range: %+v", r)
		}
		if len(outfit) == 0 && r.RawScore != 0 {
			rt.Fatalf("empty outfit raw=%v", r.RawScore)
		}
		if r.IsExposedPublic != (r.ReadLabel == presentation.LabelInappropriate) {
			rt.Fatalf("exposure and label disagree: %+v", r)
		}
	})
}
